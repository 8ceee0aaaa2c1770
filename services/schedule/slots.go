package schedule

import "fmt"

// slotStepMinutes is the booking granularity.
const slotStepMinutes = 30

// maxSlotSteps bounds the walk at one full day of 30-minute steps so
// malformed input can never loop forever.
const maxSlotSteps = 48

// GenerateTimeOptions lists the bookable "HH:MM" options from start to end
// in 30-minute steps, inclusive of both ends. Windows that cross midnight
// wrap the hour modulo 24 ("22:00" -> ... -> "00:00" -> ... -> "02:00").
// If start equals end the single option is returned. When end never lands
// on the 30-minute grid the walk stops at the step cap and returns what was
// accumulated.
func GenerateTimeOptions(start, end string) ([]string, error) {
	sh, sm, err := splitClock(start)
	if err != nil {
		return nil, err
	}
	eh, em, err := splitClock(end)
	if err != nil {
		return nil, err
	}

	options := []string{fmt.Sprintf("%02d:%02d", sh, sm)}
	if sh == eh && sm == em {
		return options, nil
	}

	h, m := sh, sm
	for i := 0; i < maxSlotSteps; i++ {
		m += slotStepMinutes
		if m >= 60 {
			m -= 60
			h = (h + 1) % 24
		}
		options = append(options, fmt.Sprintf("%02d:%02d", h, m))
		if h == eh && m == em {
			break
		}
	}
	return options, nil
}
