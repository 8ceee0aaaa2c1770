package booking

import (
	"context"
	"testing"

	bookingRepo "vendora/database/repository/booking"
	"vendora/models"
	"vendora/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking, occs []models.Occurrence) error {
	return m.Called(ctx, b, occs).Error(0)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *mockBookingRepo) ListByService(ctx context.Context, serviceID string) ([]models.Booking, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *mockBookingRepo) ListOccurrences(ctx context.Context, serviceID, date string) ([]models.Occurrence, error) {
	args := m.Called(ctx, serviceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Occurrence), args.Error(1)
}
func (m *mockBookingRepo) DeleteOccurrences(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	return m.Called(ctx, svc).Error(0)
}
func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}
func (m *mockServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	return m.Called(ctx, svc).Error(0)
}
func (m *mockServiceRepo) UpdateAvailability(ctx context.Context, id string, avail models.WeeklyAvailability) error {
	return m.Called(ctx, id, avail).Error(0)
}
func (m *mockServiceRepo) ListByShop(ctx context.Context, shopID string) ([]models.Service, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}
func (m *mockServiceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newTestService(repo *mockBookingRepo, catalog *mockServiceRepo) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, CatalogRepo: catalog}
}

func mondayService() *models.Service {
	return &models.Service{
		ID:           "svc-1",
		ShopID:       "shop-1",
		Name:         "Haircut",
		Availability: businessHours(models.Monday),
	}
}

func TestCreateSpecificBooking(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)

	var persisted []models.Occurrence
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]models.Occurrence)
		}).
		Return(nil)

	got, err := svc.CreateSpecificBooking(context.Background(), "svc-1", "user-1", []models.SpecificDateEntry{
		{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.False(t, got.IsRecurring)
	assert.NotEmpty(t, got.ID)
	require.Len(t, persisted, 1)
	assert.Equal(t, got.ID, persisted[0].BookingID)
	assert.Equal(t, "2024-06-03", persisted[0].Date)
}

func TestCreateSpecificBookingInvalidNoPersist(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)

	_, err := svc.CreateSpecificBooking(context.Background(), "svc-1", "user-1", []models.SpecificDateEntry{
		{Date: "2024-06-03", StartTime: "08:00", EndTime: "09:30"},
	})
	require.Error(t, err)
	assert.Equal(t, schedule.KindOutOfWindow, schedule.KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSpecificBookingSlotConflict(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(bookingRepo.ErrSlotConflict)

	_, err := svc.CreateSpecificBooking(context.Background(), "svc-1", "user-1", []models.SpecificDateEntry{
		{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"},
	})
	require.Error(t, err)
	assert.True(t, IsSlotTaken(err))
}

func TestCreateRecurringBooking(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)

	var persisted []models.Occurrence
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]models.Occurrence)
		}).
		Return(nil)

	got, err := svc.CreateRecurringBooking(context.Background(), "svc-1", "user-1", models.RecurringDetails{
		Days:      []models.Weekday{models.Monday},
		StartDate: "2024-06-03",
		WeekCount: 3,
		TimeSlots: map[models.Weekday]models.TimeSlot{
			models.Monday: {StartTime: "10:00", EndTime: "11:00"},
		},
	})
	require.NoError(t, err)
	assert.True(t, got.IsRecurring)
	require.NotNil(t, got.Recurring)
	assert.Equal(t, 3, got.Recurring.WeekCount)
	assert.Len(t, persisted, 3)
}

func TestConfirmBooking(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	pending := &models.Booking{ID: "bk-1", ServiceID: "svc-1", UserID: "user-1", Status: models.StatusPending}
	repo.On("GetByID", mock.Anything, "bk-1").Return(pending, nil)
	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)
	repo.On("UpdateStatus", mock.Anything, "bk-1", models.StatusConfirmed).Return(nil)

	got, err := svc.ConfirmBooking(context.Background(), "bk-1", "shop-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
	repo.AssertNotCalled(t, "DeleteOccurrences", mock.Anything, mock.Anything)
}

func TestConfirmBookingWrongShop(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	pending := &models.Booking{ID: "bk-1", ServiceID: "svc-1", UserID: "user-1", Status: models.StatusPending}
	repo.On("GetByID", mock.Anything, "bk-1").Return(pending, nil)
	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)

	_, err := svc.ConfirmBooking(context.Background(), "bk-1", "someone-else")
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmBookingFromTerminalState(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	rejected := &models.Booking{ID: "bk-1", ServiceID: "svc-1", UserID: "user-1", Status: models.StatusRejected}
	repo.On("GetByID", mock.Anything, "bk-1").Return(rejected, nil)
	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)

	_, err := svc.ConfirmBooking(context.Background(), "bk-1", "shop-1")
	require.Error(t, err)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "rejected", te.From)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingReleasesOccurrences(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	pending := &models.Booking{ID: "bk-1", ServiceID: "svc-1", UserID: "user-1", Status: models.StatusPending}
	repo.On("GetByID", mock.Anything, "bk-1").Return(pending, nil)
	repo.On("UpdateStatus", mock.Anything, "bk-1", models.StatusCanceled).Return(nil)
	repo.On("DeleteOccurrences", mock.Anything, "bk-1").Return(nil)

	got, err := svc.CancelBooking(context.Background(), "bk-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, got.Status)
	repo.AssertCalled(t, "DeleteOccurrences", mock.Anything, "bk-1")
}

func TestCancelBookingWrongUser(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	pending := &models.Booking{ID: "bk-1", ServiceID: "svc-1", UserID: "user-1", Status: models.StatusPending}
	repo.On("GetByID", mock.Anything, "bk-1").Return(pending, nil)

	_, err := svc.CancelBooking(context.Background(), "bk-1", "user-2")
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
}

func TestDaySchedule(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	service := &models.Service{
		ID:     "svc-1",
		ShopID: "shop-1",
		Availability: models.WeeklyAvailability{
			models.Friday: {Available: true, StartTime: "20:00", EndTime: "00:00"},
		},
	}
	catalog.On("GetByID", mock.Anything, "svc-1").Return(service, nil)
	repo.On("ListOccurrences", mock.Anything, "svc-1", "2024-06-07").Return([]models.Occurrence{
		{BookingID: "bk-9", ServiceID: "svc-1", Date: "2024-06-07", StartTime: "21:00", EndTime: "22:00"},
	}, nil)

	// 2024-06-07 is a Friday.
	got, err := svc.DaySchedule(context.Background(), "svc-1", "2024-06-07")
	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Equal(t, models.Friday, got.Day)
	assert.Equal(t, "8:00 PM - 12:00 AM", got.WindowLabel)
	require.Len(t, got.Options, 9)
	assert.Equal(t, "20:00", got.Options[0].Time)
	assert.Equal(t, "00:00", got.Options[8].Time)

	taken := map[string]bool{}
	for _, opt := range got.Options {
		taken[opt.Time] = opt.Taken
	}
	assert.True(t, taken["21:00"])
	assert.True(t, taken["21:30"])
	assert.False(t, taken["20:00"])
	assert.False(t, taken["22:00"])
}

func TestDayScheduleClosedDay(t *testing.T) {
	repo := new(mockBookingRepo)
	catalog := new(mockServiceRepo)
	svc := newTestService(repo, catalog)

	catalog.On("GetByID", mock.Anything, "svc-1").Return(mondayService(), nil)

	// 2024-06-04 is a Tuesday, closed for this service.
	got, err := svc.DaySchedule(context.Background(), "svc-1", "2024-06-04")
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Empty(t, got.Options)
	repo.AssertNotCalled(t, "ListOccurrences", mock.Anything, mock.Anything, mock.Anything)
}
