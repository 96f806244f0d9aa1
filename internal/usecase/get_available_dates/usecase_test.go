package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopMetrics struct{}

func (nopMetrics) IncAvailabilityQuery(string) {}

type txMarker struct{}

// fakeTx выполняет функцию в контексте с пометкой транзакции
type fakeTx struct {
	calls    int
	beginErr error
}

func (f *fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(context.WithValue(ctx, txMarker{}, true))
}

// fakeDays: дни из full полностью заняты, errOn - день с ошибкой
type fakeDays struct {
	full      map[string]bool
	errOn     string
	err       error
	requests  []*get_day_slots.Request
	outsideTx int
}

func (f *fakeDays) Compute(ctx context.Context, req *get_day_slots.Request) (*get_day_slots.Response, error) {
	f.requests = append(f.requests, req)
	if ctx.Value(txMarker{}) == nil {
		f.outsideTx++
	}
	key := req.Date.Format(domain.DateFormat)
	if key == f.errOn {
		return nil, f.err
	}
	available := !f.full[key]
	return &get_day_slots.Response{
		StaffID: req.StaffID,
		Date:    req.Date,
		Slots: []domain.Slot{
			{StartTime: "09:00", Available: false},
			{StartTime: "09:30", Available: available},
		},
	}, nil
}

var now = time.Date(2025, 10, 15, 16, 45, 0, 0, time.UTC)

func newUseCase(days *fakeDays) *UseCase {
	return NewUseCase(days, &fakeTx{}, domain.DefaultWindowDays, domain.MaxWindowDays, fixedClock{now: now}, nopMetrics{}, nopLogger{})
}

func TestExecute_DefaultWindow(t *testing.T) {
	days := &fakeDays{full: map[string]bool{"2025-10-16": true}}
	uc := newUseCase(days)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1})

	require.NoError(t, err)
	require.Len(t, resp.Dates, 30)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), resp.Dates[0].Date)
	assert.Equal(t, time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC), resp.Dates[29].Date)
	assert.True(t, resp.Dates[0].Available)
	assert.False(t, resp.Dates[1].Available)
	assert.True(t, resp.Dates[2].Available)

	for i := 1; i < len(resp.Dates); i++ {
		assert.True(t, resp.Dates[i].Date.After(resp.Dates[i-1].Date), "dates must be ascending")
	}
}

func TestExecute_CustomWindowPassesDuration(t *testing.T) {
	days := &fakeDays{}
	uc := newUseCase(days)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 3, WindowDays: ptr.Ptr(7), ServiceDurationMinutes: ptr.Ptr(45)})

	require.NoError(t, err)
	assert.Len(t, resp.Dates, 7)
	require.Len(t, days.requests, 7)
	for _, r := range days.requests {
		assert.Equal(t, int64(3), r.StaffID)
		assert.Equal(t, 45, *r.ServiceDurationMinutes)
	}
}

func TestExecute_WindowOutOfRange(t *testing.T) {
	uc := newUseCase(&fakeDays{})

	for _, days := range []int{0, -1, domain.MaxWindowDays + 1} {
		_, err := uc.Execute(context.Background(), &Request{StaffID: 1, WindowDays: ptr.Ptr(days)})
		assert.ErrorIs(t, err, ErrInvalidInput, "days=%d", days)
	}
}

func TestExecute_AbortsOnFirstFailingDay(t *testing.T) {
	days := &fakeDays{
		errOn: "2025-10-18",
		err:   fmt.Errorf("%w: boom", get_day_slots.ErrStoreUnavailable),
	}
	uc := newUseCase(days)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Len(t, days.requests, 4)
}

func TestExecute_StaffNotFound(t *testing.T) {
	days := &fakeDays{errOn: "2025-10-15", err: get_day_slots.ErrStaffNotFound}
	uc := newUseCase(days)

	_, err := uc.Execute(context.Background(), &Request{StaffID: 1})

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_UnexpectedError(t *testing.T) {
	days := &fakeDays{errOn: "2025-10-15", err: errors.New("boom")}
	uc := newUseCase(days)

	_, err := uc.Execute(context.Background(), &Request{StaffID: 1})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ReadsWindowInOneTransaction(t *testing.T) {
	days := &fakeDays{}
	tx := &fakeTx{}
	uc := NewUseCase(days, tx, domain.DefaultWindowDays, domain.MaxWindowDays, fixedClock{now: now}, nopMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StaffID: 1, WindowDays: ptr.Ptr(5)})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Len(t, days.requests, 5)
	assert.Zero(t, days.outsideTx)
}

func TestExecute_TransactionBeginFails(t *testing.T) {
	days := &fakeDays{}
	tx := &fakeTx{beginErr: errors.New("connection refused")}
	uc := NewUseCase(days, tx, domain.DefaultWindowDays, domain.MaxWindowDays, fixedClock{now: now}, nopMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StaffID: 1})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, days.requests)
}
