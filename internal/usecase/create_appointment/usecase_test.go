package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slotguard"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointments struct {
	created []*domain.Appointment
	err     error
}

func (f *fakeAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	a.ID = int64(len(f.created) + 1)
	f.created = append(f.created, a)
	return a, nil
}

type fakeStaff struct {
	err error
}

func (f *fakeStaff) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Staff{ID: id}, nil
}

type fakeServices struct {
	services map[int64]*domain.Service
}

func (f *fakeServices) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeGuard struct {
	err        error
	candidates []slotguard.Candidate
	conflicts  int
}

func (f *fakeGuard) Check(_ context.Context, c slotguard.Candidate) error {
	f.candidates = append(f.candidates, c)
	return f.err
}

func (f *fakeGuard) RecordConflict() { f.conflicts++ }

// fakeTx выполняет функцию в контексте и запоминает ошибку коммита
type fakeTx struct {
	calls     int
	commitErr error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

var date = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

type deps struct {
	appointments *fakeAppointments
	staff        *fakeStaff
	services     *fakeServices
	guard        *fakeGuard
	tx           *fakeTx
}

func newDeps() *deps {
	return &deps{
		appointments: &fakeAppointments{},
		staff:        &fakeStaff{},
		services: &fakeServices{services: map[int64]*domain.Service{
			5: {ID: 5, StaffID: 1, Name: "Haircut", DurationMinutes: ptr.Ptr(45)},
			6: {ID: 6, StaffID: 1, Name: "Consultation"},
			7: {ID: 7, StaffID: 2, Name: "Beard trim", DurationMinutes: ptr.Ptr(20)},
		}},
		guard: &fakeGuard{},
		tx:    &fakeTx{},
	}
}

func (d *deps) useCase() *UseCase {
	return NewUseCase(d.appointments, d.staff, d.services, d.guard, d.tx, 30, time.Second, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		StaffID:    1,
		CustomerID: 42,
		ServiceID:  ptr.Ptr(int64(5)),
		Date:       date,
		StartTime:  "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	d := newDeps()

	resp, err := d.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Appointment.ID)
	assert.Equal(t, domain.StatusScheduled, resp.Appointment.Status)
	assert.Equal(t, "Haircut", resp.Appointment.ServiceName)
	assert.Equal(t, 1, d.tx.calls)
	require.Len(t, d.guard.candidates, 1)
	assert.Equal(t, 45, d.guard.candidates[0].DurationMinutes)
	assert.Nil(t, d.guard.candidates[0].ExcludeID)
}

func TestExecute_DurationFallsBackToDefault(t *testing.T) {
	for name, serviceID := range map[string]*int64{
		"service without duration": ptr.Ptr(int64(6)),
		"no service":               nil,
	} {
		t.Run(name, func(t *testing.T) {
			d := newDeps()
			req := validRequest()
			req.ServiceID = serviceID

			_, err := d.useCase().Execute(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, 30, d.guard.candidates[0].DurationMinutes)
		})
	}
}

func TestExecute_GuardRejects(t *testing.T) {
	d := newDeps()
	d.guard.err = fmt.Errorf("%w: overlaps another appointment", slotguard.ErrSlotTaken)

	_, err := d.useCase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, d.appointments.created)
}

func TestExecute_UniqueIndexBackstop(t *testing.T) {
	d := newDeps()
	d.appointments.err = fmt.Errorf("%w: Create: duplicate key", appointmentRepo.ErrSlotTaken)

	_, err := d.useCase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, d.guard.conflicts)
}

func TestExecute_SerializationFailureOnCommit(t *testing.T) {
	d := newDeps()
	d.tx.commitErr = fmt.Errorf("commit transaction: %w", &pq.Error{Code: "40001"})

	_, err := d.useCase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request, d *deps)
		wantErr error
	}{
		{"no customer", func(r *Request, _ *deps) { r.CustomerID = 0 }, ErrInvalidInput},
		{"bad time", func(r *Request, _ *deps) { r.StartTime = "10:0" }, ErrInvalidInput},
		{"no date", func(r *Request, _ *deps) { r.Date = time.Time{} }, ErrInvalidInput},
		{"cancelled status", func(r *Request, _ *deps) { r.Status = ptr.Ptr(domain.StatusCancelled) }, ErrInvalidInput},
		{"notes too long", func(r *Request, _ *deps) { r.Notes = ptr.Ptr(string(make([]byte, domain.MaxNotesLength+1))) }, ErrInvalidInput},
		{"unknown service", func(r *Request, _ *deps) { r.ServiceID = ptr.Ptr(int64(99)) }, ErrServiceNotFound},
		{"foreign service", func(r *Request, _ *deps) { r.ServiceID = ptr.Ptr(int64(7)) }, ErrInvalidInput},
		{"unknown staff", func(_ *Request, d *deps) { d.staff.err = staffRepo.ErrStaffNotFound }, ErrStaffNotFound},
		{"staff store down", func(_ *Request, d *deps) { d.staff.err = errors.New("timeout") }, ErrStoreUnavailable},
		{"guard store down", func(_ *Request, d *deps) { d.guard.err = slotguard.ErrStoreUnavailable }, ErrStoreUnavailable},
		{"insert fails", func(_ *Request, d *deps) { d.appointments.err = appointmentRepo.ErrExecQuery }, ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			req := validRequest()
			tt.mutate(req, d)

			resp, err := d.useCase().Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
