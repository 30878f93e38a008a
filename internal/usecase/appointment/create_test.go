package appointment

import (
	"context"
	"testing"

	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

// fakeRepo implements booking.Repository in memory.
type fakeRepo struct {
	appointments []models.Appointment
	durations    map[uint]int
	listErr      error
	nextID       uint
}

func (f *fakeRepo) ListForProfessionalOnDate(_ context.Context, professionalID uint, date string) ([]models.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfessionalID == professionalID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetServiceDuration(_ context.Context, serviceID uint) (int, error) {
	d, ok := f.durations[serviceID]
	if !ok {
		return 0, storeerr.ErrNotFound
	}
	return d, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	f.appointments = append(f.appointments, *ap)
	return nil
}

func existingAt(professionalID uint, date, startTime string, durationMin int) models.Appointment {
	return models.Appointment{
		ProfessionalID: professionalID,
		Date:           date,
		StartTime:      startTime,
		Service:        models.Service{DurationMin: durationMin},
	}
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		Date:           "2026-09-01",
		StartTime:      "09:30:00",
		ClientID:       1,
		ProfessionalID: 7,
		ServiceID:      3,
		RoomID:         2,
	}
}

func TestCreateAppointment_OK(t *testing.T) {
	repo := &fakeRepo{durations: map[uint]int{3: 30}}
	uc := NewCreateAppointment(repo, nil, nil, false)

	in := validInput()
	in.StartTime = "09:30"

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.ID == 0 {
		t.Fatal("expected an id to be assigned")
	}
	if ap.StartTime != "09:30:00" {
		t.Fatalf("expected normalized start time, got %s", ap.StartTime)
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(repo.appointments))
	}
}

func TestCreateAppointment_Conflict(t *testing.T) {
	repo := &fakeRepo{
		durations:    map[uint]int{3: 30},
		appointments: []models.Appointment{existingAt(7, "2026-09-01", "09:00:00", 60)},
	}
	uc := NewCreateAppointment(repo, nil, nil, false)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
	if len(repo.appointments) != 1 {
		t.Fatal("conflicting appointment must not be stored")
	}
}

func TestCreateAppointment_TouchingBoundary(t *testing.T) {
	repo := &fakeRepo{
		durations:    map[uint]int{3: 30},
		appointments: []models.Appointment{existingAt(7, "2026-09-01", "09:00:00", 60)},
	}
	uc := NewCreateAppointment(repo, nil, nil, false)

	in := validInput()
	in.StartTime = "10:00:00"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("booking right after an appointment must not conflict: %v", err)
	}
}

func TestCreateAppointment_OtherProfessionalDoesNotConflict(t *testing.T) {
	repo := &fakeRepo{
		durations:    map[uint]int{3: 30},
		appointments: []models.Appointment{existingAt(99, "2026-09-01", "09:30:00", 60)},
	}
	uc := NewCreateAppointment(repo, nil, nil, false)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	repo := &fakeRepo{durations: map[uint]int{}}
	uc := NewCreateAppointment(repo, nil, nil, false)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestCreateAppointment_InvalidDuration(t *testing.T) {
	for _, d := range []int{0, -15} {
		repo := &fakeRepo{
			durations:    map[uint]int{3: d},
			appointments: []models.Appointment{existingAt(7, "2026-09-01", "09:00:00", 60)},
		}
		uc := NewCreateAppointment(repo, nil, nil, false)

		_, err := uc.Execute(context.Background(), validInput())
		if !httperr.IsBusiness(err, "invalid_duration") {
			t.Fatalf("duration %d: expected invalid_duration, got %v", d, err)
		}
		if len(repo.appointments) != 1 {
			t.Fatalf("duration %d: appointment must not be stored", d)
		}
	}
}

func TestCreateAppointment_InvalidDateAndTime(t *testing.T) {
	repo := &fakeRepo{durations: map[uint]int{3: 30}}
	uc := NewCreateAppointment(repo, nil, nil, false)

	in := validInput()
	in.Date = "01/09/2026"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	in = validInput()
	in.StartTime = "9h30"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("expected invalid_time, got %v", err)
	}
}

func TestCreateAppointment_Serialized(t *testing.T) {
	repo := &fakeRepo{durations: map[uint]int{3: 30}}
	uc := NewCreateAppointment(repo, nil, nil, true)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := validInput()
	in.StartTime = "11:00:00"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error on second booking: %v", err)
	}
}
