package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/studio-beleza/salon-scheduler/internal/domain/booking"
	"github.com/studio-beleza/salon-scheduler/internal/httperr"
	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
	ucAppointment "github.com/studio-beleza/salon-scheduler/internal/usecase/appointment"
)

type fakeAppointmentStore struct {
	aps     []models.Appointment
	current *models.Appointment

	updateErr error
	deleteErr error

	byClientIDCalls   []uint
	byClientNameCalls []string
}

func (f *fakeAppointmentStore) List(context.Context) ([]models.Appointment, error) {
	return f.aps, nil
}

func (f *fakeAppointmentStore) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	if f.current != nil {
		return f.current, nil
	}
	return &models.Appointment{ID: id}, nil
}

func (f *fakeAppointmentStore) ListByClientID(_ context.Context, clientID uint) ([]models.Appointment, error) {
	f.byClientIDCalls = append(f.byClientIDCalls, clientID)
	return f.aps, nil
}

func (f *fakeAppointmentStore) ListByClientNameContains(_ context.Context, name string) ([]models.Appointment, error) {
	f.byClientNameCalls = append(f.byClientNameCalls, name)
	return f.aps, nil
}

func (f *fakeAppointmentStore) Update(context.Context, uint, *models.Appointment) error {
	return f.updateErr
}

func (f *fakeAppointmentStore) Delete(context.Context, uint) error {
	return f.deleteErr
}

type fakeInvalidator struct {
	keys []string
}

func (f *fakeInvalidator) Invalidate(_ context.Context, professionalID uint, date string) {
	f.keys = append(f.keys, fmt.Sprintf("%d:%s", professionalID, date))
}

type fakeCreator struct {
	ap  *models.Appointment
	err error
	got ucAppointment.CreateAppointmentInput
}

func (f *fakeCreator) Execute(_ context.Context, in ucAppointment.CreateAppointmentInput) (*models.Appointment, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return f.ap, nil
}

type fakeAvailability struct {
	res *booking.AvailabilityResult
	err error
}

func (f *fakeAvailability) Execute(_ context.Context, in booking.AvailabilityInput) (*booking.AvailabilityResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newAppointmentRouter(store *fakeAppointmentStore, creator *fakeCreator, avail *fakeAvailability, inval *fakeInvalidator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	var slots slotInvalidator
	if inval != nil {
		slots = inval
	}

	h := NewAppointmentHandler(store, creator, avail, slots, nil)

	r := gin.New()
	r.GET("/api/appointments", h.List)
	r.GET("/api/appointments/by-client/:identifier", h.ByClient)
	r.POST("/api/appointments", h.Create)
	r.PUT("/api/appointments/:id", h.Update)
	r.DELETE("/api/appointments/:id", h.Delete)
	r.GET("/api/professionals/:id/free-slots/:date", h.FreeSlots)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAppointmentCreate_MissingField(t *testing.T) {
	r := newAppointmentRouter(&fakeAppointmentStore{}, &fakeCreator{}, &fakeAvailability{}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", `{"date":"2026-09-01"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_request") {
		t.Fatalf("expected invalid_request, got %s", w.Body.String())
	}
}

func TestAppointmentCreate_Conflict(t *testing.T) {
	creator := &fakeCreator{err: httperr.ErrBusiness("time_conflict")}
	r := newAppointmentRouter(&fakeAppointmentStore{}, creator, &fakeAvailability{}, nil)

	body := `{"date":"2026-09-01","start_time":"09:30:00","client_id":1,"professional_id":7,"service_id":3,"room_id":2}`
	w := doJSON(t, r, http.MethodPost, "/api/appointments", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "time_conflict") {
		t.Fatalf("expected time_conflict, got %s", w.Body.String())
	}
}

func TestAppointmentCreate_OK(t *testing.T) {
	creator := &fakeCreator{ap: &models.Appointment{ID: 42}}
	r := newAppointmentRouter(&fakeAppointmentStore{}, creator, &fakeAvailability{}, nil)

	body := `{"date":"2026-09-01","start_time":"09:30:00","client_id":1,"professional_id":7,"service_id":3,"room_id":2}`
	w := doJSON(t, r, http.MethodPost, "/api/appointments", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != 42 {
		t.Fatalf("expected id 42, got %d", resp.ID)
	}
	if creator.got.ProfessionalID != 7 {
		t.Fatalf("expected professional 7 passed through, got %d", creator.got.ProfessionalID)
	}
}

func TestByClient_NumericUsesID(t *testing.T) {
	store := &fakeAppointmentStore{}
	r := newAppointmentRouter(store, &fakeCreator{}, &fakeAvailability{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/appointments/by-client/12", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(store.byClientIDCalls) != 1 || store.byClientIDCalls[0] != 12 {
		t.Fatalf("expected FindByID(12), got %v", store.byClientIDCalls)
	}
	if len(store.byClientNameCalls) != 0 {
		t.Fatalf("name lookup must not run for numeric input: %v", store.byClientNameCalls)
	}
}

func TestByClient_NameUsesContains(t *testing.T) {
	store := &fakeAppointmentStore{}
	r := newAppointmentRouter(store, &fakeCreator{}, &fakeAvailability{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/appointments/by-client/maria", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(store.byClientNameCalls) != 1 || store.byClientNameCalls[0] != "maria" {
		t.Fatalf("expected name lookup for maria, got %v", store.byClientNameCalls)
	}
	if len(store.byClientIDCalls) != 0 {
		t.Fatalf("id lookup must not run for name input: %v", store.byClientIDCalls)
	}
}

func TestAppointmentUpdate_InvalidatesOldAndNewKeys(t *testing.T) {
	store := &fakeAppointmentStore{
		current: &models.Appointment{ID: 5, ProfessionalID: 7, Date: "2026-09-01"},
	}
	inval := &fakeInvalidator{}
	r := newAppointmentRouter(store, &fakeCreator{}, &fakeAvailability{}, inval)

	body := `{"date":"2026-09-02","start_time":"10:00:00","client_id":1,"professional_id":8,"service_id":3,"room_id":2}`
	w := doJSON(t, r, http.MethodPut, "/api/appointments/5", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	expected := []string{"7:2026-09-01", "8:2026-09-02"}
	if !reflect.DeepEqual(inval.keys, expected) {
		t.Fatalf("expected invalidations %v, got %v", expected, inval.keys)
	}
}

func TestAppointmentUpdate_SameDayInvalidatedOnce(t *testing.T) {
	store := &fakeAppointmentStore{
		current: &models.Appointment{ID: 5, ProfessionalID: 7, Date: "2026-09-01"},
	}
	inval := &fakeInvalidator{}
	r := newAppointmentRouter(store, &fakeCreator{}, &fakeAvailability{}, inval)

	body := `{"date":"2026-09-01","start_time":"11:00:00","client_id":1,"professional_id":7,"service_id":3,"room_id":2}`
	w := doJSON(t, r, http.MethodPut, "/api/appointments/5", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	expected := []string{"7:2026-09-01"}
	if !reflect.DeepEqual(inval.keys, expected) {
		t.Fatalf("expected invalidations %v, got %v", expected, inval.keys)
	}
}

func TestAppointmentUpdate_UnknownRelatedEntity(t *testing.T) {
	store := &fakeAppointmentStore{
		current:   &models.Appointment{ID: 5, ProfessionalID: 7, Date: "2026-09-01"},
		updateErr: storeerr.ErrForeignKey,
	}
	inval := &fakeInvalidator{}
	r := newAppointmentRouter(store, &fakeCreator{}, &fakeAvailability{}, inval)

	body := `{"date":"2026-09-01","start_time":"11:00:00","client_id":1,"professional_id":7,"service_id":999,"room_id":2}`
	w := doJSON(t, r, http.MethodPut, "/api/appointments/5", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "related_entity_not_found") {
		t.Fatalf("expected related_entity_not_found, got %s", w.Body.String())
	}
	if len(inval.keys) != 0 {
		t.Fatalf("failed update must not invalidate, got %v", inval.keys)
	}
}

func TestAppointmentDelete_InvalidatesKey(t *testing.T) {
	store := &fakeAppointmentStore{
		current: &models.Appointment{ID: 5, ProfessionalID: 7, Date: "2026-09-01"},
	}
	inval := &fakeInvalidator{}
	r := newAppointmentRouter(store, &fakeCreator{}, &fakeAvailability{}, inval)

	w := doJSON(t, r, http.MethodDelete, "/api/appointments/5", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	expected := []string{"7:2026-09-01"}
	if !reflect.DeepEqual(inval.keys, expected) {
		t.Fatalf("expected invalidations %v, got %v", expected, inval.keys)
	}
}

func TestAppointmentDelete_FailedDeleteKeepsCache(t *testing.T) {
	store := &fakeAppointmentStore{
		current:   &models.Appointment{ID: 5, ProfessionalID: 7, Date: "2026-09-01"},
		deleteErr: storeerr.ErrNotFound,
	}
	inval := &fakeInvalidator{}
	r := newAppointmentRouter(store, &fakeCreator{}, &fakeAvailability{}, inval)

	w := doJSON(t, r, http.MethodDelete, "/api/appointments/5", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if len(inval.keys) != 0 {
		t.Fatalf("failed delete must not invalidate, got %v", inval.keys)
	}
}

func TestFreeSlots_InvalidDate(t *testing.T) {
	r := newAppointmentRouter(&fakeAppointmentStore{}, &fakeCreator{}, &fakeAvailability{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/professionals/7/free-slots/01-09-2026", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFreeSlots_OK(t *testing.T) {
	avail := &fakeAvailability{res: &booking.AvailabilityResult{
		Date:           "2026-09-01",
		ProfessionalID: 7,
		FreeSlots:      []string{"08:00:00", "08:30:00"},
	}}
	r := newAppointmentRouter(&fakeAppointmentStore{}, &fakeCreator{}, avail, nil)

	w := doJSON(t, r, http.MethodGet, "/api/professionals/7/free-slots/2026-09-01", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res booking.AvailabilityResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(res.FreeSlots) != 2 || res.FreeSlots[0] != "08:00:00" {
		t.Fatalf("unexpected slots: %v", res.FreeSlots)
	}
}
