package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/entities"
	"BE-Hotel-Booking/app/usecases"
)

type stubValidator struct {
	validate *validator.Validate
}

func (v *stubValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// fakeReservationUsecase returns a canned result or error for every call.
type fakeReservationUsecase struct {
	reservation entities.Reservation
	err         error
}

func (f *fakeReservationUsecase) Create(entities.ReservationRequest) (entities.Reservation, error) {
	return f.reservation, f.err
}
func (f *fakeReservationUsecase) Update(string, entities.ReservationRequest) (entities.Reservation, error) {
	return f.reservation, f.err
}
func (f *fakeReservationUsecase) GetAll() ([]entities.Reservation, error) {
	return []entities.Reservation{f.reservation}, f.err
}
func (f *fakeReservationUsecase) GetByUserEmail(string) ([]entities.Reservation, error) {
	return []entities.Reservation{f.reservation}, f.err
}
func (f *fakeReservationUsecase) GetByID(string) (entities.Reservation, error) {
	return f.reservation, f.err
}
func (f *fakeReservationUsecase) Cancel(string, string, string) error { return f.err }
func (f *fakeReservationUsecase) Delete(string, string, string) error { return f.err }

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &stubValidator{validate: validator.New()}

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validBody = `{
	"roomType": "deluxe",
	"check_in_date": "2026-01-10",
	"check_out_date": "2026-01-12",
	"occupancy": 2,
	"extras": [{"name": "Spa", "value": true}]
}`

func TestCreateReservationStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"admitted", nil, http.StatusCreated},
		{"invalid date", &usecases.AdmissionError{Kind: usecases.RejectInvalidDateFormat, Message: "bad date"}, http.StatusBadRequest},
		{"check-in too early", &usecases.AdmissionError{Kind: usecases.RejectCheckInTooEarly, Message: "too early"}, http.StatusBadRequest},
		{"check-out too early", &usecases.AdmissionError{Kind: usecases.RejectCheckOutTooEarly, Message: "too early"}, http.StatusBadRequest},
		{"ordering", &usecases.AdmissionError{Kind: usecases.RejectCheckOutBeforeCheckIn, Message: "backwards"}, http.StatusBadRequest},
		{"unknown type", &usecases.AdmissionError{Kind: usecases.RejectUnknownRoomType, Message: "unknown"}, http.StatusNotFound},
		{"no availability", &usecases.AdmissionError{Kind: usecases.RejectNoRoomAvailable, Message: "full"}, http.StatusConflict},
		{"misconfiguration", &usecases.AdmissionError{Kind: usecases.RejectConfiguration, Message: "no price"}, http.StatusInternalServerError},
		{"usecase error", &usecases.UseCaseError{Code: http.StatusConflict, Message: "cancelled"}, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewReservationHandler(&fakeReservationUsecase{err: tc.err})
			c, rec := newTestContext(t, http.MethodPost, "/reservations", validBody)

			if err := handler.CreateReservation(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Errorf("status: got %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestCreateReservationRejectsMalformedBody(t *testing.T) {
	handler := NewReservationHandler(&fakeReservationUsecase{})
	c, rec := newTestContext(t, http.MethodPost, "/reservations", `{"roomType": 42`)

	if err := handler.CreateReservation(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestCreateReservationRejectsUnknownExtra(t *testing.T) {
	handler := NewReservationHandler(&fakeReservationUsecase{})
	body := strings.Replace(validBody, "Spa", "Helipad", 1)
	c, rec := newTestContext(t, http.MethodPost, "/reservations", body)

	if err := handler.CreateReservation(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestGetReservationsByEmailForbiddenForOtherUsers(t *testing.T) {
	handler := NewReservationHandler(&fakeReservationUsecase{})
	c, rec := newTestContext(t, http.MethodGet, "/reservations/user/other@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("other@example.com")
	c.Set("auth.email", "me@example.com")
	c.Set("auth.role", "user")

	if err := handler.GetReservationsByEmail(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestGetReservationsByEmailAllowsAdmin(t *testing.T) {
	handler := NewReservationHandler(&fakeReservationUsecase{})
	c, rec := newTestContext(t, http.MethodGet, "/reservations/user/other@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("other@example.com")
	c.Set("auth.email", "admin@example.com")
	c.Set("auth.role", "admin")

	if err := handler.GetReservationsByEmail(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}
