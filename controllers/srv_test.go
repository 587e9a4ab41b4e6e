package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car_dealership_api/db"
	"car_dealership_api/models"
	"car_dealership_api/session"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeSessions keeps sessions in a map so controller tests run without Redis.
type fakeSessions struct {
	sessions map[string]*session.AppSession
	revoked  []uint
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*session.AppSession{}}
}

func (f *fakeSessions) Create(_ context.Context, id string, userID uint) error {
	f.sessions[id] = &session.AppSession{UserID: userID, IssuedAt: time.Now().Unix()}
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*session.AppSession, error) {
	as, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("session not found")
	}
	return as, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessions) RevokeAllForUser(_ context.Context, userID uint) error {
	f.revoked = append(f.revoked, userID)
	for id, as := range f.sessions {
		if as.UserID == userID {
			delete(f.sessions, id)
		}
	}
	return nil
}

func newTestSrv(t *testing.T) (*Srv, *fakeSessions) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	fs := newFakeSessions()
	return &Srv{
		Repo:       db.NewRepo(conn),
		Sess:       fs,
		Log:        log,
		WebOrigin:  "http://localhost:5173",
		SessionTTL: time.Hour,
	}, fs
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// envelope decodes the {error, data} response body.
func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, _ := envelope(t, w)["data"].(map[string]interface{})
	return data
}

func seedTestCar(t *testing.T, s *Srv, vin, status string) {
	t.Helper()
	car := models.Car{VIN: vin, Brand: "Toyota", Model: "Camry", Year: 2021, Price: 25000,
		Status: status, PostDate: time.Now().UTC()}
	if err := s.Repo.DB.Create(&car).Error; err != nil {
		t.Fatalf("seed car: %v", err)
	}
}

func seedTestUser(t *testing.T, s *Srv, username, role string) uint {
	t.Helper()
	u := models.User{Username: username, PasswordHash: "x", Role: role, FullName: "Full " + username}
	if err := s.Repo.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func seedTestAppointment(t *testing.T, s *Srv, userID uint) uint {
	t.Helper()
	contract := models.Contract{ClientName: "Client", CarVIN: "SEEDVIN", Amount: 25000,
		Status: models.ContractActive, Date: time.Now().UTC()}
	if err := s.Repo.DB.Create(&contract).Error; err != nil {
		t.Fatalf("seed contract: %v", err)
	}
	appt := models.Appointment{ContractID: contract.ContractID, UserID: userID,
		AppointmentDate: time.Now().UTC().Add(24 * time.Hour), DurationMinutes: 60,
		Purpose: models.PurposePickup, Status: models.AppointmentScheduled}
	if err := s.Repo.DB.Create(&appt).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return appt.AppointmentID
}
