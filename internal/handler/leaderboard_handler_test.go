package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vengeful-vineyard/backend/internal/domain"
	"github.com/vengeful-vineyard/backend/internal/service"
	"github.com/vengeful-vineyard/backend/internal/testutil"
)

func newLeaderboardHandler(userRepo *testutil.MockUserRepository) *LeaderboardHandler {
	return NewLeaderboardHandler(service.NewLeaderboardService(userRepo, 30))
}

func TestGetLeaderboard_Success(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	handler := newLeaderboardHandler(userRepo)

	userRepo.AddUser(&domain.User{UserID: 1, OWUserID: 1, FirstName: "Ola", LastName: "Nordmann"})
	userRepo.AddUser(&domain.User{UserID: 2, OWUserID: 2, FirstName: "Kari", LastName: "Nordmann"})
	userRepo.AddPunishment(2, domain.LeaderboardPunishment{
		PunishmentID: 1,
		GroupID:      1,
		Amount:       3,
		PunishmentType: domain.PunishmentType{
			PunishmentTypeID: 1,
			Name:             "Beer",
			Value:            10,
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?offset=0&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetLeaderboard(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []domain.LeaderboardUser
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(response))
	}
	if response[0].UserID != 2 || response[0].TotalValue != 30 {
		t.Errorf("Unexpected top entry: %+v", response[0])
	}
	if response[1].TotalValue != 0 {
		t.Errorf("Expected zero total for unpunished user, got %d", response[1].TotalValue)
	}
}

func TestGetLeaderboard_EmptyResultIsList(t *testing.T) {
	e := echo.New()
	handler := newLeaderboardHandler(testutil.NewMockUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetLeaderboard(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}
}

func TestGetLeaderboard_InvalidOffset(t *testing.T) {
	e := echo.New()
	handler := newLeaderboardHandler(testutil.NewMockUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?offset=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetLeaderboard(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetLeaderboard_NegativeLimit(t *testing.T) {
	e := echo.New()
	handler := newLeaderboardHandler(testutil.NewMockUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetLeaderboard(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
