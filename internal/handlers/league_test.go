package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/battersup/battersup-api/internal/middleware"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/battersup/battersup-api/pkg/dto"
	"github.com/battersup/battersup-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupLeagueTest(t *testing.T) (*testutil.MockLeagueService, *testutil.MockAuthorizationService, *LeagueHandler, *services.JWTService) {
	t.Helper()
	mockLeagueService := new(testutil.MockLeagueService)
	mockAuthzService := new(testutil.MockAuthorizationService)
	handler := NewLeagueHandler(mockLeagueService, mockAuthzService)
	jwtSvc := services.NewJWTService("test-secret-key", 15*time.Minute, 24*time.Hour)
	return mockLeagueService, mockAuthzService, handler, jwtSvc
}

func TestLeagueHandler_Create_Success(t *testing.T) {
	mockLeagueService, _, handler, jwtSvc := setupLeagueTest(t)

	userID := uuid.New()
	league := &models.League{
		ID:         uuid.New(),
		Name:       "Maple Grove Adult League",
		SeasonYear: 2026,
		Status:     models.LeagueStatusDraft,
		CreatedBy:  userID,
	}

	mockLeagueService.On("CreateWithCommissioner", mock.Anything, userID, "Maple Grove Adult League", (*string)(nil), 2026, models.LeagueStatusDraft).
		Return(league, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/leagues", handler.Create)

	body := dto.CreateLeagueRequest{Name: "Maple Grove Adult League", SeasonYear: 2026}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "commish@example.com")
	req := httptest.NewRequest(http.MethodPost, "/leagues", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.LeagueResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, league.ID, response.ID)
	assert.Equal(t, "Maple Grove Adult League", response.Name)
	assert.Equal(t, userID, response.CreatedBy)

	mockLeagueService.AssertExpectations(t)
}

func TestLeagueHandler_Create_Unauthenticated(t *testing.T) {
	_, _, handler, jwtSvc := setupLeagueTest(t)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/leagues", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/leagues", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLeagueHandler_Create_InvalidSeasonYear(t *testing.T) {
	mockLeagueService, _, handler, jwtSvc := setupLeagueTest(t)

	userID := uuid.New()
	mockLeagueService.On("CreateWithCommissioner", mock.Anything, userID, "League", (*string)(nil), 1999, models.LeagueStatusDraft).
		Return(nil, services.ErrInvalidSeasonYear)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/leagues", handler.Create)

	body := dto.CreateLeagueRequest{Name: "League", SeasonYear: 1999}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "commish@example.com")
	req := httptest.NewRequest(http.MethodPost, "/leagues", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockLeagueService.AssertExpectations(t)
}

func TestLeagueHandler_Update_RequiresCommissioner(t *testing.T) {
	_, mockAuthzService, handler, jwtSvc := setupLeagueTest(t)

	userID := uuid.New()
	leagueID := uuid.New()

	mockAuthzService.On("HasRole", mock.Anything, userID, leagueID, models.RoleCommissioner, (*uuid.UUID)(nil)).
		Return(false, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/leagues/:leagueId", handler.Update)

	body := dto.UpdateLeagueRequest{Name: "Renamed", Status: models.LeagueStatusActive}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "player@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/leagues/"+leagueID.String(), bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	mockAuthzService.AssertExpectations(t)
}

func TestLeagueHandler_List(t *testing.T) {
	mockLeagueService, _, handler, jwtSvc := setupLeagueTest(t)

	userID := uuid.New()
	leagues := []models.League{
		{ID: uuid.New(), Name: "League A", SeasonYear: 2026, Status: models.LeagueStatusActive},
		{ID: uuid.New(), Name: "League B", SeasonYear: 2025, Status: models.LeagueStatusCompleted},
	}

	mockLeagueService.On("GetUserLeagues", mock.Anything, userID).Return(leagues, nil)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/leagues", handler.List)

	token := generateTestToken(t, jwtSvc, userID, "someone@example.com")
	req := httptest.NewRequest(http.MethodGet, "/leagues", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []dto.LeagueResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response, 2)

	mockLeagueService.AssertExpectations(t)
}

func TestLeagueHandler_Delete_Commissioner(t *testing.T) {
	mockLeagueService, mockAuthzService, handler, jwtSvc := setupLeagueTest(t)

	userID := uuid.New()
	leagueID := uuid.New()

	mockAuthzService.On("HasRole", mock.Anything, userID, leagueID, models.RoleCommissioner, (*uuid.UUID)(nil)).
		Return(true, nil)
	mockLeagueService.On("Delete", mock.Anything, leagueID).Return(nil)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Delete("/leagues/:leagueId", handler.Delete)

	token := generateTestToken(t, jwtSvc, userID, "commish@example.com")
	req := httptest.NewRequest(http.MethodDelete, "/leagues/"+leagueID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockLeagueService.AssertExpectations(t)
	mockAuthzService.AssertExpectations(t)
}
