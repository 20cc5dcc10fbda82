package handlers

import (
	"context"
	"errors"

	"github.com/battersup/battersup-api/internal/middleware"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/battersup/battersup-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type TeamHandler struct {
	teamService   TeamServiceInterface
	rosterService RosterServiceInterface
	authzService  AuthorizationServiceInterface
}

func NewTeamHandler(teamService TeamServiceInterface, rosterService RosterServiceInterface, authzService AuthorizationServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:   teamService,
		rosterService: rosterService,
		authzService:  authzService,
	}
}

// canManageTeam allows commissioners league-wide, and managers or coaches
// whose grant covers the team.
func (h *TeamHandler) canManageTeam(ctx context.Context, userID, leagueID, teamID uuid.UUID) bool {
	ok, err := h.authzService.HasRole(ctx, userID, leagueID, models.RoleCommissioner, nil)
	if err == nil && ok {
		return true
	}
	ok, err = h.authzService.HasRole(ctx, userID, leagueID, models.RoleManager, &teamID)
	if err == nil && ok {
		return true
	}
	ok, err = h.authzService.HasRole(ctx, userID, leagueID, models.RoleCoach, &teamID)
	return err == nil && ok
}

func (h *TeamHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	leagueID, err := uuid.Parse(c.Param("leagueId"))
	if err != nil {
		c.BadRequest("invalid league id")
		return
	}

	ctx := context.Background()

	isCommissioner, err := h.authzService.HasRole(ctx, userID, leagueID, models.RoleCommissioner, nil)
	if err != nil || !isCommissioner {
		c.Forbidden("only a commissioner can create teams")
		return
	}

	var req dto.CreateTeamRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	team, err := h.teamService.Create(ctx, leagueID, req.Name, req.Color)
	if err != nil {
		c.InternalServerError("failed to create team")
		return
	}

	_ = c.JSON(201, teamResponse(team))
}

func (h *TeamHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	leagueID, err := uuid.Parse(c.Param("leagueId"))
	if err != nil {
		c.BadRequest("invalid league id")
		return
	}

	teams, err := h.teamService.GetByLeague(context.Background(), leagueID)
	if err != nil {
		c.InternalServerError("failed to get teams")
		return
	}

	response := make([]dto.TeamResponse, len(teams))
	for i := range teams {
		response[i] = teamResponse(&teams[i])
	}

	_ = c.JSON(200, response)
}

func (h *TeamHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.BadRequest("invalid team id")
		return
	}

	team, err := h.teamService.GetByID(context.Background(), teamID)
	if err != nil {
		c.NotFound("team not found")
		return
	}

	_ = c.JSON(200, teamResponse(team))
}

func (h *TeamHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	leagueID, err := uuid.Parse(c.Param("leagueId"))
	if err != nil {
		c.BadRequest("invalid league id")
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.BadRequest("invalid team id")
		return
	}

	ctx := context.Background()

	if !h.canManageTeam(ctx, userID, leagueID, teamID) {
		c.Forbidden("not allowed to manage this team")
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	team, err := h.teamService.Update(ctx, teamID, req.Name, req.Color)
	if err != nil {
		c.InternalServerError("failed to update team")
		return
	}

	_ = c.JSON(200, teamResponse(team))
}

func (h *TeamHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	leagueID, err := uuid.Parse(c.Param("leagueId"))
	if err != nil {
		c.BadRequest("invalid league id")
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.BadRequest("invalid team id")
		return
	}

	ctx := context.Background()

	isCommissioner, err := h.authzService.HasRole(ctx, userID, leagueID, models.RoleCommissioner, nil)
	if err != nil || !isCommissioner {
		c.Forbidden("only a commissioner can delete teams")
		return
	}

	if err := h.teamService.Delete(ctx, teamID); err != nil {
		c.InternalServerError("failed to delete team")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "team deleted"})
}

func (h *TeamHandler) GetRoster(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.BadRequest("invalid team id")
		return
	}

	entries, err := h.rosterService.GetByTeam(context.Background(), teamID)
	if err != nil {
		c.InternalServerError("failed to get roster")
		return
	}

	response := make([]dto.RosterEntryResponse, len(entries))
	for i := range entries {
		response[i] = rosterEntryResponse(&entries[i])
	}

	_ = c.JSON(200, response)
}

func (h *TeamHandler) UpdateRosterEntry(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	leagueID, err := uuid.Parse(c.Param("leagueId"))
	if err != nil {
		c.BadRequest("invalid league id")
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.BadRequest("invalid team id")
		return
	}

	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		c.BadRequest("invalid roster entry id")
		return
	}

	ctx := context.Background()

	if !h.canManageTeam(ctx, userID, leagueID, teamID) {
		c.Forbidden("not allowed to manage this team")
		return
	}

	var req dto.UpdateRosterEntryRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	entry, err := h.rosterService.UpdateEntry(ctx, entryID, teamID, req.Position, req.JerseyNumber, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRosterEntryNotFound):
			c.NotFound("roster entry not found")
		case errors.Is(err, services.ErrInvalidRosterStatus):
			c.BadRequest(err.Error())
		default:
			c.InternalServerError("failed to update roster entry")
		}
		return
	}

	_ = c.JSON(200, rosterEntryResponse(entry))
}

func (h *TeamHandler) RemoveRosterEntry(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	leagueID, err := uuid.Parse(c.Param("leagueId"))
	if err != nil {
		c.BadRequest("invalid league id")
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.BadRequest("invalid team id")
		return
	}

	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		c.BadRequest("invalid roster entry id")
		return
	}

	ctx := context.Background()

	if !h.canManageTeam(ctx, userID, leagueID, teamID) {
		c.Forbidden("not allowed to manage this team")
		return
	}

	if err := h.rosterService.Remove(ctx, entryID, teamID); err != nil {
		if errors.Is(err, services.ErrRosterEntryNotFound) {
			c.NotFound("roster entry not found")
			return
		}
		c.InternalServerError("failed to remove roster entry")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "roster entry removed"})
}

func teamResponse(t *models.Team) dto.TeamResponse {
	return dto.TeamResponse{
		ID:       t.ID,
		LeagueID: t.LeagueID,
		Name:     t.Name,
		Color:    t.Color,
	}
}

func rosterEntryResponse(e *models.RosterEntry) dto.RosterEntryResponse {
	resp := dto.RosterEntryResponse{
		ID:           e.ID,
		TeamID:       e.TeamID,
		PlayerUserID: e.PlayerUserID,
		Position:     e.Position,
		JerseyNumber: e.JerseyNumber,
		Status:       e.Status,
	}
	if e.Player != nil {
		resp.Player = &dto.ProfileResponse{
			ID:        e.Player.ID,
			Email:     e.Player.Email,
			FullName:  e.Player.FullName,
			Phone:     e.Player.Phone,
			AvatarURL: e.Player.AvatarURL,
			Provider:  e.Player.Provider,
		}
	}
	return resp
}
