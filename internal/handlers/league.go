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

type LeagueHandler struct {
	leagueService LeagueServiceInterface
	authzService  AuthorizationServiceInterface
}

func NewLeagueHandler(leagueService LeagueServiceInterface, authzService AuthorizationServiceInterface) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
		authzService:  authzService,
	}
}

func (h *LeagueHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateLeagueRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	status := req.Status
	if status == "" {
		status = models.LeagueStatusDraft
	}

	league, err := h.leagueService.CreateWithCommissioner(context.Background(), userID, req.Name, req.Description, req.SeasonYear, status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLeagueName),
			errors.Is(err, services.ErrInvalidSeasonYear),
			errors.Is(err, services.ErrInvalidLeagueStatus):
			c.BadRequest(err.Error())
		default:
			c.InternalServerError("failed to create league")
		}
		return
	}

	_ = c.JSON(201, leagueResponse(league))
}

func (h *LeagueHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	leagues, err := h.leagueService.GetUserLeagues(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to get leagues")
		return
	}

	response := make([]dto.LeagueResponse, len(leagues))
	for i := range leagues {
		response[i] = leagueResponse(&leagues[i])
	}

	_ = c.JSON(200, response)
}

func (h *LeagueHandler) Get(c *drift.Context) {
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

	league, err := h.leagueService.GetByID(context.Background(), leagueID)
	if err != nil {
		c.NotFound("league not found")
		return
	}

	_ = c.JSON(200, leagueResponse(league))
}

func (h *LeagueHandler) Update(c *drift.Context) {
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
		c.Forbidden("only a commissioner can update a league")
		return
	}

	var req dto.UpdateLeagueRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	league, err := h.leagueService.Update(ctx, leagueID, req.Name, req.Description, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLeagueName),
			errors.Is(err, services.ErrInvalidLeagueStatus):
			c.BadRequest(err.Error())
		default:
			c.InternalServerError("failed to update league")
		}
		return
	}

	_ = c.JSON(200, leagueResponse(league))
}

func (h *LeagueHandler) Delete(c *drift.Context) {
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
		c.Forbidden("only a commissioner can delete a league")
		return
	}

	if err := h.leagueService.Delete(ctx, leagueID); err != nil {
		c.InternalServerError("failed to delete league")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "league deleted"})
}

func leagueResponse(l *models.League) dto.LeagueResponse {
	return dto.LeagueResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		SeasonYear:  l.SeasonYear,
		Status:      l.Status,
		CreatedBy:   l.CreatedBy,
	}
}
