package handlers

import (
	"context"

	"github.com/battersup/battersup-api/internal/middleware"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type FieldHandler struct {
	fieldService FieldServiceInterface
	authzService AuthorizationServiceInterface
}

func NewFieldHandler(fieldService FieldServiceInterface, authzService AuthorizationServiceInterface) *FieldHandler {
	return &FieldHandler{
		fieldService: fieldService,
		authzService: authzService,
	}
}

func (h *FieldHandler) Create(c *drift.Context) {
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
		c.Forbidden("only a commissioner can create fields")
		return
	}

	var req dto.CreateFieldRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if req.DiamondCount < 1 {
		c.BadRequest("diamond_count must be at least 1")
		return
	}

	field, err := h.fieldService.Create(ctx, leagueID, req.Name, req.DiamondCount)
	if err != nil {
		c.InternalServerError("failed to create field")
		return
	}

	_ = c.JSON(201, fieldResponse(field))
}

func (h *FieldHandler) List(c *drift.Context) {
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

	fields, err := h.fieldService.GetByLeague(context.Background(), leagueID)
	if err != nil {
		c.InternalServerError("failed to get fields")
		return
	}

	response := make([]dto.FieldResponse, len(fields))
	for i := range fields {
		response[i] = fieldResponse(&fields[i])
	}

	_ = c.JSON(200, response)
}

func (h *FieldHandler) Update(c *drift.Context) {
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

	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		c.BadRequest("invalid field id")
		return
	}

	ctx := context.Background()

	isCommissioner, err := h.authzService.HasRole(ctx, userID, leagueID, models.RoleCommissioner, nil)
	if err != nil || !isCommissioner {
		c.Forbidden("only a commissioner can update fields")
		return
	}

	var req dto.UpdateFieldRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if req.DiamondCount < 1 {
		c.BadRequest("diamond_count must be at least 1")
		return
	}

	field, err := h.fieldService.Update(ctx, fieldID, req.Name, req.DiamondCount)
	if err != nil {
		c.InternalServerError("failed to update field")
		return
	}

	_ = c.JSON(200, fieldResponse(field))
}

func (h *FieldHandler) Delete(c *drift.Context) {
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

	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		c.BadRequest("invalid field id")
		return
	}

	ctx := context.Background()

	isCommissioner, err := h.authzService.HasRole(ctx, userID, leagueID, models.RoleCommissioner, nil)
	if err != nil || !isCommissioner {
		c.Forbidden("only a commissioner can delete fields")
		return
	}

	if err := h.fieldService.Delete(ctx, fieldID); err != nil {
		c.InternalServerError("failed to delete field")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "field deleted"})
}

func fieldResponse(f *models.Field) dto.FieldResponse {
	return dto.FieldResponse{
		ID:           f.ID,
		LeagueID:     f.LeagueID,
		Name:         f.Name,
		DiamondCount: f.DiamondCount,
	}
}
