package handlers

import (
	"context"

	"github.com/battersup/battersup-api/internal/middleware"
	"github.com/battersup/battersup-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type ProfileHandler struct {
	profileService ProfileServiceInterface
	authzService   AuthorizationServiceInterface
}

func NewProfileHandler(profileService ProfileServiceInterface, authzService AuthorizationServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authzService:   authzService,
	}
}

func (h *ProfileHandler) GetMe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	profile, err := h.profileService.GetByID(context.Background(), userID)
	if err != nil {
		c.NotFound("profile not found")
		return
	}

	_ = c.JSON(200, dto.ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Phone:     profile.Phone,
		AvatarURL: profile.AvatarURL,
		Provider:  profile.Provider,
	})
}

func (h *ProfileHandler) UpdateMe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	profile, err := h.profileService.Update(context.Background(), userID, req.FullName, req.Phone)
	if err != nil {
		c.InternalServerError("failed to update profile")
		return
	}

	_ = c.JSON(200, dto.ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Phone:     profile.Phone,
		AvatarURL: profile.AvatarURL,
		Provider:  profile.Provider,
	})
}

func (h *ProfileHandler) GetMyRoles(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	assignments, err := h.authzService.RolesFor(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to load roles")
		return
	}

	resp := make([]dto.RoleAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, dto.RoleAssignmentResponse{
			Role:       a.Role,
			LeagueID:   a.LeagueID,
			LeagueName: a.LeagueName,
			TeamID:     a.TeamID,
			TeamName:   a.TeamName,
			AssignedAt: a.AssignedAt,
		})
	}

	_ = c.JSON(200, resp)
}
