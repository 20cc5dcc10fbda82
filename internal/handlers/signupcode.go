package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/battersup/battersup-api/internal/middleware"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/battersup/battersup-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type SignupCodeHandler struct {
	codeService   SignupCodeServiceInterface
	leagueService LeagueServiceInterface
	authzService  AuthorizationServiceInterface
	emailService  EmailServiceInterface
	baseURL       string
}

func NewSignupCodeHandler(
	codeService SignupCodeServiceInterface,
	leagueService LeagueServiceInterface,
	authzService AuthorizationServiceInterface,
	emailService EmailServiceInterface,
	baseURL string,
) *SignupCodeHandler {
	return &SignupCodeHandler{
		codeService:   codeService,
		leagueService: leagueService,
		authzService:  authzService,
		emailService:  emailService,
		baseURL:       baseURL,
	}
}

func (h *SignupCodeHandler) Issue(c *drift.Context) {
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
		c.Forbidden("only a commissioner can issue signup codes")
		return
	}

	var req dto.IssueCodeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	code, err := h.codeService.Issue(ctx, leagueID, req.Role, req.TeamID, req.MaxUses, req.ExpiresAt, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole),
			errors.Is(err, services.ErrInvalidTeamScope),
			errors.Is(err, services.ErrInvalidMaxUses),
			errors.Is(err, services.ErrInvalidExpiry):
			c.BadRequest(err.Error())
		default:
			c.InternalServerError("failed to issue signup code")
		}
		return
	}

	if req.SendTo != "" && h.emailService != nil {
		league, lerr := h.leagueService.GetByID(ctx, leagueID)
		if lerr == nil {
			joinURL := fmt.Sprintf("%s/join/%s", h.baseURL, code.Code)
			if serr := h.emailService.SendSignupCode(req.SendTo, league.Name, code.Role, code.Code, joinURL); serr != nil {
				log.Printf("Failed to send signup code email: %v", serr)
			}
		}
	}

	_ = c.JSON(201, signupCodeResponse(code))
}

func (h *SignupCodeHandler) List(c *drift.Context) {
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
		c.Forbidden("only a commissioner can list signup codes")
		return
	}

	codes, err := h.codeService.GetByLeague(ctx, leagueID)
	if err != nil {
		c.InternalServerError("failed to get signup codes")
		return
	}

	response := make([]dto.SignupCodeResponse, len(codes))
	for i := range codes {
		response[i] = signupCodeResponse(&codes[i])
	}

	_ = c.JSON(200, response)
}

func (h *SignupCodeHandler) Disable(c *drift.Context) {
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

	codeID, err := uuid.Parse(c.Param("codeId"))
	if err != nil {
		c.BadRequest("invalid code id")
		return
	}

	ctx := context.Background()

	isCommissioner, err := h.authzService.HasRole(ctx, userID, leagueID, models.RoleCommissioner, nil)
	if err != nil || !isCommissioner {
		c.Forbidden("only a commissioner can disable signup codes")
		return
	}

	if err := h.codeService.Disable(ctx, codeID, leagueID); err != nil {
		if errors.Is(err, services.ErrCodeNotFound) {
			c.NotFound("signup code not found")
			return
		}
		c.InternalServerError("failed to disable signup code")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "signup code disabled"})
}

func signupCodeResponse(sc *models.SignupCode) dto.SignupCodeResponse {
	return dto.SignupCodeResponse{
		ID:        sc.ID,
		LeagueID:  sc.LeagueID,
		Code:      sc.Code,
		Role:      sc.Role,
		TeamID:    sc.TeamID,
		MaxUses:   sc.MaxUses,
		UseCount:  sc.UseCount,
		ExpiresAt: sc.ExpiresAt,
	}
}
