package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"github.com/battersup/battersup-api/internal/middleware"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/battersup/battersup-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type JoinHandler struct {
	redemptionService RedemptionServiceInterface
	codeService       SignupCodeServiceInterface
	leagueService     LeagueServiceInterface
	teamService       TeamServiceInterface
}

func NewJoinHandler(
	redemptionService RedemptionServiceInterface,
	codeService SignupCodeServiceInterface,
	leagueService LeagueServiceInterface,
	teamService TeamServiceInterface,
) *JoinHandler {
	return &JoinHandler{
		redemptionService: redemptionService,
		codeService:       codeService,
		leagueService:     leagueService,
		teamService:       teamService,
	}
}

// Join redeems a signup code for the authenticated user.
func (h *JoinHandler) Join(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.JoinRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Code == "" {
		c.BadRequest("code is required")
		return
	}

	result, err := h.redemptionService.Redeem(context.Background(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCodeNotFound):
			c.NotFound("signup code not found")
		case errors.Is(err, services.ErrCodeExpired):
			_ = c.JSON(410, map[string]string{"error": "signup code has expired"})
		case errors.Is(err, services.ErrCodeExhausted):
			_ = c.JSON(410, map[string]string{"error": "signup code has no uses left"})
		case errors.Is(err, services.ErrRedemptionConflict):
			_ = c.JSON(409, map[string]string{"error": "signup code was claimed concurrently, try again"})
		default:
			c.InternalServerError("failed to redeem signup code")
		}
		return
	}

	_ = c.JSON(200, dto.JoinResponse{
		LeagueID:   result.LeagueID,
		LeagueName: result.LeagueName,
		Role:       result.Role,
		TeamID:     result.TeamID,
		TeamName:   result.TeamName,
	})
}

// ViewJoin renders a public preview page for a signup code link. It never
// consumes a use.
func (h *JoinHandler) ViewJoin(c *drift.Context) {
	rawCode := c.Param("code")

	code, err := h.codeService.GetByCode(context.Background(), rawCode)
	if err != nil {
		h.renderError(c, "This signup code does not exist")
		return
	}

	if code.Expired(time.Now()) {
		h.renderError(c, "This signup code has expired")
		return
	}
	if code.Exhausted() {
		h.renderError(c, "This signup code has no uses left")
		return
	}

	league, err := h.leagueService.GetByID(context.Background(), code.LeagueID)
	if err != nil {
		h.renderError(c, "League not found")
		return
	}

	scope := league.Name
	if code.TeamID != nil {
		if team, terr := h.teamService.GetByID(context.Background(), *code.TeamID); terr == nil {
			scope = fmt.Sprintf("%s (%s)", league.Name, team.Name)
		}
	}

	h.renderJoinPage(c, code.Code, code.Role, scope)
}

func (h *JoinHandler) renderJoinPage(c *drift.Context, code, role, scope string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Join %s</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 400px; margin: 50px auto; padding: 20px; text-align: center; }
        h1 { color: #333; }
        p { color: #666; margin: 20px 0; }
        .league-name { font-weight: bold; color: #333; }
        .role { display: inline-block; background: #eff6ff; color: #1d4ed8; border-radius: 9999px; padding: 4px 14px; font-size: 14px; font-weight: 500; }
        .code-box { background: #f3f4f6; border: 1px solid #e5e7eb; border-radius: 6px; padding: 12px; font-family: monospace; font-size: 20px; letter-spacing: 2px; color: #111827; margin: 24px 0; }
        .hint { color: #9ca3af; font-size: 13px; }
    </style>
</head>
<body>
    <h1>You're invited!</h1>
    <p>Join <span class="league-name">%s</span> as</p>
    <p><span class="role">%s</span></p>
    <div class="code-box">%s</div>
    <p class="hint">Open the BattersUp app and enter this code to join.</p>
</body>
</html>`, html.EscapeString(scope), html.EscapeString(scope), html.EscapeString(role), html.EscapeString(code))

	_ = c.HTML(200, page)
}

func (h *JoinHandler) renderError(c *drift.Context, message string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Signup Code</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 400px; margin: 50px auto; padding: 20px; text-align: center; }
        h1 { color: #ef4444; }
        p { color: #666; }
    </style>
</head>
<body>
    <h1>Unable to join</h1>
    <p>%s</p>
</body>
</html>`, html.EscapeString(message))

	_ = c.HTML(400, page)
}
