package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SignupCode is a consumable invitation token bound to a league, a role and
// optionally a team. Expiry is a derived state; codes are never deleted by
// redemption.
type SignupCode struct {
	ID        uuid.UUID  `json:"id"`
	LeagueID  uuid.UUID  `json:"league_id"`
	Code      string     `json:"code"`
	Role      string     `json:"role"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UseCount  int        `json:"use_count"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

// Expired reports whether the code's expiry, if set, has passed.
func (c *SignupCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// Exhausted reports whether the code's usage limit, if set, has been reached.
func (c *SignupCode) Exhausted() bool {
	return c.MaxUses != nil && c.UseCount >= *c.MaxUses
}

// NormalizeCode canonicalizes a human-typed token for lookup. Codes are
// compared case-insensitively.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
