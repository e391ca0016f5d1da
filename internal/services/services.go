// Package services holds the core attendance, team, goal and mood logic.
// Each service takes its store handle and collaborators at construction; the
// HTTP layer stays thin and maps the apperrors taxonomy onto statuses.
package services

import (
	"fmt"

	"github.com/checkinhq/checkin-api/internal/apperrors"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Page is an offset/limit pair. Limit must be 1..MaxPageLimit.
type Page struct {
	Skip  int
	Limit int
}

func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultPageLimit}
}

func (p Page) validate() error {
	if p.Skip < 0 {
		return apperrors.Validation("skip must be >= 0")
	}
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		return apperrors.Validation(fmt.Sprintf("limit must be between 1 and %d", MaxPageLimit))
	}
	return nil
}
