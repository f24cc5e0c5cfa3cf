// Package leads persists email leads. Uniqueness of the address is enforced
// by the database; the gateway only checks for existence and inserts.
package leads

import (
	"context"
	"errors"

	"coastfire/internal/logger"
	"coastfire/internal/model"
)

var (
	ErrNotConfigured = errors.New("lead store not configured")
	ErrDuplicate     = errors.New("lead already exists")
)

type Gateway interface {
	// Lookup reports whether a lead with exactly this address exists.
	// A missing row is (false, nil); a failed lookup returns the error.
	Lookup(ctx context.Context, email string) (bool, error)
	// Save inserts the lead. A second lead for the same address yields
	// ErrDuplicate.
	Save(ctx context.Context, lead *model.EmailLead) (*model.EmailLead, error)
}

// Exists is the fail-open form of Lookup used by the request flows: a failed
// lookup is logged and reported as "does not exist" so a signup is never
// blocked by a store outage.
func Exists(ctx context.Context, g Gateway, log *logger.Logger, email string) bool {
	found, err := g.Lookup(ctx, email)
	if err != nil {
		log.Warn("Lead lookup failed, treating as new", "email", email, "error", err)
		return false
	}
	return found
}

// Unconfigured is the gateway used when no database is configured. Every
// operation fails with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Lookup(context.Context, string) (bool, error) {
	return false, ErrNotConfigured
}

func (Unconfigured) Save(context.Context, *model.EmailLead) (*model.EmailLead, error) {
	return nil, ErrNotConfigured
}
