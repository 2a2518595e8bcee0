// Package profile resolves the authenticated identity to its dashboard
// experience.
package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nerobarber/booking-api/internal/models"
)

type Reader interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

type Resolver struct {
	reader Reader
	log    *zap.Logger
}

func NewResolver(reader Reader, log *zap.Logger) *Resolver {
	return &Resolver{reader: reader, log: log}
}

// ResolveRole maps an identity to "client" or "barber". A missing profile
// or a lookup failure resolves to the client experience: fail open to the
// less privileged view, but never silently.
func (r *Resolver) ResolveRole(ctx context.Context, userID uuid.UUID) string {
	p, err := r.reader.GetProfile(ctx, userID)
	if err != nil {
		r.log.Warn("role lookup failed, defaulting to client",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return models.RoleClient
	}

	if p.Role == models.RoleBarber {
		return models.RoleBarber
	}
	return models.RoleClient
}

// Get returns the full profile for /api/me.
func (r *Resolver) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return r.reader.GetProfile(ctx, userID)
}
