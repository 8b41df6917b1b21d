package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para perfiles de usuario (DIP).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	// FindByEmail devuelve nil, nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
}
