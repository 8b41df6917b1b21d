package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre la tabla profiles.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un nuevo perfil.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, role, password_hash, avatar_url, is_active, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Email, p.FullName, p.Role, p.PasswordHash, p.AvatarURL, p.IsActive,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// FindByEmail obtiene un perfil por email (sin distinguir mayúsculas).
func (r *ProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), role, COALESCE(password_hash, ''),
		       COALESCE(avatar_url, ''), is_active, created_at, updated_at
		FROM profiles WHERE lower(email) = lower($1)`
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, email).Scan(
		&p.ID, &p.Email, &p.FullName, &p.Role, &p.PasswordHash,
		&p.AvatarURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by email: %w", err)
	}
	return &p, nil
}
