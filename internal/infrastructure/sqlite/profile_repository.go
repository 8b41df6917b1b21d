package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo perfiles de usuario en la base local.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un perfil. Email duplicado -> domain.ErrEmailAlreadyExists.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO profiles (id, email, full_name, role, password_hash, avatar_url, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.FullName, p.Role, p.PasswordHash, p.AvatarURL, p.IsActive,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// FindByEmail devuelve nil, nil si no existe.
func (r *ProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var (
		p                    entity.Profile
		createdAt, updatedAt string
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, email, full_name, role, password_hash, avatar_url, is_active, created_at, updated_at
		FROM profiles WHERE email = ?`, email,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.PasswordHash, &p.AvatarURL, &p.IsActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by email: %w", err)
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
