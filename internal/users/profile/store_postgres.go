// Copyright (c) 2026 Glowlab. All rights reserved.

package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowlab/glowlab/internal/platform/database/schema"
	"github.com/glowlab/glowlab/internal/platform/dberr"
	"github.com/glowlab/glowlab/internal/platform/sec"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func profileColumns() string {
	t := schema.UserProfile
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Email, t.Password, t.DisplayName, t.Role, t.AvatarURL,
		t.PreferredLocale, t.LandingRoute, t.IsActive, t.LastLoginAt,
		t.CreatedAt, t.UpdatedAt,
	)
}

func (repository *PostgresRepository) scanProfile(row interface{ Scan(...any) error }) (*Profile, error) {
	p := &Profile{}
	err := row.Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.DisplayName, &p.Role, &p.AvatarURL,
		&p.PreferredLocale, &p.LandingRoute, &p.IsActive, &p.LastLoginAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		profileColumns(), schema.UserProfile.Table, schema.UserProfile.ID,
	)

	p, err := repository.scanProfile(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile_by_id")
	}
	return p, nil
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE lower(%s) = lower($1)`,
		profileColumns(), schema.UserProfile.Table, schema.UserProfile.Email,
	)

	p, err := repository.scanProfile(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile_by_email")
	}
	return p, nil
}

func (repository *PostgresRepository) Update(context context.Context, p *Profile) error {
	t := schema.UserProfile
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.DisplayName, t.PreferredLocale, t.LandingRoute, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.DisplayName, p.PreferredLocale, p.LandingRoute).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_profile")
}

func (repository *PostgresRepository) UpdateAvatar(context context.Context, id, url string) error {
	t := schema.UserProfile
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.AvatarURL, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, url)
	if err != nil {
		return dberr.Wrap(err, "update_profile_avatar")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpdatePassword(context context.Context, id, newHash string) error {
	t := schema.UserProfile
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.Password, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_profile_password")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) TouchLogin(context context.Context, id string) error {
	t := schema.UserProfile
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1`,
		t.Table, t.LastLoginAt, t.ID,
	)

	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "touch_profile_login")
}

// RoleByUserID resolves the live role for the admin guard. Deactivated
// accounts resolve to no role at all, so a disabled admin is locked out
// even with a valid access token.
func (repository *PostgresRepository) RoleByUserID(context context.Context, userID string) (sec.UserRole, error) {
	t := schema.UserProfile
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = TRUE`,
		t.Role, t.Table, t.ID, t.IsActive,
	)

	var role sec.UserRole
	if err := repository.db.QueryRow(context, query, userID).Scan(&role); err != nil {
		return "", dberr.Wrap(err, "profile_role_by_user_id")
	}
	return role, nil
}
