package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, id uint64, name, email, phone string) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	LinkProvider(ctx context.Context, id uint64, provider, providerID string) error
	Options(ctx context.Context) ([]constant.Option, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (name, email, phone, password_hash, provider, provider_id, created_at) VALUES (?, ?, NULLIF(?, ''), ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, email, COALESCE(phone, '') AS phone, password_hash, is_admin, provider, provider_id, created_at, updated_at FROM users WHERE true`

	updateProfileQuery  = `UPDATE users SET name = ?, email = ?, phone = NULLIF(?, ''), updated_at = NOW() WHERE id = ?`
	updatePasswordQuery = `UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?`
	linkProviderQuery   = `UPDATE users SET provider = ?, provider_id = ?, updated_at = NOW() WHERE id = ?`
	userOptionsQuery    = `SELECT CAST(id AS CHAR) AS value, name AS label FROM users ORDER BY name`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.PasswordHash, data.Provider, data.ProviderID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 5)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if filter.Provider != "" {
		query += " AND provider = ? AND provider_id = ?"
		args = append(args, filter.Provider, filter.ProviderID)
	}
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, name, email, phone string) error {
	_, err := s.conn.ExecContext(ctx, updateProfileQuery, name, email, phone, id)
	return err
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, updatePasswordQuery, passwordHash, id)
	return err
}

func (s *SQL) LinkProvider(ctx context.Context, id uint64, provider, providerID string) error {
	_, err := s.conn.ExecContext(ctx, linkProviderQuery, provider, providerID, id)
	return err
}

// Options lists users as select options for the admin forms.
func (s *SQL) Options(ctx context.Context) ([]constant.Option, error) {
	opts := make([]constant.Option, 0)
	if err := s.conn.SelectContext(ctx, &opts, userOptionsQuery); err != nil {
		return nil, err
	}
	return opts, nil
}
