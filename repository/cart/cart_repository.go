package cart

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-showroom/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CartRepository interface {
	Create(ctx context.Context, userID, carID uint64) (*model.CartEntity, error)
	Get(ctx context.Context, userID, carID uint64) (*model.CartEntity, error)
	Remove(ctx context.Context, userID, carID uint64) (int64, error)
	RemoveTx(ctx context.Context, tx *sqlx.Tx, userID, carID uint64) error
	ListByUser(ctx context.Context, userID uint64) ([]model.CartItem, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	insertCartQuery = `INSERT INTO carts (user_id, car_id, created_at, updated_at) VALUES (?, ?, NOW(), NOW())`
	getCartQuery    = `SELECT id, user_id, car_id, created_at, updated_at FROM carts WHERE user_id = ? AND car_id = ? LIMIT 1`
	deleteCartQuery = `DELETE FROM carts WHERE user_id = ? AND car_id = ?`
	countCartQuery  = `SELECT COUNT(*) FROM carts WHERE user_id = ?`

	listCartQuery = `SELECT ct.id, ct.car_id, c.brand, c.model, c.type, c.price, COALESCE(c.image_url, '') AS image_url, ct.created_at
FROM carts ct
JOIN cars c ON c.id = ct.car_id
WHERE ct.user_id = ?
ORDER BY ct.created_at DESC, ct.id DESC`
)

func (s *SQL) Create(ctx context.Context, userID, carID uint64) (*model.CartEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertCartQuery, userID, carID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.CartEntity{ID: uint64(id), UserID: userID, CarID: carID}, nil
}

func (s *SQL) Get(ctx context.Context, userID, carID uint64) (*model.CartEntity, error) {
	var entity model.CartEntity
	if err := s.conn.QueryRowxContext(ctx, getCartQuery, userID, carID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Remove deletes the user's cart rows for the car and returns how many were removed.
func (s *SQL) Remove(ctx context.Context, userID, carID uint64) (int64, error) {
	res, err := s.conn.ExecContext(ctx, deleteCartQuery, userID, carID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) RemoveTx(ctx context.Context, tx *sqlx.Tx, userID, carID uint64) error {
	_, err := tx.ExecContext(ctx, deleteCartQuery, userID, carID)
	return err
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	if err := s.conn.SelectContext(ctx, &items, listCartQuery, userID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countCartQuery, userID); err != nil {
		return 0, err
	}
	return total, nil
}
