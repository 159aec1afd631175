package car

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

type CarRepository interface {
	Create(ctx context.Context, car *model.CarEntity) (uint64, error)
	List(ctx context.Context, filter *model.CarFilter) ([]model.CarEntity, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.CarEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.CarEntity, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	Options(ctx context.Context) ([]constant.Option, error)
}

func NewCarRepository(conn *sqlx.DB) CarRepository {
	return &SQL{conn: conn}
}

const (
	carColumns = `id, brand, model, type, year, color, price, COALESCE(description, '') AS description, COALESCE(image_url, '') AS image_url, created_at`

	listCarsBase  = `SELECT ` + carColumns + ` FROM cars WHERE true`
	countCarsBase = `SELECT COUNT(*) FROM cars WHERE true`
	getCarQuery   = `SELECT ` + carColumns + ` FROM cars WHERE id = ?`

	insertCarQuery = `INSERT INTO cars (brand, model, type, year, color, price, description, image_url, created_at) VALUES (?, ?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), NOW())`

	distinctTypesQuery = `SELECT DISTINCT type FROM cars`
	carOptionsQuery    = `SELECT CAST(id AS CHAR) AS value, brand AS label FROM cars ORDER BY brand, id`
)

func (s *SQL) Create(ctx context.Context, car *model.CarEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, insertCarQuery, car.Brand, car.Model, car.Type, car.Year, car.Color, car.Price, car.Description, car.ImageURL)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) List(ctx context.Context, filter *model.CarFilter) ([]model.CarEntity, int64, error) {
	where := ""
	args := make([]any, 0, 3)
	if filter.Type != "" {
		where += " AND LOWER(type) = LOWER(?)"
		args = append(args, filter.Type)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countCarsBase+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := listCarsBase + where + " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, offset)

	items := make([]model.CarEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CarEntity, error) {
	var car model.CarEntity
	if err := s.conn.QueryRowxContext(ctx, getCarQuery, id).StructScan(&car); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.CarEntity, error) {
	var car model.CarEntity
	if err := tx.QueryRowxContext(ctx, getCarQuery+" FOR UPDATE", id).StructScan(&car); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

// DistinctTypes returns every car type as stored, without normalization.
func (s *SQL) DistinctTypes(ctx context.Context) ([]string, error) {
	types := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &types, distinctTypesQuery); err != nil {
		return nil, err
	}
	return types, nil
}

func (s *SQL) Options(ctx context.Context) ([]constant.Option, error) {
	opts := make([]constant.Option, 0)
	if err := s.conn.SelectContext(ctx, &opts, carOptionsQuery); err != nil {
		return nil, err
	}
	return opts, nil
}
