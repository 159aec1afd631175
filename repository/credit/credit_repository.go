package credit

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-showroom/model"
	"github.com/muhammadheryan/car-showroom/utils/query"
)

type SQL struct {
	conn *sqlx.DB
}

type CreditApplicationRepository interface {
	Create(ctx context.Context, req *model.CreditApplicationEntity) (uint64, error)
	Update(ctx context.Context, req *model.CreditApplicationEntity) error
	GetByID(ctx context.Context, id uint64) (*model.CreditApplicationDetail, error)
	List(ctx context.Context, filter *model.CreditApplicationFilter) ([]model.CreditApplicationDetail, int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	BulkDelete(ctx context.Context, ids []uint64) (int64, error)
}

func NewCreditApplicationRepository(conn *sqlx.DB) CreditApplicationRepository {
	return &SQL{conn: conn}
}

const (
	insertCreditQuery = `INSERT INTO credit_applications (user_id, car_id, application_date, income, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, NOW(), NOW())`
	updateCreditQuery = `UPDATE credit_applications SET user_id = ?, car_id = ?, application_date = ?, income = ?, status = ?, updated_at = NOW() WHERE id = ?`

	selectCreditBase = `SELECT ca.id, ca.user_id, ca.car_id, ca.application_date, ca.income, ca.status, ca.created_at, ca.updated_at,
u.name AS user_name, c.brand AS car_brand, c.model AS car_model
FROM credit_applications ca
JOIN users u ON u.id = ca.user_id
JOIN cars c ON c.id = ca.car_id`

	countCreditBase = `SELECT COUNT(*) FROM credit_applications ca
JOIN users u ON u.id = ca.user_id
JOIN cars c ON c.id = ca.car_id`

	deleteCreditQuery     = `DELETE FROM credit_applications WHERE id = ?`
	bulkDeleteCreditQuery = `DELETE FROM credit_applications WHERE id IN (?)`
)

var sortColumns = map[string]string{
	"user_name":        "u.name",
	"car_brand":        "c.brand",
	"application_date": "ca.application_date",
	"income":           "ca.income",
	"status":           "ca.status",
}

func (r *SQL) Create(ctx context.Context, req *model.CreditApplicationEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertCreditQuery, req.UserID, req.CarID, req.ApplicationDate, req.Income, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, req *model.CreditApplicationEntity) error {
	_, err := r.conn.ExecContext(ctx, updateCreditQuery, req.UserID, req.CarID, req.ApplicationDate, req.Income, req.Status, req.ID)
	return err
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.CreditApplicationDetail, error) {
	var detail model.CreditApplicationDetail
	if err := r.conn.QueryRowxContext(ctx, selectCreditBase+" WHERE ca.id = ?", id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) List(ctx context.Context, filter *model.CreditApplicationFilter) ([]model.CreditApplicationDetail, int64, error) {
	where, args := buildWhere(filter)

	var total int64
	if err := r.conn.GetContext(ctx, &total, countCreditBase+where, args...); err != nil {
		return nil, 0, err
	}

	order := " ORDER BY ca.id DESC"
	if col, ok := sortColumns[filter.SortColumn]; ok {
		dir := " ASC"
		if filter.SortDesc {
			dir = " DESC"
		}
		order = " ORDER BY " + col + dir + ", ca.id DESC"
	}

	listQuery := selectCreditBase + where + order + " LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	items := make([]model.CreditApplicationDetail, 0)
	if err := r.conn.SelectContext(ctx, &items, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func buildWhere(filter *model.CreditApplicationFilter) (string, []any) {
	where := " WHERE true"
	args := make([]any, 0, len(filter.Predicates)+4)

	for _, p := range filter.Predicates {
		clause, arg := p.SQL()
		where += " AND " + clause
		args = append(args, arg)
	}
	if filter.Status != "" {
		where += " AND ca.status = ?"
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		like := query.ContainsPattern(filter.Search)
		where += " AND (u.name LIKE ? OR c.brand LIKE ? OR ca.status LIKE ?)"
		args = append(args, like, like, like)
	}
	return where, args
}

func (r *SQL) Delete(ctx context.Context, id uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, deleteCreditQuery, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) BulkDelete(ctx context.Context, ids []uint64) (int64, error) {
	stmt, args, err := sqlx.In(bulkDeleteCreditQuery, ids)
	if err != nil {
		return 0, err
	}
	res, err := r.conn.ExecContext(ctx, r.conn.Rebind(stmt), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
