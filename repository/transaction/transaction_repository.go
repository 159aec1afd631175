package transaction

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	"github.com/muhammadheryan/car-showroom/utils/query"
)

type SQL struct {
	conn *sqlx.DB
}

type TransactionRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.TransactionEntity) (uint64, error)
	Create(ctx context.Context, req *model.TransactionEntity) (uint64, error)
	Update(ctx context.Context, req *model.TransactionEntity) error
	UpdateStatusIf(ctx context.Context, id uint64, from, to constant.TransactionStatus) (bool, error)
	GetByID(ctx context.Context, id uint64) (*model.TransactionDetail, error)
	List(ctx context.Context, filter *model.TransactionFilter) ([]model.TransactionDetail, int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	BulkDelete(ctx context.Context, ids []uint64) (int64, error)
}

func NewTransactionRepository(conn *sqlx.DB) TransactionRepository {
	return &SQL{conn: conn}
}

const (
	insertTransactionQuery = `INSERT INTO transactions (user_id, car_id, transaction_date, total_amount, payment_method, status, latitude, longitude, order_address, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	updateTransactionQuery = `UPDATE transactions SET user_id = ?, car_id = ?, transaction_date = ?, total_amount = ?, payment_method = ?, status = ?, updated_at = NOW() WHERE id = ?`

	updateStatusIfQuery = `UPDATE transactions SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?`

	selectTransactionBase = `SELECT t.id, t.user_id, t.car_id, t.transaction_date, t.total_amount, t.payment_method, t.status,
t.latitude, t.longitude, COALESCE(t.order_address, '') AS order_address, t.created_at, t.updated_at,
u.name AS user_name, c.brand AS car_brand, c.model AS car_model
FROM transactions t
JOIN users u ON u.id = t.user_id
JOIN cars c ON c.id = t.car_id`

	countTransactionBase = `SELECT COUNT(*) FROM transactions t
JOIN users u ON u.id = t.user_id
JOIN cars c ON c.id = t.car_id`

	deleteTransactionQuery     = `DELETE FROM transactions WHERE id = ?`
	bulkDeleteTransactionQuery = `DELETE FROM transactions WHERE id IN (?)`
)

// sortColumns whitelists the admin table columns that can be sorted on.
var sortColumns = map[string]string{
	"user_name":        "u.name",
	"car_brand":        "c.brand",
	"transaction_date": "t.transaction_date",
	"total_amount":     "t.total_amount",
	"payment_method":   "t.payment_method",
	"status":           "t.status",
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.TransactionEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertTransactionQuery, insertArgs(req)...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Create(ctx context.Context, req *model.TransactionEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertTransactionQuery, insertArgs(req)...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func insertArgs(req *model.TransactionEntity) []any {
	var address any
	if req.OrderAddress != "" {
		address = req.OrderAddress
	}
	return []any{req.UserID, req.CarID, req.TransactionDate, req.TotalAmount, req.PaymentMethod, req.Status, req.Latitude, req.Longitude, address}
}

func (r *SQL) Update(ctx context.Context, req *model.TransactionEntity) error {
	_, err := r.conn.ExecContext(ctx, updateTransactionQuery, req.UserID, req.CarID, req.TransactionDate, req.TotalAmount, req.PaymentMethod, req.Status, req.ID)
	return err
}

// UpdateStatusIf moves the transaction to status to only while it is in
// status from. It reports whether a row changed.
func (r *SQL) UpdateStatusIf(ctx context.Context, id uint64, from, to constant.TransactionStatus) (bool, error) {
	res, err := r.conn.ExecContext(ctx, updateStatusIfQuery, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.TransactionDetail, error) {
	var detail model.TransactionDetail
	if err := r.conn.QueryRowxContext(ctx, selectTransactionBase+" WHERE t.id = ?", id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) List(ctx context.Context, filter *model.TransactionFilter) ([]model.TransactionDetail, int64, error) {
	where, args := buildWhere(filter)

	var total int64
	if err := r.conn.GetContext(ctx, &total, countTransactionBase+where, args...); err != nil {
		return nil, 0, err
	}

	listQuery := selectTransactionBase + where + orderBy(filter) + " LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	items := make([]model.TransactionDetail, 0)
	if err := r.conn.SelectContext(ctx, &items, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func buildWhere(filter *model.TransactionFilter) (string, []any) {
	where := " WHERE true"
	args := make([]any, 0, len(filter.Predicates)+6)

	for _, p := range filter.Predicates {
		clause, arg := p.SQL()
		where += " AND " + clause
		args = append(args, arg)
	}
	if filter.PaymentMethod != "" {
		where += " AND t.payment_method = ?"
		args = append(args, filter.PaymentMethod)
	}
	if filter.Status != "" {
		where += " AND t.status = ?"
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		like := query.ContainsPattern(filter.Search)
		where += " AND (u.name LIKE ? OR c.brand LIKE ? OR t.payment_method LIKE ? OR t.status LIKE ?)"
		args = append(args, like, like, like, like)
	}
	return where, args
}

func orderBy(filter *model.TransactionFilter) string {
	col, ok := sortColumns[filter.SortColumn]
	if !ok {
		return " ORDER BY t.id DESC"
	}
	dir := " ASC"
	if filter.SortDesc {
		dir = " DESC"
	}
	return " ORDER BY " + col + dir + ", t.id DESC"
}

func (r *SQL) Delete(ctx context.Context, id uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, deleteTransactionQuery, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) BulkDelete(ctx context.Context, ids []uint64) (int64, error) {
	stmt, args, err := sqlx.In(bulkDeleteTransactionQuery, ids)
	if err != nil {
		return 0, err
	}
	res, err := r.conn.ExecContext(ctx, r.conn.Rebind(stmt), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
