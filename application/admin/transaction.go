package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	"github.com/muhammadheryan/car-showroom/utils/datetime"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/export"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"github.com/muhammadheryan/car-showroom/utils/money"
	"github.com/muhammadheryan/car-showroom/utils/rangefilter"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
	"go.uber.org/zap"
)

// TotalAmountFilter is the "Total Harga" range filter of the transactions table.
var TotalAmountFilter = rangefilter.Filter{
	Column:   "t.total_amount",
	MinLabel: "Total Harga Terendah",
	MaxLabel: "Total Harga Tertinggi",
	Prefix:   "Rp ",
}

func (s *adminAppImpl) transactionFilter(req *model.TransactionListRequest) (*model.TransactionFilter, []string) {
	bounds := rangefilter.Parse(req.MinTotalAmount, req.MaxTotalAmount)
	page, perPage := normalizePage(req.Page, req.PerPage)

	filter := &model.TransactionFilter{
		Predicates:    TotalAmountFilter.Predicates(bounds),
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Search:        strings.TrimSpace(req.Search),
		SortColumn:    req.Sort,
		SortDesc:      req.Direction == "desc",
		Page:          page,
		PerPage:       perPage,
	}

	indicators := make([]string, 0, 3)
	if text, ok := TotalAmountFilter.Indicator(bounds); ok {
		indicators = append(indicators, text)
	}
	if req.PaymentMethod != "" {
		indicators = append(indicators, "Metode Pembayaran: "+optionLabel(constant.PaymentMethodOptions, req.PaymentMethod))
	}
	if req.Status != "" {
		indicators = append(indicators, "Status: "+optionLabel(constant.TransactionStatusOptions, req.Status))
	}
	return filter, indicators
}

func (s *adminAppImpl) ListTransactions(ctx context.Context, req *model.TransactionListRequest) (*model.TransactionListResponse, error) {
	req.MinTotalAmount = money.StripSeparators(req.MinTotalAmount)
	req.MaxTotalAmount = money.StripSeparators(req.MaxTotalAmount)
	if err := validatorx.ValidateForm(req); err != nil {
		return nil, err
	}

	filter, indicators := s.transactionFilter(req)
	items, total, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListTransactions] err transactionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows := make([]model.TransactionRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.TransactionRow{
			ID:                 item.ID,
			UserName:           item.UserName,
			CarBrand:           item.CarBrand,
			TransactionDate:    datetime.FormatTable(item.TransactionDate),
			TotalAmount:        item.TotalAmount,
			TotalAmountDisplay: money.Format(item.TotalAmount),
			PaymentMethod:      item.PaymentMethod,
			Status:             item.Status,
		})
	}

	return &model.TransactionListResponse{
		Items:      rows,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		Indicators: indicators,
	}, nil
}

func (s *adminAppImpl) GetTransaction(ctx context.Context, id uint64) (*model.TransactionDetail, error) {
	detail, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Admin.GetTransaction] err transactionRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return detail, nil
}

// transactionEntity validates form and converts it into an entity. Amount
// separators are stripped first; empty status and date fall back to
// pending and now.
func (s *adminAppImpl) transactionEntity(ctx context.Context, op string, form *model.TransactionForm) (*model.TransactionEntity, error) {
	form.TotalAmount = money.StripSeparators(form.TotalAmount)
	if err := validatorx.ValidateForm(form); err != nil {
		return nil, err
	}

	amount, err := money.Parse(form.TotalAmount)
	if err != nil {
		return nil, validatorx.FieldError("total_amount", "numeric")
	}
	date, err := datetime.ParseForm(form.TransactionDate)
	if err != nil {
		return nil, validatorx.FieldError("transaction_date", "datetime")
	}
	status := constant.TransactionStatus(form.Status)
	if status == "" {
		status = constant.TransactionStatusPending
	}

	if err := s.checkReferences(ctx, op, form.UserID, form.CarID); err != nil {
		return nil, err
	}

	return &model.TransactionEntity{
		UserID:          form.UserID,
		CarID:           form.CarID,
		TransactionDate: date,
		TotalAmount:     amount,
		PaymentMethod:   constant.PaymentMethod(form.PaymentMethod),
		Status:          status,
	}, nil
}

func (s *adminAppImpl) CreateTransaction(ctx context.Context, form *model.TransactionForm) (*model.TransactionDetail, error) {
	entity, err := s.transactionEntity(ctx, "CreateTransaction", form)
	if err != nil {
		return nil, err
	}

	id, err := s.transactionRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateTransaction] err transactionRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetTransaction(ctx, id)
}

func (s *adminAppImpl) UpdateTransaction(ctx context.Context, id uint64, form *model.TransactionForm) (*model.TransactionDetail, error) {
	if _, err := s.GetTransaction(ctx, id); err != nil {
		return nil, err
	}

	entity, err := s.transactionEntity(ctx, "UpdateTransaction", form)
	if err != nil {
		return nil, err
	}
	entity.ID = id

	if err := s.transactionRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateTransaction] err transactionRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetTransaction(ctx, id)
}

func (s *adminAppImpl) DeleteTransaction(ctx context.Context, id uint64) error {
	affected, err := s.transactionRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteTransaction] err transactionRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *adminAppImpl) BulkDeleteTransactions(ctx context.Context, req *model.BulkDeleteRequest) (*model.BulkDeleteResponse, error) {
	if err := validatorx.ValidateForm(req); err != nil {
		return nil, err
	}

	deleted, err := s.transactionRepo.BulkDelete(ctx, req.IDs)
	if err != nil {
		logger.Error("[BulkDeleteTransactions] err transactionRepo.BulkDelete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.BulkDeleteResponse{Deleted: deleted}, nil
}

func (s *adminAppImpl) ExportTransactions(ctx context.Context, req *model.TransactionListRequest) (*model.ExportFile, error) {
	req.MinTotalAmount = money.StripSeparators(req.MinTotalAmount)
	req.MaxTotalAmount = money.StripSeparators(req.MaxTotalAmount)
	if err := validatorx.ValidateForm(req); err != nil {
		return nil, err
	}

	filter, _ := s.transactionFilter(req)
	filter.Page, filter.PerPage = 1, exportLimit
	items, _, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ExportTransactions] err transactionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	sheet := export.Sheet{
		Name:    "Transaksi",
		Headers: []string{"ID", "Nama Pengguna", "Merek Mobil", "Tanggal Transaksi", "Total Harga", "Metode Pembayaran", "Status"},
		Rows:    make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		sheet.Rows = append(sheet.Rows, []interface{}{
			item.ID,
			item.UserName,
			item.CarBrand,
			datetime.FormatTable(item.TransactionDate),
			money.Format(item.TotalAmount),
			optionLabel(constant.PaymentMethodOptions, string(item.PaymentMethod)),
			optionLabel(constant.TransactionStatusOptions, string(item.Status)),
		})
	}

	content, err := export.XLSX(sheet)
	if err != nil {
		logger.Error("[ExportTransactions] err export.XLSX", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ExportFile{
		Name:        fmt.Sprintf("transaksi-%s.xlsx", datetime.Now().Format("20060102-150405")),
		ContentType: export.ContentTypeXLSX,
		Content:     content,
	}, nil
}
