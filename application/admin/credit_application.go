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

// IncomeFilter is the "Pendapatan" range filter of the credit applications table.
var IncomeFilter = rangefilter.Filter{
	Column:   "ca.income",
	MinLabel: "Pendapatan Terendah",
	MaxLabel: "Pendapatan Tertinggi",
	Prefix:   "Rp ",
}

func (s *adminAppImpl) creditFilter(req *model.CreditApplicationListRequest) (*model.CreditApplicationFilter, []string) {
	bounds := rangefilter.Parse(req.MinIncome, req.MaxIncome)
	page, perPage := normalizePage(req.Page, req.PerPage)

	filter := &model.CreditApplicationFilter{
		Predicates: IncomeFilter.Predicates(bounds),
		Status:     req.Status,
		Search:     strings.TrimSpace(req.Search),
		SortColumn: req.Sort,
		SortDesc:   req.Direction == "desc",
		Page:       page,
		PerPage:    perPage,
	}

	indicators := make([]string, 0, 2)
	if text, ok := IncomeFilter.Indicator(bounds); ok {
		indicators = append(indicators, text)
	}
	if req.Status != "" {
		indicators = append(indicators, "Status: "+optionLabel(constant.CreditStatusOptions, req.Status))
	}
	return filter, indicators
}

func (s *adminAppImpl) ListCreditApplications(ctx context.Context, req *model.CreditApplicationListRequest) (*model.CreditApplicationListResponse, error) {
	req.MinIncome = money.StripSeparators(req.MinIncome)
	req.MaxIncome = money.StripSeparators(req.MaxIncome)
	if err := validatorx.ValidateForm(req); err != nil {
		return nil, err
	}

	filter, indicators := s.creditFilter(req)
	items, total, err := s.creditRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListCreditApplications] err creditRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows := make([]model.CreditApplicationRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.CreditApplicationRow{
			ID:              item.ID,
			UserName:        item.UserName,
			CarBrand:        item.CarBrand,
			ApplicationDate: datetime.FormatTable(item.ApplicationDate),
			Income:          item.Income,
			IncomeDisplay:   money.Format(item.Income),
			Status:          item.Status,
		})
	}

	return &model.CreditApplicationListResponse{
		Items:      rows,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		Indicators: indicators,
	}, nil
}

func (s *adminAppImpl) GetCreditApplication(ctx context.Context, id uint64) (*model.CreditApplicationDetail, error) {
	detail, err := s.creditRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCreditApplication] err creditRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return detail, nil
}

func (s *adminAppImpl) creditEntity(ctx context.Context, op string, form *model.CreditApplicationForm) (*model.CreditApplicationEntity, error) {
	form.Income = money.StripSeparators(form.Income)
	if err := validatorx.ValidateForm(form); err != nil {
		return nil, err
	}

	income, err := money.Parse(form.Income)
	if err != nil {
		return nil, validatorx.FieldError("income", "numeric")
	}
	date, err := datetime.ParseForm(form.ApplicationDate)
	if err != nil {
		return nil, validatorx.FieldError("application_date", "datetime")
	}
	status := constant.CreditStatus(form.Status)
	if status == "" {
		status = constant.CreditStatusPending
	}

	if err := s.checkReferences(ctx, op, form.UserID, form.CarID); err != nil {
		return nil, err
	}

	return &model.CreditApplicationEntity{
		UserID:          form.UserID,
		CarID:           form.CarID,
		ApplicationDate: date,
		Income:          income,
		Status:          status,
	}, nil
}

func (s *adminAppImpl) CreateCreditApplication(ctx context.Context, form *model.CreditApplicationForm) (*model.CreditApplicationDetail, error) {
	entity, err := s.creditEntity(ctx, "CreateCreditApplication", form)
	if err != nil {
		return nil, err
	}

	id, err := s.creditRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateCreditApplication] err creditRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetCreditApplication(ctx, id)
}

func (s *adminAppImpl) UpdateCreditApplication(ctx context.Context, id uint64, form *model.CreditApplicationForm) (*model.CreditApplicationDetail, error) {
	if _, err := s.GetCreditApplication(ctx, id); err != nil {
		return nil, err
	}

	entity, err := s.creditEntity(ctx, "UpdateCreditApplication", form)
	if err != nil {
		return nil, err
	}
	entity.ID = id

	if err := s.creditRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateCreditApplication] err creditRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.GetCreditApplication(ctx, id)
}

func (s *adminAppImpl) DeleteCreditApplication(ctx context.Context, id uint64) error {
	affected, err := s.creditRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteCreditApplication] err creditRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *adminAppImpl) BulkDeleteCreditApplications(ctx context.Context, req *model.BulkDeleteRequest) (*model.BulkDeleteResponse, error) {
	if err := validatorx.ValidateForm(req); err != nil {
		return nil, err
	}

	deleted, err := s.creditRepo.BulkDelete(ctx, req.IDs)
	if err != nil {
		logger.Error("[BulkDeleteCreditApplications] err creditRepo.BulkDelete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.BulkDeleteResponse{Deleted: deleted}, nil
}

func (s *adminAppImpl) ExportCreditApplications(ctx context.Context, req *model.CreditApplicationListRequest) (*model.ExportFile, error) {
	req.MinIncome = money.StripSeparators(req.MinIncome)
	req.MaxIncome = money.StripSeparators(req.MaxIncome)
	if err := validatorx.ValidateForm(req); err != nil {
		return nil, err
	}

	filter, _ := s.creditFilter(req)
	filter.Page, filter.PerPage = 1, exportLimit
	items, _, err := s.creditRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ExportCreditApplications] err creditRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	sheet := export.Sheet{
		Name:    "Pengajuan Kredit",
		Headers: []string{"ID", "Nama Pengguna", "Merek Mobil", "Tanggal Pengajuan", "Pendapatan", "Status"},
		Rows:    make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		sheet.Rows = append(sheet.Rows, []interface{}{
			item.ID,
			item.UserName,
			item.CarBrand,
			datetime.FormatTable(item.ApplicationDate),
			money.Format(item.Income),
			optionLabel(constant.CreditStatusOptions, string(item.Status)),
		})
	}

	content, err := export.XLSX(sheet)
	if err != nil {
		logger.Error("[ExportCreditApplications] err export.XLSX", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ExportFile{
		Name:        fmt.Sprintf("pengajuan-kredit-%s.xlsx", datetime.Now().Format("20060102-150405")),
		ContentType: export.ContentTypeXLSX,
		Content:     content,
	}, nil
}
