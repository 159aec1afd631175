// Package admin implements the back-office resources: declarative schemas
// plus list, edit, delete and export operations for transactions and
// credit applications.
package admin

import (
	"context"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	carrepo "github.com/muhammadheryan/car-showroom/repository/car"
	creditrepo "github.com/muhammadheryan/car-showroom/repository/credit"
	transactionrepo "github.com/muhammadheryan/car-showroom/repository/transaction"
	userrepo "github.com/muhammadheryan/car-showroom/repository/user"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
	// exportLimit caps the rows written to one spreadsheet.
	exportLimit = 10000
)

type AdminApp interface {
	TransactionSchema(ctx context.Context) (*model.ResourceSchema, error)
	ListTransactions(ctx context.Context, req *model.TransactionListRequest) (*model.TransactionListResponse, error)
	GetTransaction(ctx context.Context, id uint64) (*model.TransactionDetail, error)
	CreateTransaction(ctx context.Context, form *model.TransactionForm) (*model.TransactionDetail, error)
	UpdateTransaction(ctx context.Context, id uint64, form *model.TransactionForm) (*model.TransactionDetail, error)
	DeleteTransaction(ctx context.Context, id uint64) error
	BulkDeleteTransactions(ctx context.Context, req *model.BulkDeleteRequest) (*model.BulkDeleteResponse, error)
	ExportTransactions(ctx context.Context, req *model.TransactionListRequest) (*model.ExportFile, error)

	CreditApplicationSchema(ctx context.Context) (*model.ResourceSchema, error)
	ListCreditApplications(ctx context.Context, req *model.CreditApplicationListRequest) (*model.CreditApplicationListResponse, error)
	GetCreditApplication(ctx context.Context, id uint64) (*model.CreditApplicationDetail, error)
	CreateCreditApplication(ctx context.Context, form *model.CreditApplicationForm) (*model.CreditApplicationDetail, error)
	UpdateCreditApplication(ctx context.Context, id uint64, form *model.CreditApplicationForm) (*model.CreditApplicationDetail, error)
	DeleteCreditApplication(ctx context.Context, id uint64) error
	BulkDeleteCreditApplications(ctx context.Context, req *model.BulkDeleteRequest) (*model.BulkDeleteResponse, error)
	ExportCreditApplications(ctx context.Context, req *model.CreditApplicationListRequest) (*model.ExportFile, error)
}

type adminAppImpl struct {
	userRepo        userrepo.UserRepository
	carRepo         carrepo.CarRepository
	transactionRepo transactionrepo.TransactionRepository
	creditRepo      creditrepo.CreditApplicationRepository
}

func NewAdminApp(
	userRepo userrepo.UserRepository,
	carRepo carrepo.CarRepository,
	transactionRepo transactionrepo.TransactionRepository,
	creditRepo creditrepo.CreditApplicationRepository,
) AdminApp {
	return &adminAppImpl{
		userRepo:        userRepo,
		carRepo:         carRepo,
		transactionRepo: transactionRepo,
		creditRepo:      creditRepo,
	}
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// checkReferences verifies the user and car a form points at exist.
func (s *adminAppImpl) checkReferences(ctx context.Context, op string, userID, carID uint64) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return validatorx.FieldError("user_id", "exists")
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("["+op+"] err carRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return validatorx.FieldError("car_id", "exists")
	}
	return nil
}

func optionLabel(options []constant.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
