package transport

import (
	"net/http"

	"github.com/muhammadheryan/car-showroom/model"
)

func transactionListRequest(r *http.Request) *model.TransactionListRequest {
	q := r.URL.Query()
	return &model.TransactionListRequest{
		MinTotalAmount: q.Get("min_total_amount"),
		MaxTotalAmount: q.Get("max_total_amount"),
		PaymentMethod:  q.Get("payment_method"),
		Status:         q.Get("status"),
		Search:         q.Get("search"),
		Sort:           q.Get("sort"),
		Direction:      q.Get("direction"),
		Page:           queryInt(r, "page"),
		PerPage:        queryInt(r, "per_page"),
	}
}

func creditApplicationListRequest(r *http.Request) *model.CreditApplicationListRequest {
	q := r.URL.Query()
	return &model.CreditApplicationListRequest{
		MinIncome: q.Get("min_income"),
		MaxIncome: q.Get("max_income"),
		Status:    q.Get("status"),
		Search:    q.Get("search"),
		Sort:      q.Get("sort"),
		Direction: q.Get("direction"),
		Page:      queryInt(r, "page"),
		PerPage:   queryInt(r, "per_page"),
	}
}

// AdminTransactionSchema handler
// @Summary Transaction resource schema
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ResourceSchema
// @Router /admin/transactions/schema [get]
func (s *RestHandler) AdminTransactionSchema(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.TransactionSchema(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminListTransactions handler
// @Summary List transactions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param min_total_amount query string false "Lower bound of total amount"
// @Param max_total_amount query string false "Upper bound of total amount"
// @Param payment_method query string false "Payment method"
// @Param status query string false "Status"
// @Param search query string false "Search"
// @Param sort query string false "Sort column"
// @Param direction query string false "asc or desc"
// @Param page query int false "Page"
// @Param per_page query int false "Rows per page"
// @Success 200 {object} model.TransactionListResponse
// @Failure 400 {object} Response
// @Router /admin/transactions [get]
func (s *RestHandler) AdminListTransactions(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.ListTransactions(r.Context(), transactionListRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminGetTransaction handler
// @Summary Transaction detail
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} model.TransactionDetail
// @Failure 404 {object} Response
// @Router /admin/transactions/{id} [get]
func (s *RestHandler) AdminGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminCreateTransaction handler
// @Summary Create transaction
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TransactionForm true "Transaction"
// @Success 201 {object} model.TransactionDetail
// @Failure 400 {object} Response
// @Router /admin/transactions [post]
func (s *RestHandler) AdminCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var form model.TransactionForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.CreateTransaction(r.Context(), &form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// AdminUpdateTransaction handler
// @Summary Update transaction
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body model.TransactionForm true "Transaction"
// @Success 200 {object} model.TransactionDetail
// @Failure 400 {object} Response
// @Router /admin/transactions/{id} [put]
func (s *RestHandler) AdminUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var form model.TransactionForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.UpdateTransaction(r.Context(), id, &form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminDeleteTransaction handler
// @Summary Delete transaction
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/transactions/{id} [delete]
func (s *RestHandler) AdminDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminBulkDeleteTransactions handler
// @Summary Delete several transactions
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BulkDeleteRequest true "IDs"
// @Success 200 {object} model.BulkDeleteResponse
// @Router /admin/transactions/bulk-delete [post]
func (s *RestHandler) AdminBulkDeleteTransactions(w http.ResponseWriter, r *http.Request) {
	var req model.BulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.BulkDeleteTransactions(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminExportTransactions handler
// @Summary Export transactions as xlsx
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/transactions/export [get]
func (s *RestHandler) AdminExportTransactions(w http.ResponseWriter, r *http.Request) {
	file, err := s.AdminApp.ExportTransactions(r.Context(), transactionListRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeFile(w, file.Name, file.ContentType, file.Content)
}

// AdminCreditApplicationSchema handler
// @Summary Credit application resource schema
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ResourceSchema
// @Router /admin/credit-applications/schema [get]
func (s *RestHandler) AdminCreditApplicationSchema(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.CreditApplicationSchema(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminListCreditApplications handler
// @Summary List credit applications
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param min_income query string false "Lower bound of income"
// @Param max_income query string false "Upper bound of income"
// @Param status query string false "Status"
// @Param search query string false "Search"
// @Param sort query string false "Sort column"
// @Param direction query string false "asc or desc"
// @Param page query int false "Page"
// @Param per_page query int false "Rows per page"
// @Success 200 {object} model.CreditApplicationListResponse
// @Failure 400 {object} Response
// @Router /admin/credit-applications [get]
func (s *RestHandler) AdminListCreditApplications(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.ListCreditApplications(r.Context(), creditApplicationListRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminGetCreditApplication handler
// @Summary Credit application detail
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit application ID"
// @Success 200 {object} model.CreditApplicationDetail
// @Failure 404 {object} Response
// @Router /admin/credit-applications/{id} [get]
func (s *RestHandler) AdminGetCreditApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.GetCreditApplication(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminCreateCreditApplication handler
// @Summary Create credit application
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreditApplicationForm true "Credit application"
// @Success 201 {object} model.CreditApplicationDetail
// @Failure 400 {object} Response
// @Router /admin/credit-applications [post]
func (s *RestHandler) AdminCreateCreditApplication(w http.ResponseWriter, r *http.Request) {
	var form model.CreditApplicationForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.CreateCreditApplication(r.Context(), &form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// AdminUpdateCreditApplication handler
// @Summary Update credit application
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit application ID"
// @Param request body model.CreditApplicationForm true "Credit application"
// @Success 200 {object} model.CreditApplicationDetail
// @Failure 400 {object} Response
// @Router /admin/credit-applications/{id} [put]
func (s *RestHandler) AdminUpdateCreditApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var form model.CreditApplicationForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.UpdateCreditApplication(r.Context(), id, &form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminDeleteCreditApplication handler
// @Summary Delete credit application
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Credit application ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/credit-applications/{id} [delete]
func (s *RestHandler) AdminDeleteCreditApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteCreditApplication(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminBulkDeleteCreditApplications handler
// @Summary Delete several credit applications
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BulkDeleteRequest true "IDs"
// @Success 200 {object} model.BulkDeleteResponse
// @Router /admin/credit-applications/bulk-delete [post]
func (s *RestHandler) AdminBulkDeleteCreditApplications(w http.ResponseWriter, r *http.Request) {
	var req model.BulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.BulkDeleteCreditApplications(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminExportCreditApplications handler
// @Summary Export credit applications as xlsx
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/credit-applications/export [get]
func (s *RestHandler) AdminExportCreditApplications(w http.ResponseWriter, r *http.Request) {
	file, err := s.AdminApp.ExportCreditApplications(r.Context(), creditApplicationListRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeFile(w, file.Name, file.ContentType, file.Content)
}
