package transport

import (
	"net/http"

	"github.com/muhammadheryan/car-showroom/model"
	utilsContext "github.com/muhammadheryan/car-showroom/utils/context"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
)

// Cart handler
// @Summary Cart content
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) Cart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	res, err := s.CartApp.ListCart(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddToCart handler
// @Summary Add a car to the cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param car path int true "Car ID"
// @Success 200 {object} model.CartEntity
// @Failure 404 {object} Response
// @Router /cart/{car} [post]
func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	carID, err := pathID(r, "car")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddToCart(ctx, userID, carID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RemoveFromCart handler
// @Summary Remove a car from the cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param car path int true "Car ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /cart/{car} [delete]
func (s *RestHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	carID, err := pathID(r, "car")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CartApp.RemoveFromCart(ctx, userID, carID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// OrderForm handler
// @Summary Order form
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param car path int true "Car ID"
// @Success 200 {object} model.OrderFormResponse
// @Router /order/{car} [get]
func (s *RestHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	carID, err := pathID(r, "car")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.OrderForm(ctx, userID, carID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Checkout handler
// @Summary Place an order
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param car path int true "Car ID"
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 201 {object} model.CheckoutResponse
// @Failure 400 {object} Response
// @Router /order/{car} [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	carID, err := pathID(r, "car")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateForm(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.Checkout(ctx, userID, carID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// TransactionDetail handler
// @Summary Transaction detail
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param transaction path int true "Transaction ID"
// @Success 200 {object} model.TransactionDetailResponse
// @Failure 404 {object} Response
// @Router /transaction/{transaction} [get]
func (s *RestHandler) TransactionDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	transactionID, err := pathID(r, "transaction")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ApplyCredit handler
// @Summary Apply for credit on a car
// @Tags Credit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param car path int true "Car ID"
// @Param request body model.CreditApplyRequest true "Credit Request"
// @Success 201 {object} model.CreditApplyResponse
// @Failure 400 {object} Response
// @Router /credit/{car} [post]
func (s *RestHandler) ApplyCredit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	carID, err := pathID(r, "car")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreditApplyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CreditApp.Apply(ctx, userID, carID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// CancelExpiredTransaction handler
// @Summary Cancel an unpaid transaction
// @Description Called by the payment-expiration consumer
// @Tags Internal
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /internal/v1/transaction/{id}/cancel [post]
func (s *RestHandler) CancelExpiredTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.CancelExpired(r.Context(), transactionID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
