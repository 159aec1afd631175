package transport

import (
	"net/http"

	"github.com/muhammadheryan/car-showroom/model"
	utilsContext "github.com/muhammadheryan/car-showroom/utils/context"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
)

// AccountSettings handler
// @Summary Account settings
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} Response
// @Router /account/settings [get]
func (s *RestHandler) AccountSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	res, err := s.UserApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile"
// @Success 200 {object} model.ProfileResponse
// @Failure 400 {object} Response
// @Router /account/profile/update [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	var req model.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateForm(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdatePassword handler
// @Summary Update password
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdatePasswordRequest true "Password"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /account/password/update [put]
func (s *RestHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	var req model.UpdatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateForm(&req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.UpdatePassword(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
