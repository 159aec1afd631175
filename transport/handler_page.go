package transport

import (
	"net/http"

	"github.com/muhammadheryan/car-showroom/model"
	utilsContext "github.com/muhammadheryan/car-showroom/utils/context"
)

// Landing handler
// @Summary Landing page
// @Description Header plus the car catalogue, optionally narrowed to one type
// @Tags Page
// @Produce json
// @Param type query string false "Car type"
// @Param page query int false "Page"
// @Success 200 {object} model.LandingResponse
// @Router / [get]
func (s *RestHandler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	carType := r.URL.Query().Get("type")

	header, err := s.HeaderApp.Render(ctx, utilsContext.Viewer(ctx), carType)
	if err != nil {
		writeError(w, err)
		return
	}

	cars, err := s.CarApp.ListCars(ctx, &model.CarFilter{
		Type:    carType,
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "per_page"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, &model.LandingResponse{Header: header, Cars: cars})
}

// Header handler
// @Summary Site header
// @Description Car type navigation, auth-dependent links and cart count
// @Tags Page
// @Produce json
// @Param type query string false "Current car type"
// @Success 200 {object} model.Header
// @Router /header [get]
func (s *RestHandler) Header(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.HeaderApp.Render(ctx, utilsContext.Viewer(ctx), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CarDetail handler
// @Summary Car detail
// @Tags Page
// @Produce json
// @Param car path int true "Car ID"
// @Success 200 {object} model.CarDetailResponse
// @Failure 404 {object} Response
// @Router /cars/{car} [get]
func (s *RestHandler) CarDetail(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "car")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CarApp.GetCar(r.Context(), carID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
