package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zyreejago/hidroponik/api/responses"
	"github.com/zyreejago/hidroponik/api/validators"
	"github.com/zyreejago/hidroponik/internal/shipping"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
)

type shippingCostRequest struct {
	CityID      string `json:"city_id" validate:"required"`
	WeightGrams int    `json:"weight_grams" validate:"required,min=1"`
	Courier     string `json:"courier" validate:"required"`
}

func ShippingRegions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, shipping.Regions())
	}
}

func ShippingSubregions(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provinceID := strings.TrimSpace(chi.URLParam(r, "provinceId"))
		if provinceID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "province id is required"))
			return
		}
		responses.WriteSuccess(w, shipping.Subregions(provinceID))
	}
}

func ShippingCost(svc shipping.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body shippingCostRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quotes, err := svc.QuoteCost(r.Context(), shipping.QuoteParams{
			Destination: body.CityID,
			WeightGrams: body.WeightGrams,
			Courier:     body.Courier,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quotes)
	}
}
