package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/zyreejago/hidroponik/api/middleware"
	"github.com/zyreejago/hidroponik/api/responses"
	"github.com/zyreejago/hidroponik/internal/checkout"
	"github.com/zyreejago/hidroponik/pkg/config"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
)

const proofFormField = "payment_proof"

// Checkout accepts the multipart checkout form, including the payment proof
// file, and returns the created order.
func Checkout(svc checkout.Service, cfg config.CheckoutConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxBytes := int64(cfg.MaxProofUploadMB) << 20
		// Leave headroom for the non-file fields.
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		input := checkout.Input{
			CartSessionID:  middleware.CartSessionFromContext(r.Context()),
			CustomerName:   r.FormValue("customer_name"),
			CustomerPhone:  r.FormValue("customer_phone"),
			CustomerEmail:  optionalFormValue(r, "customer_email"),
			DeliveryMethod: r.FormValue("delivery_method"),
			PaymentMethod:  r.FormValue("payment_method"),
			Notes:          optionalFormValue(r, "notes"),
			Address:        r.FormValue("address"),
			ProvinceID:     strings.TrimSpace(r.FormValue("province_id")),
			CityID:         strings.TrimSpace(r.FormValue("city_id")),
			Courier:        r.FormValue("courier"),
			CourierService: r.FormValue("courier_service"),
		}

		file, header, err := r.FormFile(proofFormField)
		if err != nil {
			if !errors.Is(err, http.ErrMissingFile) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading payment proof"))
				return
			}
		} else {
			defer file.Close()
			input.Proof = &checkout.ProofUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Reader:      file,
			}
		}

		order, err := svc.Submit(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func optionalFormValue(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return nil
	}
	return &value
}
