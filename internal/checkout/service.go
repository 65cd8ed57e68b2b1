package checkout

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/internal/cart"
	"github.com/zyreejago/hidroponik/internal/orders"
	"github.com/zyreejago/hidroponik/internal/shipping"
	"github.com/zyreejago/hidroponik/pkg/config"
	"github.com/zyreejago/hidroponik/pkg/db/models"
	"github.com/zyreejago/hidroponik/pkg/enums"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
)

const orderNumberSuffixLen = 6

var allowedProofContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"application/pdf": {},
}

type cartService interface {
	Get(ctx context.Context, sessionID string) (*cart.View, error)
	Clear(ctx context.Context, sessionID string) error
}

type shippingQuoter interface {
	QuoteCost(ctx context.Context, params shipping.QuoteParams) ([]shipping.CourierQuote, error)
}

type paymentMethods interface {
	IsActiveMethod(ctx context.Context, walletName string) (bool, error)
}

type proofUploader interface {
	Upload(ctx context.Context, objectName, contentType string, body io.Reader) (string, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service turns a priced cart into a persisted order.
type Service interface {
	Submit(ctx context.Context, input Input) (*models.Order, error)
}

type service struct {
	repo     orders.Repository
	tx       txRunner
	carts    cartService
	quoter   shippingQuoter
	payments paymentMethods
	uploader proofUploader
	logg     *logger.Logger
	cfg      config.CheckoutConfig
	prefix   string
	origin   string

	now func() time.Time
}

// NewService wires the checkout flow over its collaborating services.
func NewService(
	repo orders.Repository,
	tx txRunner,
	carts cartService,
	quoter shippingQuoter,
	payments paymentMethods,
	uploader proofUploader,
	logg *logger.Logger,
	cfg config.CheckoutConfig,
	gcsCfg config.GCSConfig,
	shipCfg config.ShippingConfig,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if quoter == nil {
		return nil, fmt.Errorf("shipping quoter required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment method lookup required")
	}
	if uploader == nil {
		return nil, fmt.Errorf("proof uploader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		carts:    carts,
		quoter:   quoter,
		payments: payments,
		uploader: uploader,
		logg:     logg,
		cfg:      cfg,
		prefix:   gcsCfg.ProofPrefix,
		origin:   shipCfg.OriginCityID,
		now:      time.Now,
	}, nil
}

func (s *service) Submit(ctx context.Context, input Input) (*models.Order, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.PaymentMethod = strings.TrimSpace(input.PaymentMethod)
	input.Address = strings.TrimSpace(input.Address)

	if input.CustomerName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if input.CustomerPhone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer phone is required")
	}

	method, err := enums.ParseDeliveryMethod(input.DeliveryMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown delivery method")
	}
	if method.RequiresAddress() && input.Address == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping address is required for this delivery method")
	}

	if err := s.validateProof(input.Proof); err != nil {
		return nil, err
	}
	if err := s.checkPaymentMethod(ctx, input.PaymentMethod); err != nil {
		return nil, err
	}

	view, err := s.carts.Get(ctx, input.CartSessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order := &models.Order{
		CustomerName:     input.CustomerName,
		CustomerPhone:    input.CustomerPhone,
		CustomerEmail:    normalizeOptional(input.CustomerEmail),
		DeliveryMethod:   method,
		Notes:            normalizeOptional(input.Notes),
		PaymentMethod:    input.PaymentMethod,
		TotalWeightGrams: view.TotalWeightGrams,
		Subtotal:         view.Subtotal,
		Status:           enums.OrderStatusPending,
	}
	if method.RequiresAddress() {
		order.ShippingAddress = &input.Address
	}

	fee, err := s.resolveShippingFee(ctx, input, method, view, order)
	if err != nil {
		return nil, err
	}
	order.ShippingFee = fee
	order.Total = view.Subtotal.Add(fee)

	for _, item := range view.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			UnitPrice:   item.PricePerKg,
			Quantity:    item.Quantity,
			WeightGrams: item.WeightGrams,
			LineTotal:   item.LineTotal,
		})
	}

	number, err := s.generateOrderNumber()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating order number")
	}
	order.OrderNumber = number
	order.TrackingCode = number

	proofURL, err := s.uploadProof(ctx, number, input.Proof)
	if err != nil {
		return nil, err
	}
	order.PaymentProofURL = &proofURL

	var created *models.Order
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		created, err = s.repo.WithTx(tx).Create(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	// The order is already committed, a stale cart is only a nuisance.
	if err := s.carts.Clear(ctx, input.CartSessionID); err != nil {
		s.logg.Warn(s.logg.WithOrderNumber(ctx, created.OrderNumber), "failed to clear cart after checkout")
	}

	return created, nil
}

func (s *service) validateProof(proof *ProofUpload) error {
	if proof == nil || proof.Reader == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment proof is required")
	}
	maxBytes := int64(s.cfg.MaxProofUploadMB) * 1024 * 1024
	if proof.Size > maxBytes {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("payment proof must not exceed %d MB", s.cfg.MaxProofUploadMB))
	}
	if _, ok := allowedProofContentTypes[strings.ToLower(proof.ContentType)]; !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment proof must be an image or a PDF")
	}
	return nil
}

func (s *service) checkPaymentMethod(ctx context.Context, walletName string) error {
	if walletName == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment method is required")
	}
	active, err := s.payments.IsActiveMethod(ctx, walletName)
	if err != nil {
		return err
	}
	if !active {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment method is not available")
	}
	return nil
}

// resolveShippingFee computes the fee server side and records the shipping
// details on the order. Client-submitted fees are never trusted.
func (s *service) resolveShippingFee(ctx context.Context, input Input, method enums.DeliveryMethod, view *cart.View, order *models.Order) (decimal.Decimal, error) {
	switch method {
	case enums.DeliveryMethodSelfPickup:
		return decimal.Zero, nil

	case enums.DeliveryMethodOwnDelivery:
		if view.TotalWeightGrams > s.cfg.OwnDeliveryFreeAbove*1000 {
			return decimal.Zero, nil
		}
		return decimal.NewFromInt(s.cfg.OwnDeliveryFlatFee), nil

	case enums.DeliveryMethodCourier:
		courier := strings.ToLower(strings.TrimSpace(input.Courier))
		tier := strings.TrimSpace(input.CourierService)
		if input.ProvinceID == "" || input.CityID == "" {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "destination province and city are required")
		}
		if courier == "" || tier == "" {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "courier and service tier are required")
		}

		quotes, err := s.quoter.QuoteCost(ctx, shipping.QuoteParams{
			Origin:      s.origin,
			Destination: input.CityID,
			WeightGrams: view.TotalWeightGrams,
			Courier:     courier,
		})
		if err != nil {
			return decimal.Zero, err
		}
		for _, quote := range quotes {
			if quote.Code != courier {
				continue
			}
			for _, svc := range quote.Services {
				if strings.EqualFold(svc.Service, tier) {
					order.Courier = &courier
					order.CourierService = &svc.Service
					source := quote.Source
					order.QuoteSource = &source
					if name, ok := shipping.ProvinceName(input.ProvinceID); ok {
						order.ShippingProvince = &name
					} else {
						order.ShippingProvince = &input.ProvinceID
					}
					if name, ok := shipping.CityName(input.CityID); ok {
						order.ShippingCity = &name
					} else {
						order.ShippingCity = &input.CityID
					}
					return decimal.NewFromInt(svc.Cost), nil
				}
			}
		}
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "selected courier service is not available for this destination")

	default:
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "unknown delivery method")
	}
}

func (s *service) uploadProof(ctx context.Context, orderNumber string, proof *ProofUpload) (string, error) {
	objectName := fmt.Sprintf("%s/%s%s", s.prefix, orderNumber, sanitizeExtension(proof.Filename))
	url, err := s.uploader.Upload(ctx, objectName, proof.ContentType, proof.Reader)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "uploading payment proof")
	}
	return url, nil
}

// generateOrderNumber produces codes like HYD-20260901-7KQ2ZD. The same value
// doubles as the public tracking code.
func (s *service) generateOrderNumber() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	buf := make([]byte, orderNumberSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = charset[int(buf[i])%len(charset)]
	}
	return fmt.Sprintf("HYD-%s-%s", s.now().Format("20060102"), string(buf)), nil
}

func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".pdf":
		return ext
	default:
		return ""
	}
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
