package checkout

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/internal/cart"
	"github.com/zyreejago/hidroponik/internal/orders"
	"github.com/zyreejago/hidroponik/internal/shipping"
	"github.com/zyreejago/hidroponik/pkg/config"
	"github.com/zyreejago/hidroponik/pkg/enums"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
)

type mockCarts struct {
	view    *cart.View
	getErr  error
	cleared []string
}

func (m *mockCarts) Get(_ context.Context, _ string) (*cart.View, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.view, nil
}

func (m *mockCarts) Clear(_ context.Context, sessionID string) error {
	m.cleared = append(m.cleared, sessionID)
	return nil
}

type mockQuoter struct {
	quotes []shipping.CourierQuote
	err    error
	params shipping.QuoteParams
}

func (m *mockQuoter) QuoteCost(_ context.Context, params shipping.QuoteParams) ([]shipping.CourierQuote, error) {
	m.params = params
	if m.err != nil {
		return nil, m.err
	}
	return m.quotes, nil
}

type mockPayments struct {
	active map[string]bool
}

func (m *mockPayments) IsActiveMethod(_ context.Context, walletName string) (bool, error) {
	return m.active[strings.ToLower(walletName)], nil
}

type mockUploader struct {
	objectName  string
	contentType string
	err         error
}

func (m *mockUploader) Upload(_ context.Context, objectName, contentType string, body io.Reader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.objectName = objectName
	m.contentType = contentType
	_, _ = io.Copy(io.Discard, body)
	return "https://storage.googleapis.com/order-files/" + objectName, nil
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r *gormTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

type fixture struct {
	svc      Service
	repo     orders.Repository
	carts    *mockCarts
	quoter   *mockQuoter
	uploader *mockUploader
}

func twoKilosOfBayam() *cart.View {
	price := decimal.NewFromInt(20000)
	return &cart.View{
		Items: []cart.ItemView{
			{
				ProductID:   "1",
				Name:        "Bayam Hijau",
				PricePerKg:  price,
				Quantity:    2,
				WeightGrams: 2000,
				LineTotal:   decimal.NewFromInt(40000),
			},
		},
		Subtotal:         decimal.NewFromInt(40000),
		TotalWeightGrams: 2000,
	}
}

func newFixture(t *testing.T, view *cart.View) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL UNIQUE,
  tracking_code TEXT NOT NULL UNIQUE,
  customer_name TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_email TEXT,
  delivery_method TEXT NOT NULL,
  shipping_address TEXT,
  shipping_province TEXT,
  shipping_city TEXT,
  courier TEXT,
  courier_service TEXT,
  quote_source TEXT,
  total_weight_grams INTEGER NOT NULL DEFAULT 0,
  subtotal NUMERIC NOT NULL,
  shipping_fee NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL,
  payment_method TEXT NOT NULL,
  payment_proof_url TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  unit_price NUMERIC NOT NULL,
  quantity INTEGER NOT NULL,
  weight_grams INTEGER NOT NULL DEFAULT 0,
  line_total NUMERIC NOT NULL,
  created_at DATETIME
);`).Error)

	repo := orders.NewRepository(db)
	carts := &mockCarts{view: view}
	quoter := &mockQuoter{
		quotes: []shipping.CourierQuote{
			{
				Code:   "jne",
				Name:   "Jalur Nugraha Ekakurir (JNE)",
				Source: enums.QuoteSourceSimulated,
				Services: []shipping.ServiceQuote{
					{Service: "OKE", Description: "Ongkos Kirim Ekonomis", Cost: 24000, ETD: "2-3"},
					{Service: "REG", Description: "Layanan Reguler", Cost: 31000, ETD: "1-2"},
				},
			},
		},
	}
	uploader := &mockUploader{}
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})

	svc, err := NewService(
		repo,
		&gormTxRunner{db: db},
		carts,
		quoter,
		&mockPayments{active: map[string]bool{"gopay": true}},
		uploader,
		logg,
		config.CheckoutConfig{OwnDeliveryFlatFee: 20000, OwnDeliveryFreeAbove: 10, MaxProofUploadMB: 10},
		config.GCSConfig{BucketName: "order-files", ProofPrefix: "payment_proof"},
		config.ShippingConfig{OriginCityID: "155"},
	)
	require.NoError(t, err)

	svc.(*service).now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}

	return &fixture{svc: svc, repo: repo, carts: carts, quoter: quoter, uploader: uploader}
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, code, typed.Code())
}

func validInput() Input {
	return Input{
		CartSessionID:  "sess-1",
		CustomerName:   "Budi Santoso",
		CustomerPhone:  "081234567890",
		DeliveryMethod: "self_pickup",
		PaymentMethod:  "gopay",
		Proof: &ProofUpload{
			Filename:    "bukti.jpg",
			ContentType: "image/jpeg",
			Size:        1024,
			Reader:      strings.NewReader("fake image bytes"),
		},
	}
}

func TestSubmitSelfPickup(t *testing.T) {
	f := newFixture(t, twoKilosOfBayam())

	created, err := f.svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^HYD-20260901-[A-Z0-9]{6}$`), created.OrderNumber)
	assert.Equal(t, created.OrderNumber, created.TrackingCode)
	assert.Equal(t, enums.OrderStatusPending, created.Status)
	assert.True(t, created.ShippingFee.IsZero())
	assert.True(t, created.Total.Equal(decimal.NewFromInt(40000)))
	require.NotNil(t, created.PaymentProofURL)
	assert.Contains(t, *created.PaymentProofURL, "payment_proof/"+created.OrderNumber)
	assert.Equal(t, "image/jpeg", f.uploader.contentType)
	assert.Equal(t, []string{"sess-1"}, f.carts.cleared)

	persisted, err := f.repo.FindByTrackingCode(context.Background(), created.TrackingCode)
	require.NoError(t, err)
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, "Bayam Hijau", persisted.Items[0].ProductName)
}

func TestSubmitOwnDeliveryFee(t *testing.T) {
	cases := []struct {
		name        string
		weightGrams int
		wantFee     int64
	}{
		{name: "standard weight pays flat fee", weightGrams: 2000, wantFee: 20000},
		{name: "exactly at threshold pays flat fee", weightGrams: 10000, wantFee: 20000},
		{name: "heavy cart ships free", weightGrams: 11000, wantFee: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := twoKilosOfBayam()
			view.TotalWeightGrams = tc.weightGrams
			f := newFixture(t, view)

			input := validInput()
			input.DeliveryMethod = "own_delivery"
			input.Address = "Jl. Kebon Jeruk No. 1, Jakarta Barat"

			created, err := f.svc.Submit(context.Background(), input)
			require.NoError(t, err)
			assert.True(t, created.ShippingFee.Equal(decimal.NewFromInt(tc.wantFee)),
				"fee %s", created.ShippingFee)
			require.NotNil(t, created.ShippingAddress)
		})
	}
}

func TestSubmitCourierResolvesFeeServerSide(t *testing.T) {
	f := newFixture(t, twoKilosOfBayam())

	input := validInput()
	input.DeliveryMethod = "courier"
	input.Address = "Jl. Margonda Raya No. 10, Depok"
	input.ProvinceID = "9"
	input.CityID = "115"
	input.Courier = "JNE"
	input.CourierService = "reg"

	created, err := f.svc.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, created.ShippingFee.Equal(decimal.NewFromInt(31000)))
	assert.True(t, created.Total.Equal(decimal.NewFromInt(71000)))
	require.NotNil(t, created.Courier)
	assert.Equal(t, "jne", *created.Courier)
	require.NotNil(t, created.CourierService)
	assert.Equal(t, "REG", *created.CourierService)
	require.NotNil(t, created.QuoteSource)
	assert.Equal(t, enums.QuoteSourceSimulated, *created.QuoteSource)
	require.NotNil(t, created.ShippingProvince)
	assert.Equal(t, "Jawa Barat", *created.ShippingProvince)
	require.NotNil(t, created.ShippingCity)
	assert.Equal(t, "Depok", *created.ShippingCity)

	assert.Equal(t, "155", f.quoter.params.Origin)
	assert.Equal(t, "115", f.quoter.params.Destination)
	assert.Equal(t, 2000, f.quoter.params.WeightGrams)
}

func TestSubmitCourierUnknownTier(t *testing.T) {
	f := newFixture(t, twoKilosOfBayam())

	input := validInput()
	input.DeliveryMethod = "courier"
	input.Address = "Jl. Margonda Raya No. 10, Depok"
	input.ProvinceID = "9"
	input.CityID = "115"
	input.Courier = "jne"
	input.CourierService = "YES"

	_, err := f.svc.Submit(context.Background(), input)
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestSubmitValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{name: "missing name", mutate: func(i *Input) { i.CustomerName = " " }},
		{name: "missing phone", mutate: func(i *Input) { i.CustomerPhone = "" }},
		{name: "unknown delivery method", mutate: func(i *Input) { i.DeliveryMethod = "teleport" }},
		{name: "missing payment method", mutate: func(i *Input) { i.PaymentMethod = "" }},
		{name: "inactive payment method", mutate: func(i *Input) { i.PaymentMethod = "dana" }},
		{name: "missing proof", mutate: func(i *Input) { i.Proof = nil }},
		{name: "oversized proof", mutate: func(i *Input) { i.Proof.Size = 11 * 1024 * 1024 }},
		{name: "wrong proof type", mutate: func(i *Input) { i.Proof.ContentType = "text/html" }},
		{name: "own delivery without address", mutate: func(i *Input) {
			i.DeliveryMethod = "own_delivery"
			i.Address = ""
		}},
		{name: "courier without destination", mutate: func(i *Input) {
			i.DeliveryMethod = "courier"
			i.Address = "Jl. Mawar No. 2"
			i.Courier = "jne"
			i.CourierService = "REG"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, twoKilosOfBayam())
			input := validInput()
			tc.mutate(&input)

			_, err := f.svc.Submit(context.Background(), input)
			requireCode(t, err, pkgerrors.CodeValidation)
		})
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	f := newFixture(t, &cart.View{Subtotal: decimal.Zero})

	_, err := f.svc.Submit(context.Background(), validInput())
	requireCode(t, err, pkgerrors.CodeValidation)
	assert.Empty(t, f.carts.cleared)
}

func TestSubmitUploadFailureAborts(t *testing.T) {
	f := newFixture(t, twoKilosOfBayam())
	f.uploader.err = fmt.Errorf("bucket unavailable")

	_, err := f.svc.Submit(context.Background(), validInput())
	requireCode(t, err, pkgerrors.CodeDependency)

	listed, err := f.repo.List(context.Background(), orders.ListFilters{})
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Empty(t, f.carts.cleared)
}
