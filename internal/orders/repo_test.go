package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/pkg/db/models"
	"github.com/zyreejago/hidroponik/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	ordersTable := `
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
);`
	items := `
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
);`

	require.NoError(t, db.Exec(ordersTable).Error)
	require.NoError(t, db.Exec(items).Error)
	return db
}

func seedOrder(t *testing.T, repo Repository, orderNumber, name, phone string, status enums.OrderStatus) *models.Order {
	t.Helper()

	order := &models.Order{
		OrderNumber:    orderNumber,
		TrackingCode:   orderNumber,
		CustomerName:   name,
		CustomerPhone:  phone,
		DeliveryMethod: enums.DeliveryMethodSelfPickup,
		Subtotal:       decimal.NewFromInt(40000),
		ShippingFee:    decimal.Zero,
		Total:          decimal.NewFromInt(40000),
		PaymentMethod:  "gopay",
		Status:         status,
		Items: []models.OrderItem{
			{
				ProductID:   "1",
				ProductName: "Bayam Hijau",
				UnitPrice:   decimal.NewFromInt(20000),
				Quantity:    2,
				WeightGrams: 2000,
				LineTotal:   decimal.NewFromInt(40000),
			},
		},
	}
	created, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	return created
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created := seedOrder(t, repo, "HYD-20260901-AAAAAA", "Budi", "08123", enums.OrderStatusPending)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, created.Items, 1)
	assert.Equal(t, created.ID, created.Items[0].OrderID)

	byCode, err := repo.FindByTrackingCode(ctx, "HYD-20260901-AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)
	require.Len(t, byCode.Items, 1)
	assert.Equal(t, "Bayam Hijau", byCode.Items[0].ProductName)
	assert.True(t, byCode.Subtotal.Equal(decimal.NewFromInt(40000)))

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "HYD-20260901-AAAAAA", byID.OrderNumber)

	_, err = repo.FindByTrackingCode(ctx, "HYD-00000000-XXXXXX")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListFilters(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedOrder(t, repo, "HYD-20260901-AAAAAA", "Budi Santoso", "08123", enums.OrderStatusPending)
	seedOrder(t, repo, "HYD-20260901-BBBBBB", "Siti Aminah", "08456", enums.OrderStatusShipped)
	seedOrder(t, repo, "HYD-20260901-CCCCCC", "Budi Hartono", "08789", enums.OrderStatusShipped)

	all, err := repo.List(ctx, ListFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shipped := enums.OrderStatusShipped
	byStatus, err := repo.List(ctx, ListFilters{Status: &shipped})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byName, err := repo.List(ctx, ListFilters{Query: "budi"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byPhone, err := repo.List(ctx, ListFilters{Query: "08456"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Siti Aminah", byPhone[0].CustomerName)

	both, err := repo.List(ctx, ListFilters{Status: &shipped, Query: "budi"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Budi Hartono", both[0].CustomerName)

	byNumber, err := repo.List(ctx, ListFilters{Query: "CCCCCC"})
	require.NoError(t, err)
	assert.Len(t, byNumber, 1)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created := seedOrder(t, repo, "HYD-20260901-AAAAAA", "Budi", "08123", enums.OrderStatusPending)

	require.NoError(t, repo.UpdateStatus(ctx, created.ID, enums.OrderStatusConfirmed))

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, reloaded.Status)
}

func TestRepositoryWithTxRollsBack(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	tx := db.Begin()
	require.NoError(t, tx.Error)

	_, err := repo.WithTx(tx).Create(ctx, &models.Order{
		OrderNumber:    "HYD-20260901-ROLLBK",
		TrackingCode:   "HYD-20260901-ROLLBK",
		CustomerName:   "Budi",
		CustomerPhone:  "08123",
		DeliveryMethod: enums.DeliveryMethodSelfPickup,
		Subtotal:       decimal.NewFromInt(1000),
		Total:          decimal.NewFromInt(1000),
		PaymentMethod:  "ovo",
		Status:         enums.OrderStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback().Error)

	_, err = repo.FindByTrackingCode(ctx, "HYD-20260901-ROLLBK")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
