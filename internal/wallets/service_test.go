package wallets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
)

func setupWalletsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	table := `
CREATE TABLE IF NOT EXISTS e_wallet_settings (
  id TEXT PRIMARY KEY,
  wallet_type TEXT NOT NULL,
  account_name TEXT NOT NULL,
  account_number TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(table).Error)
	return db
}

func newWalletsService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupWalletsTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := newWalletsService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, UpsertInput{WalletType: "GoPay"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	created, err := svc.Create(ctx, UpsertInput{
		WalletType:    "GoPay",
		AccountName:   "Hidroponik Store",
		AccountNumber: "081234567890",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}

func TestListActiveFiltersAndOrders(t *testing.T) {
	svc := newWalletsService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, UpsertInput{WalletType: "OVO", AccountName: "Store", AccountNumber: "1"})
	require.NoError(t, err)
	inactive := false
	_, err = svc.Create(ctx, UpsertInput{WalletType: "Dana", AccountName: "Store", AccountNumber: "2", IsActive: &inactive})
	require.NoError(t, err)
	_, err = svc.Create(ctx, UpsertInput{WalletType: "GoPay", AccountName: "Store", AccountNumber: "3"})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "GoPay", active[0].WalletType)
	assert.Equal(t, "OVO", active[1].WalletType)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateAndSetActive(t *testing.T) {
	svc := newWalletsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, UpsertInput{WalletType: "OVO", AccountName: "Store", AccountNumber: "1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpsertInput{AccountNumber: "99"})
	require.NoError(t, err)
	assert.Equal(t, "99", updated.AccountNumber)
	assert.Equal(t, "OVO", updated.WalletType)

	deactivated, err := svc.SetActive(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	_, err = svc.Update(ctx, uuid.New(), UpsertInput{AccountNumber: "1"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDelete(t *testing.T) {
	svc := newWalletsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, UpsertInput{WalletType: "OVO", AccountName: "Store", AccountNumber: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestIsActiveMethod(t *testing.T) {
	svc := newWalletsService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, UpsertInput{WalletType: "GoPay", AccountName: "Store", AccountNumber: "1"})
	require.NoError(t, err)
	inactive := false
	_, err = svc.Create(ctx, UpsertInput{WalletType: "Dana", AccountName: "Store", AccountNumber: "2", IsActive: &inactive})
	require.NoError(t, err)

	ok, err := svc.IsActiveMethod(ctx, "gopay")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsActiveMethod(ctx, "Dana")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsActiveMethod(ctx, "LinkAja")
	require.NoError(t, err)
	assert.False(t, ok)
}
