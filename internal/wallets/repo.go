package wallets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/pkg/db/models"
)

// Repository defines persistence operations for e-wallet settings.
type Repository interface {
	Create(ctx context.Context, wallet *models.EWalletSetting) (*models.EWalletSetting, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.EWalletSetting, error)
	List(ctx context.Context) ([]models.EWalletSetting, error)
	ListActive(ctx context.Context) ([]models.EWalletSetting, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a wallets repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, wallet *models.EWalletSetting) (*models.EWalletSetting, error) {
	if wallet.ID == uuid.Nil {
		wallet.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return nil, err
	}
	return wallet, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.EWalletSetting, error) {
	var wallet models.EWalletSetting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *repository) List(ctx context.Context) ([]models.EWalletSetting, error) {
	var wallets []models.EWalletSetting
	if err := r.db.WithContext(ctx).Order("wallet_type ASC").Find(&wallets).Error; err != nil {
		return nil, err
	}
	return wallets, nil
}

func (r *repository) ListActive(ctx context.Context) ([]models.EWalletSetting, error) {
	var wallets []models.EWalletSetting
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("wallet_type ASC").
		Find(&wallets).Error
	if err != nil {
		return nil, err
	}
	return wallets, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.EWalletSetting{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.EWalletSetting{}).Error
}
