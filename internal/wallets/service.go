package wallets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/pkg/db/models"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
)

// UpsertInput carries the editable fields of an e-wallet setting.
type UpsertInput struct {
	WalletType    string
	AccountName   string
	AccountNumber string
	IsActive      *bool
}

// Service manages the manual payment destinations.
type Service interface {
	ListActive(ctx context.Context) ([]models.EWalletSetting, error)
	List(ctx context.Context) ([]models.EWalletSetting, error)
	Create(ctx context.Context, input UpsertInput) (*models.EWalletSetting, error)
	Update(ctx context.Context, id uuid.UUID, input UpsertInput) (*models.EWalletSetting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.EWalletSetting, error)
	IsActiveMethod(ctx context.Context, walletName string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService builds the wallets service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("wallets repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListActive(ctx context.Context) ([]models.EWalletSetting, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing payment methods")
	}
	return list, nil
}

func (s *service) List(ctx context.Context) ([]models.EWalletSetting, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing wallets")
	}
	return list, nil
}

func (s *service) Create(ctx context.Context, input UpsertInput) (*models.EWalletSetting, error) {
	if err := validateUpsert(input, true); err != nil {
		return nil, err
	}

	wallet := &models.EWalletSetting{
		WalletType:    strings.TrimSpace(input.WalletType),
		AccountName:   strings.TrimSpace(input.AccountName),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		IsActive:      true,
	}
	if input.IsActive != nil {
		wallet.IsActive = *input.IsActive
	}

	created, err := s.repo.Create(ctx, wallet)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating wallet")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpsertInput) (*models.EWalletSetting, error) {
	if err := validateUpsert(input, false); err != nil {
		return nil, err
	}

	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(input.WalletType); name != "" {
		updates["wallet_type"] = name
	}
	if name := strings.TrimSpace(input.AccountName); name != "" {
		updates["account_name"] = name
	}
	if number := strings.TrimSpace(input.AccountNumber); number != "" {
		updates["account_number"] = number
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating wallet")
	}
	return s.find(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting wallet")
	}
	return nil
}

func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.EWalletSetting, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, map[string]any{"is_active": active}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating wallet")
	}
	return s.find(ctx, id)
}

// IsActiveMethod reports whether the named wallet is an active payment
// destination. The comparison is case-insensitive.
func (s *service) IsActiveMethod(ctx context.Context, walletName string) (bool, error) {
	list, err := s.ListActive(ctx)
	if err != nil {
		return false, err
	}
	needle := strings.ToLower(strings.TrimSpace(walletName))
	for _, wallet := range list {
		if strings.ToLower(wallet.WalletType) == needle {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.EWalletSetting, error) {
	wallet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "wallet not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading wallet")
	}
	return wallet, nil
}

func validateUpsert(input UpsertInput, create bool) error {
	if !create {
		return nil
	}
	if strings.TrimSpace(input.WalletType) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "wallet name is required")
	}
	if strings.TrimSpace(input.AccountName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "account name is required")
	}
	if strings.TrimSpace(input.AccountNumber) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "account number is required")
	}
	return nil
}
