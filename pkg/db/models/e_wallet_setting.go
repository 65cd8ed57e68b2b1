package models

import (
	"time"

	"github.com/google/uuid"
)

// EWalletSetting is a manual payment destination shown at checkout.
type EWalletSetting struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	WalletType    string    `gorm:"column:wallet_type;type:text;not null"`
	AccountName   string    `gorm:"column:account_name;type:text;not null"`
	AccountNumber string    `gorm:"column:account_number;type:text;not null"`
	IsActive      bool      `gorm:"column:is_active;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
