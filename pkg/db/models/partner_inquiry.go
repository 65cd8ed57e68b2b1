package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/zyreejago/hidroponik/pkg/enums"
)

// PartnerInquiry is a partnership request submitted from the public site.
type PartnerInquiry struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string              `gorm:"column:name;type:text;not null"`
	Phone        string              `gorm:"column:phone;type:text;not null"`
	Email        *string             `gorm:"column:email;type:text"`
	BusinessName *string             `gorm:"column:business_name;type:text"`
	Message      string              `gorm:"column:message;type:text;not null"`
	Status       enums.InquiryStatus `gorm:"column:status;type:text;not null;default:'new'"`
	AdminNotes   *string             `gorm:"column:admin_notes;type:text"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
