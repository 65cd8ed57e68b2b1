package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zyreejago/hidroponik/pkg/enums"
)

// Order represents a storefront checkout captured for back-office processing.
type Order struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber      string               `gorm:"column:order_number;type:text;not null;uniqueIndex"`
	TrackingCode     string               `gorm:"column:tracking_code;type:text;not null;uniqueIndex"`
	CustomerName     string               `gorm:"column:customer_name;type:text;not null"`
	CustomerPhone    string               `gorm:"column:customer_phone;type:text;not null"`
	CustomerEmail    *string              `gorm:"column:customer_email;type:text"`
	DeliveryMethod   enums.DeliveryMethod `gorm:"column:delivery_method;type:text;not null"`
	ShippingAddress  *string              `gorm:"column:shipping_address;type:text"`
	ShippingProvince *string              `gorm:"column:shipping_province;type:text"`
	ShippingCity     *string              `gorm:"column:shipping_city;type:text"`
	Courier          *string              `gorm:"column:courier;type:text"`
	CourierService   *string              `gorm:"column:courier_service;type:text"`
	QuoteSource      *enums.QuoteSource   `gorm:"column:quote_source;type:text"`
	TotalWeightGrams int                  `gorm:"column:total_weight_grams;not null;default:0"`
	Subtotal         decimal.Decimal      `gorm:"column:subtotal;type:numeric(14,2);not null"`
	ShippingFee      decimal.Decimal      `gorm:"column:shipping_fee;type:numeric(14,2);not null;default:0"`
	Total            decimal.Decimal      `gorm:"column:total;type:numeric(14,2);not null"`
	PaymentMethod    string               `gorm:"column:payment_method;type:text;not null"`
	PaymentProofURL  *string              `gorm:"column:payment_proof_url;type:text"`
	Status           enums.OrderStatus    `gorm:"column:status;type:text;not null;default:'pending'"`
	Notes            *string              `gorm:"column:notes;type:text"`
	Items            []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
