package inquiries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/pkg/db/models"
	"github.com/zyreejago/hidroponik/pkg/enums"
)

// Repository defines persistence operations for partnership inquiries.
type Repository interface {
	Create(ctx context.Context, inquiry *models.PartnerInquiry) (*models.PartnerInquiry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.PartnerInquiry, error)
	List(ctx context.Context, status *enums.InquiryStatus) ([]models.PartnerInquiry, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an inquiries repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inquiry *models.PartnerInquiry) (*models.PartnerInquiry, error) {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PartnerInquiry, error) {
	var inquiry models.PartnerInquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *repository) List(ctx context.Context, status *enums.InquiryStatus) ([]models.PartnerInquiry, error) {
	query := r.db.WithContext(ctx).Model(&models.PartnerInquiry{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var inquiries []models.PartnerInquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.PartnerInquiry{}).
		Where("id = ?", id).
		Updates(updates).Error
}
