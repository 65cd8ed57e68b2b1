package inquiries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zyreejago/hidroponik/pkg/db/models"
	"github.com/zyreejago/hidroponik/pkg/enums"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
)

// SubmitInput carries the public contact form fields.
type SubmitInput struct {
	Name         string
	Phone        string
	Email        *string
	BusinessName *string
	Message      string
}

// Service manages partnership inquiries.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*models.PartnerInquiry, error)
	List(ctx context.Context, status *enums.InquiryStatus) ([]models.PartnerInquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, adminNotes *string) (*models.PartnerInquiry, error)
}

type service struct {
	repo Repository
}

// NewService builds the inquiries service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inquiries repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*models.PartnerInquiry, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}

	inquiry := &models.PartnerInquiry{
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        input.Email,
		BusinessName: input.BusinessName,
		Message:      strings.TrimSpace(input.Message),
		Status:       enums.InquiryStatusNew,
	}

	created, err := s.repo.Create(ctx, inquiry)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating inquiry")
	}
	return created, nil
}

func (s *service) List(ctx context.Context, status *enums.InquiryStatus) ([]models.PartnerInquiry, error) {
	list, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing inquiries")
	}
	return list, nil
}

// UpdateStatus is last-write-wins; there is no optimistic lock on inquiries.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string, adminNotes *string) (*models.PartnerInquiry, error) {
	target, err := enums.ParseInquiryStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inquiry not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading inquiry")
	}

	updates := map[string]any{"status": target}
	if adminNotes != nil {
		updates["admin_notes"] = *adminNotes
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating inquiry")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reloading inquiry")
	}
	return updated, nil
}
