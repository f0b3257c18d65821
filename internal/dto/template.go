package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/vivento/internal/domain"
)

type TemplateRequestDTO struct {
	Name               string            `json:"name" validate:"required,max=255" example:"Golden Rings"`
	Category           string            `json:"category" validate:"required,oneof=wedding engagement birthday corporate" example:"wedding"`
	ThumbnailURL       string            `json:"thumbnail_url" validate:"omitempty,url"`
	DesignData         domain.DesignData `json:"design_data"`
	IsPremium          bool              `json:"is_premium"`
	PricePerInvitation decimal.Decimal   `json:"price_per_invitation" swaggertype:"number" example:"0.1"`
}

type TemplateDTO struct {
	ID                 int               `json:"id" example:"3"`
	Name               string            `json:"name" example:"Golden Rings"`
	Category           string            `json:"category" example:"wedding"`
	ThumbnailURL       string            `json:"thumbnail_url"`
	DesignData         domain.DesignData `json:"design_data"`
	IsPremium          bool              `json:"is_premium"`
	PricePerInvitation string            `json:"price_per_invitation" example:"0.10"`
	CreatedAt          time.Time         `json:"created_at"`
}

func (r TemplateRequestDTO) ToDomain(id int) *domain.Template {
	return &domain.Template{
		ID:                 id,
		Name:               r.Name,
		Category:           domain.Category(r.Category),
		ThumbnailURL:       r.ThumbnailURL,
		Design:             r.DesignData,
		IsPremium:          r.IsPremium,
		PricePerInvitation: r.PricePerInvitation,
	}
}

func NewTemplateDTO(t *domain.Template) TemplateDTO {
	return TemplateDTO{
		ID:                 t.ID,
		Name:               t.Name,
		Category:           string(t.Category),
		ThumbnailURL:       t.ThumbnailURL,
		DesignData:         t.Design,
		IsPremium:          t.IsPremium,
		PricePerInvitation: Money(t.PricePerInvitation),
		CreatedAt:          t.CreatedAt,
	}
}

func NewTemplateDTOs(list []domain.Template) []TemplateDTO {
	out := make([]TemplateDTO, len(list))
	for i := range list {
		out[i] = NewTemplateDTO(&list[i])
	}
	return out
}
