package templateservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/pkg/validate"
)

//go:generate mockgen -source=templateservice.go -destination=mock_templateservice.go -package=templateservice

type Repo interface {
	List(ctx context.Context) ([]domain.Template, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Template, error)
	FindByID(ctx context.Context, id int) (*domain.Template, error)
	Create(ctx context.Context, t *domain.Template) (*domain.Template, error)
	Update(ctx context.Context, t *domain.Template) (*domain.Template, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidCategory  = errors.New("invalid template category")
	ErrInvalidTemplate  = errors.New("invalid template")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Template, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Template, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Template, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTemplateNotFound
	}
	return t, nil
}

func check(t *domain.Template) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	if t.PricePerInvitation.IsNegative() {
		return fmt.Errorf("%w: price per invitation must not be negative", ErrInvalidTemplate)
	}
	if !t.PricePerInvitation.Equal(t.PricePerInvitation.Round(2)) {
		return fmt.Errorf("%w: price per invitation allows at most two decimal places", ErrInvalidTemplate)
	}
	if t.IsPremium && !t.PricePerInvitation.IsPositive() {
		return fmt.Errorf("%w: premium templates need a price per invitation", ErrInvalidTemplate)
	}
	if err := validate.Struct(t.Design); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	if !t.IsPremium {
		t.PricePerInvitation = decimal.Zero
	}
	return nil
}

func (s *Service) Create(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	if err := check(t); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	zap.L().Info("template created", zap.Int("id", created.ID), zap.String("category", string(created.Category)))
	return created, nil
}

func (s *Service) Update(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	if err := check(t); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTemplateNotFound
	}
	zap.L().Info("template updated", zap.Int("id", updated.ID))
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTemplateNotFound
	}
	zap.L().Info("template deleted", zap.Int("id", id))
	return nil
}
