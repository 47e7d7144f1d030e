package sellerservice

import (
	"context"
	"fmt"

	"github.com/checkplatform/checkdesk/internal/domain"
	"github.com/checkplatform/checkdesk/internal/dto"
	"github.com/checkplatform/checkdesk/pkg/validate"
)

//go:generate mockgen -source=sellerservice.go -destination=sellerservice_mock.go -package=sellerservice

type Repo interface {
	Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	FindByID(ctx context.Context, id int64) (*domain.Seller, error)
	FindByINN(ctx context.Context, inn string) (*domain.Seller, error)
	FindAll(ctx context.Context, types []string, search string) ([]domain.Seller, error)
	Update(ctx context.Context, seller *domain.Seller) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func validType(t string) bool {
	return t == domain.SellerTypeWhite || t == domain.SellerTypeElite
}

func (s *Service) Create(ctx context.Context, in dto.CreateSellerRequestDTO) (*domain.Seller, error) {
	if !validate.IsINN(in.INN) {
		return nil, fmt.Errorf("%q: %w", in.INN, domain.ErrBadINN)
	}
	sellerType := in.Type
	if sellerType == "" {
		sellerType = domain.SellerTypeWhite
	}
	if !validType(sellerType) {
		return nil, fmt.Errorf("%q: %w", sellerType, domain.ErrBadSellerType)
	}

	existing, err := s.repo.FindByINN(ctx, in.INN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSellerINNTaken
	}

	return s.repo.Create(ctx, &domain.Seller{
		Name:   in.Name,
		INN:    in.INN,
		TGLink: in.TGLink,
		Type:   sellerType,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	seller, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}
	return seller, nil
}

func (s *Service) List(ctx context.Context, types []string, search string) ([]domain.Seller, error) {
	for _, t := range types {
		if !validType(t) {
			return nil, fmt.Errorf("%q: %w", t, domain.ErrBadSellerType)
		}
	}
	return s.repo.FindAll(ctx, types, search)
}

func (s *Service) Update(ctx context.Context, id int64, in dto.UpdateSellerRequestDTO) (*domain.Seller, error) {
	seller, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}

	if in.INN != nil && *in.INN != seller.INN {
		if !validate.IsINN(*in.INN) {
			return nil, fmt.Errorf("%q: %w", *in.INN, domain.ErrBadINN)
		}
		existing, err := s.repo.FindByINN(ctx, *in.INN)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrSellerINNTaken
		}
		seller.INN = *in.INN
	}
	if in.Name != nil {
		seller.Name = *in.Name
	}
	if in.TGLink != nil {
		seller.TGLink = *in.TGLink
	}
	if in.Type != nil {
		if !validType(*in.Type) {
			return nil, fmt.Errorf("%q: %w", *in.Type, domain.ErrBadSellerType)
		}
		seller.Type = *in.Type
	}

	if err := s.repo.Update(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	seller, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrSellerNotFound
	}
	return s.repo.Delete(ctx, id)
}
