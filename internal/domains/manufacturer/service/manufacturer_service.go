package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/manufacturer"
	"inventory-backend/internal/shared/utils"
)

type manufacturerService struct {
	repo manufacturer.Repository
}

func NewService(repo manufacturer.Repository) manufacturer.Service {
	return &manufacturerService{repo: repo}
}

func (s *manufacturerService) Create(ctx context.Context, req manufacturer.CreateManufacturerReq) (*manufacturer.Manufacturer, error) {
	code := utils.GenerateCode(req.Name)

	exists, err := s.repo.CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, manufacturer.ErrDuplicateManufacturer
	}

	return s.repo.Create(ctx, &manufacturer.Manufacturer{
		Name: req.Name,
		Code: code,
		URL:  req.URL,
		Address: manufacturer.Address{
			AddressLine: req.Address.AddressLine,
			Town:        req.Address.Town,
			County:      req.Address.County,
			Country:     req.Address.Country,
			Postcode:    req.Address.Postcode,
		},
		Telephone: req.Telephone,
	})
}

func (s *manufacturerService) GetByID(ctx context.Context, id bson.ObjectID) (*manufacturer.Manufacturer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *manufacturerService) List(ctx context.Context) ([]manufacturer.Manufacturer, error) {
	return s.repo.List(ctx)
}

// Update applies a partial patch. A name change re-derives the code and
// re-runs the global duplicate check. An empty patch still refreshes
// modified_time.
func (s *manufacturerService) Update(ctx context.Context, id bson.ObjectID, req manufacturer.UpdateManufacturerReq) (*manufacturer.Manufacturer, error) {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != stored.Name {
		code := utils.GenerateCode(*req.Name)
		if code != stored.Code {
			exists, err := s.repo.CodeExists(ctx, code)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, manufacturer.ErrDuplicateManufacturer
			}
		}
		stored.Name = *req.Name
		stored.Code = code
	}
	if req.URL != nil {
		stored.URL = req.URL
	}
	if req.Telephone != nil {
		stored.Telephone = req.Telephone
	}
	if req.Address != nil {
		applyAddressPatch(&stored.Address, req.Address)
	}

	if err := s.repo.Update(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *manufacturerService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return manufacturer.ErrManufacturerInUse
	}

	return s.repo.Delete(ctx, id)
}

func applyAddressPatch(address *manufacturer.Address, patch *manufacturer.UpdateAddressReq) {
	if patch.AddressLine != nil {
		address.AddressLine = *patch.AddressLine
	}
	if patch.Town != nil {
		address.Town = *patch.Town
	}
	if patch.County != nil {
		address.County = *patch.County
	}
	if patch.Country != nil {
		address.Country = *patch.Country
	}
	if patch.Postcode != nil {
		address.Postcode = *patch.Postcode
	}
}
