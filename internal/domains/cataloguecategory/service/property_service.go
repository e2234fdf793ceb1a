package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/domains/item"
	"inventory-backend/internal/domains/unit"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/pkg/database"
)

// propertyService coordinates schema changes that span the category,
// catalogue items and items collections. Each mutation runs in a single
// multi-document transaction, writing category first so concurrent
// propagations conflict there.
type propertyService struct {
	runTx       func(ctx context.Context, fn database.TxFunc) error
	repo        cataloguecategory.Repository
	catItemRepo catalogueitem.Repository
	itemRepo    item.Repository
	unitRepo    unit.Repository
}

func NewPropertyService(
	client *mongo.Client,
	repo cataloguecategory.Repository,
	catItemRepo catalogueitem.Repository,
	itemRepo item.Repository,
	unitRepo unit.Repository,
) cataloguecategory.PropertyService {
	return &propertyService{
		runTx: func(ctx context.Context, fn database.TxFunc) error {
			return database.WithTransaction(ctx, client, fn)
		},
		repo:        repo,
		catItemRepo: catItemRepo,
		itemRepo:    itemRepo,
		unitRepo:    unitRepo,
	}
}

func (s *propertyService) Create(ctx context.Context, categoryID bson.ObjectID, req cataloguecategory.CreatePropertyReq) (*cataloguecategory.Property, error) {
	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsLeaf {
		return nil, apperrors.InvalidAction("Cannot add a property to a non-leaf catalogue category")
	}

	p, err := req.ToModel()
	if err != nil {
		return nil, cataloguecategory.ErrUnitNotFound
	}
	p.ID = bson.NewObjectID()

	for i := range category.Properties {
		if category.Properties[i].Name == p.Name {
			return nil, apperrors.DuplicatePropertyName(
				fmt.Sprintf("Duplicate property name: %s", p.Name))
		}
	}
	if err := cataloguecategory.ValidateDefinition(&p); err != nil {
		return nil, err
	}

	var defaultValue any
	if req.DefaultValue.IsSet() {
		defaultValue = req.DefaultValue.Get()
	}
	if err := cataloguecategory.ValidateDefaultValue(&p, defaultValue); err != nil {
		return nil, err
	}

	if err := s.resolveUnit(ctx, &p); err != nil {
		return nil, err
	}

	pv := catalogueitem.NewPropertyValue(&p, defaultValue)
	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.repo.AddProperty(ctx, categoryID, p); err != nil {
			return err
		}
		if err := s.catItemRepo.AddPropertyValue(ctx, categoryID, pv); err != nil {
			return err
		}
		catItemIDs, err := s.catItemRepo.ListIDsByCategory(ctx, categoryID)
		if err != nil {
			return err
		}
		if len(catItemIDs) == 0 {
			return nil
		}
		return s.itemRepo.AddPropertyValue(ctx, catItemIDs, pv)
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *propertyService) Update(ctx context.Context, categoryID, propertyID bson.ObjectID, req cataloguecategory.UpdatePropertyReq) (*cataloguecategory.Property, error) {
	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	existing := category.PropertyByID(propertyID)
	if existing == nil {
		return nil, cataloguecategory.ErrPropertyNotFound
	}
	updated := *existing

	nameChanged := false
	if req.Name.IsSet() && req.Name.Get() != existing.Name {
		for i := range category.Properties {
			if category.Properties[i].ID != propertyID && category.Properties[i].Name == req.Name.Get() {
				return nil, apperrors.DuplicatePropertyName(
					fmt.Sprintf("Duplicate property name: %s", req.Name.Get()))
			}
		}
		updated.Name = req.Name.Get()
		nameChanged = true
	}

	if req.AllowedValues.IsSet() {
		newAV := req.AllowedValues.Get().ToModel()
		if err := cataloguecategory.ValidateAllowedValuesUpdate(existing.AllowedValues, newAV); err != nil {
			return nil, err
		}
		updated.AllowedValues = newAV
	}

	if err := cataloguecategory.ValidateDefinition(&updated); err != nil {
		return nil, err
	}

	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.repo.ReplaceProperty(ctx, categoryID, updated); err != nil {
			return err
		}
		if !nameChanged {
			return nil
		}
		if err := s.catItemRepo.RenameProperty(ctx, propertyID, updated.Name); err != nil {
			return err
		}
		return s.itemRepo.RenameProperty(ctx, propertyID, updated.Name)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *propertyService) resolveUnit(ctx context.Context, p *cataloguecategory.Property) error {
	if p.UnitID == nil {
		return nil
	}
	u, err := s.unitRepo.GetByID(ctx, *p.UnitID)
	if errors.Is(err, unit.ErrUnitNotFound) {
		return cataloguecategory.ErrUnitNotFound
	}
	if err != nil {
		return err
	}
	p.Unit = &u.Value
	return nil
}
