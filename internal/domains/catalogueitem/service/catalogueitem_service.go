package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/domains/manufacturer"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/utils"
)

type catalogueItemService struct {
	repo             catalogueitem.Repository
	categoryRepo     cataloguecategory.Repository
	manufacturerRepo manufacturer.Repository
}

func NewService(
	repo catalogueitem.Repository,
	categoryRepo cataloguecategory.Repository,
	manufacturerRepo manufacturer.Repository,
) catalogueitem.Service {
	return &catalogueItemService{
		repo:             repo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
	}
}

func (s *catalogueItemService) Create(ctx context.Context, req catalogueitem.CreateCatalogueItemReq) (*catalogueitem.CatalogueItem, error) {
	category, err := s.resolveCategory(ctx, req.CatalogueCategoryID)
	if err != nil {
		return nil, err
	}

	manufacturerID, err := s.resolveManufacturer(ctx, req.ManufacturerID)
	if err != nil {
		return nil, err
	}

	replacementID, err := s.resolveReplacement(ctx, req.ObsoleteReplacementCatalogueItemID)
	if err != nil {
		return nil, err
	}

	supplied, err := catalogueitem.ToSupplied(req.Properties)
	if err != nil {
		return nil, err
	}
	properties, err := catalogueitem.ProcessProperties(category.Properties, supplied)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &catalogueitem.CatalogueItem{
		CatalogueCategoryID: category.ID,
		ManufacturerID:      manufacturerID,
		Name:                req.Name,
		Description:         req.Description,
		CostGBP:             req.CostGBP,
		CostToReworkGBP:     req.CostToReworkGBP,
		DaysToReplace:       req.DaysToReplace,
		DaysToRework:        req.DaysToRework,
		DrawingNumber:       req.DrawingNumber,
		DrawingLink:         req.DrawingLink,
		ItemModelNumber:     req.ItemModelNumber,
		IsObsolete:          req.IsObsolete,
		ObsoleteReason:      req.ObsoleteReason,
		ObsoleteReplacementCatalogueItemID: replacementID,
		Notes:      req.Notes,
		Properties: properties,
	})
}

func (s *catalogueItemService) GetByID(ctx context.Context, id bson.ObjectID) (*catalogueitem.CatalogueItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catalogueItemService) List(ctx context.Context, filter catalogueitem.ListFilter) ([]catalogueitem.CatalogueItem, error) {
	return s.repo.List(ctx, filter)
}

func (s *catalogueItemService) Update(ctx context.Context, id bson.ObjectID, req catalogueitem.UpdateCatalogueItemReq) (*catalogueitem.CatalogueItem, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryChanged := req.CatalogueCategoryID.IsSet() && req.CatalogueCategoryID.Get() != c.CatalogueCategoryID.Hex()
	manufacturerChanged := req.ManufacturerID.IsSet() && req.ManufacturerID.Get() != c.ManufacturerID.Hex()

	// An item depending on this catalogue item freezes its category,
	// manufacturer and properties.
	if categoryChanged || manufacturerChanged || req.Properties.IsSet() {
		hasItems, err := s.repo.HasItems(ctx, id)
		if err != nil {
			return nil, err
		}
		if hasItems {
			return nil, catalogueitem.ErrChildElementsExist
		}
	}

	if categoryChanged {
		newCategory, err := s.resolveCategory(ctx, req.CatalogueCategoryID.Get())
		if err != nil {
			return nil, err
		}
		if !req.Properties.IsSet() && !catalogueitem.SamePropertySet(newCategory.Properties, c.Properties) {
			return nil, apperrors.InvalidAction(
				"Cannot move catalogue item to a category with different properties without specifying the new properties")
		}
		c.CatalogueCategoryID = newCategory.ID
		if req.Properties.IsSet() {
			c.Properties, err = s.processProperties(newCategory, req.Properties.Get())
			if err != nil {
				return nil, err
			}
		}
	} else if req.Properties.IsSet() {
		category, err := s.categoryRepo.GetByID(ctx, c.CatalogueCategoryID)
		if err != nil {
			return nil, err
		}
		c.Properties, err = s.processProperties(category, req.Properties.Get())
		if err != nil {
			return nil, err
		}
	}

	if manufacturerChanged {
		manufacturerID, err := s.resolveManufacturer(ctx, req.ManufacturerID.Get())
		if err != nil {
			return nil, err
		}
		c.ManufacturerID = manufacturerID
	}

	if req.ObsoleteReplacementCatalogueItemID.IsSet() {
		c.ObsoleteReplacementCatalogueItemID, err = s.resolveReplacement(ctx, req.ObsoleteReplacementCatalogueItemID.Get())
		if err != nil {
			return nil, err
		}
	}

	if req.Name.IsSet() {
		c.Name = req.Name.Get()
	}
	if req.Description.IsSet() {
		c.Description = req.Description.Get()
	}
	if req.CostGBP.IsSet() {
		c.CostGBP = req.CostGBP.Get()
	}
	if req.CostToReworkGBP.IsSet() {
		c.CostToReworkGBP = req.CostToReworkGBP.Get()
	}
	if req.DaysToReplace.IsSet() {
		c.DaysToReplace = req.DaysToReplace.Get()
	}
	if req.DaysToRework.IsSet() {
		c.DaysToRework = req.DaysToRework.Get()
	}
	if req.DrawingNumber.IsSet() {
		c.DrawingNumber = req.DrawingNumber.Get()
	}
	if req.DrawingLink.IsSet() {
		c.DrawingLink = req.DrawingLink.Get()
	}
	if req.ItemModelNumber.IsSet() {
		c.ItemModelNumber = req.ItemModelNumber.Get()
	}
	if req.IsObsolete.IsSet() {
		c.IsObsolete = req.IsObsolete.Get()
	}
	if req.ObsoleteReason.IsSet() {
		c.ObsoleteReason = req.ObsoleteReason.Get()
	}
	if req.Notes.IsSet() {
		c.Notes = req.Notes.Get()
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *catalogueItemService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	hasItems, err := s.repo.HasItems(ctx, id)
	if err != nil {
		return err
	}
	if hasItems {
		return catalogueitem.ErrChildElementsExist
	}

	return s.repo.Delete(ctx, id)
}

func (s *catalogueItemService) resolveCategory(ctx context.Context, rawID string) (*cataloguecategory.CatalogueCategory, error) {
	id, err := utils.ParseObjectID(rawID)
	if err != nil {
		return nil, catalogueitem.ErrCategoryNotFound
	}
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, cataloguecategory.ErrCatalogueCategoryNotFound) {
		return nil, catalogueitem.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	if !category.IsLeaf {
		return nil, catalogueitem.ErrNonLeafCategory
	}
	return category, nil
}

func (s *catalogueItemService) resolveManufacturer(ctx context.Context, rawID string) (bson.ObjectID, error) {
	id, err := utils.ParseObjectID(rawID)
	if err != nil {
		return bson.NilObjectID, catalogueitem.ErrManufacturerNotFound
	}
	if _, err := s.manufacturerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, manufacturer.ErrManufacturerNotFound) {
			return bson.NilObjectID, catalogueitem.ErrManufacturerNotFound
		}
		return bson.NilObjectID, err
	}
	return id, nil
}

func (s *catalogueItemService) resolveReplacement(ctx context.Context, rawID *string) (*bson.ObjectID, error) {
	if rawID == nil {
		return nil, nil
	}
	id, err := utils.ParseObjectID(*rawID)
	if err != nil {
		return nil, catalogueitem.ErrReplacementNotFound
	}
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, catalogueitem.ErrReplacementNotFound
	}
	return &id, nil
}

func (s *catalogueItemService) processProperties(category *cataloguecategory.CatalogueCategory, reqs []catalogueitem.PropertyValueReq) ([]catalogueitem.PropertyValue, error) {
	supplied, err := catalogueitem.ToSupplied(reqs)
	if err != nil {
		return nil, err
	}
	return catalogueitem.ProcessProperties(category.Properties, supplied)
}
