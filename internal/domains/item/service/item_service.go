package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/domains/item"
	"inventory-backend/internal/domains/system"
	"inventory-backend/internal/domains/usagestatus"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/utils"
)

type itemService struct {
	repo            item.Repository
	catItemRepo     catalogueitem.Repository
	categoryRepo    cataloguecategory.Repository
	systemRepo      system.Repository
	usageStatusRepo usagestatus.Repository
}

func NewService(
	repo item.Repository,
	catItemRepo catalogueitem.Repository,
	categoryRepo cataloguecategory.Repository,
	systemRepo system.Repository,
	usageStatusRepo usagestatus.Repository,
) item.Service {
	return &itemService{
		repo:            repo,
		catItemRepo:     catItemRepo,
		categoryRepo:    categoryRepo,
		systemRepo:      systemRepo,
		usageStatusRepo: usageStatusRepo,
	}
}

func (s *itemService) Create(ctx context.Context, req item.CreateItemReq) (*item.Item, error) {
	catalogueItem, err := s.resolveCatalogueItem(ctx, req.CatalogueItemID)
	if err != nil {
		return nil, err
	}

	systemID, err := s.resolveSystem(ctx, req.SystemID)
	if err != nil {
		return nil, err
	}

	usageStatusID, usageStatusValue, err := s.resolveUsageStatus(ctx, req.UsageStatusID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.processOverrides(ctx, catalogueItem, req.Properties)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &item.Item{
		CatalogueItemID:     catalogueItem.ID,
		SystemID:            systemID,
		UsageStatusID:       usageStatusID,
		UsageStatus:         usageStatusValue,
		PurchaseOrderNumber: req.PurchaseOrderNumber,
		IsDefective:         req.IsDefective,
		WarrantyEndDate:     req.WarrantyEndDate,
		AssetNumber:         req.AssetNumber,
		SerialNumber:        req.SerialNumber,
		DeliveredDate:       req.DeliveredDate,
		Notes:               req.Notes,
		Properties:          overrides,
	})
	if err != nil {
		return nil, err
	}

	created.Properties = item.MergeProperties(catalogueItem.Properties, created.Properties)
	return created, nil
}

func (s *itemService) GetByID(ctx context.Context, id bson.ObjectID) (*item.Item, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.mergeParentProperties(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *itemService) List(ctx context.Context, filter item.ListFilter) ([]item.Item, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Parents are fetched once per distinct catalogue item.
	parents := make(map[bson.ObjectID][]catalogueitem.PropertyValue)
	for idx := range items {
		parentID := items[idx].CatalogueItemID
		parentProps, ok := parents[parentID]
		if !ok {
			parent, err := s.catItemRepo.GetByID(ctx, parentID)
			if err != nil {
				return nil, parentIntegrityError(err, items[idx].ID)
			}
			parentProps = parent.Properties
			parents[parentID] = parentProps
		}
		items[idx].Properties = item.MergeProperties(parentProps, items[idx].Properties)
	}
	return items, nil
}

func (s *itemService) Update(ctx context.Context, id bson.ObjectID, req item.UpdateItemReq) (*item.Item, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The parent catalogue item is fixed for the item's lifetime.
	if req.CatalogueItemID.IsSet() && req.CatalogueItemID.Get() != i.CatalogueItemID.Hex() {
		return nil, apperrors.InvalidAction("Cannot change the catalogue item the item belongs to")
	}

	if req.SystemID.IsSet() && req.SystemID.Get() != i.SystemID.Hex() {
		i.SystemID, err = s.resolveSystem(ctx, req.SystemID.Get())
		if err != nil {
			return nil, err
		}
	}

	if req.UsageStatusID.IsSet() && req.UsageStatusID.Get() != i.UsageStatusID.Hex() {
		i.UsageStatusID, i.UsageStatus, err = s.resolveUsageStatus(ctx, req.UsageStatusID.Get())
		if err != nil {
			return nil, err
		}
	}

	if req.Properties.IsSet() {
		parent, err := s.catItemRepo.GetByID(ctx, i.CatalogueItemID)
		if err != nil {
			return nil, parentIntegrityError(err, i.ID)
		}
		i.Properties, err = s.processOverrides(ctx, parent, req.Properties.Get())
		if err != nil {
			return nil, err
		}
	}

	if req.PurchaseOrderNumber.IsSet() {
		i.PurchaseOrderNumber = req.PurchaseOrderNumber.Get()
	}
	if req.IsDefective.IsSet() {
		i.IsDefective = req.IsDefective.Get()
	}
	if req.WarrantyEndDate.IsSet() {
		i.WarrantyEndDate = req.WarrantyEndDate.Get()
	}
	if req.AssetNumber.IsSet() {
		i.AssetNumber = req.AssetNumber.Get()
	}
	if req.SerialNumber.IsSet() {
		i.SerialNumber = req.SerialNumber.Get()
	}
	if req.DeliveredDate.IsSet() {
		i.DeliveredDate = req.DeliveredDate.Get()
	}
	if req.Notes.IsSet() {
		i.Notes = req.Notes.Get()
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	if err := s.mergeParentProperties(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *itemService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *itemService) resolveCatalogueItem(ctx context.Context, rawID string) (*catalogueitem.CatalogueItem, error) {
	id, err := utils.ParseObjectID(rawID)
	if err != nil {
		return nil, item.ErrCatalogueItemNotFound
	}
	catalogueItem, err := s.catItemRepo.GetByID(ctx, id)
	if errors.Is(err, catalogueitem.ErrCatalogueItemNotFound) {
		return nil, item.ErrCatalogueItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return catalogueItem, nil
}

func (s *itemService) resolveSystem(ctx context.Context, rawID string) (bson.ObjectID, error) {
	id, err := utils.ParseObjectID(rawID)
	if err != nil {
		return bson.NilObjectID, item.ErrSystemNotFound
	}
	if _, err := s.systemRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, system.ErrSystemNotFound) {
			return bson.NilObjectID, item.ErrSystemNotFound
		}
		return bson.NilObjectID, err
	}
	return id, nil
}

func (s *itemService) resolveUsageStatus(ctx context.Context, rawID string) (bson.ObjectID, string, error) {
	id, err := utils.ParseObjectID(rawID)
	if err != nil {
		return bson.NilObjectID, "", item.ErrUsageStatusNotFound
	}
	status, err := s.usageStatusRepo.GetByID(ctx, id)
	if errors.Is(err, usagestatus.ErrUsageStatusNotFound) {
		return bson.NilObjectID, "", item.ErrUsageStatusNotFound
	}
	if err != nil {
		return bson.NilObjectID, "", err
	}
	return id, status.Value, nil
}

// processOverrides validates supplied values against the schema of the
// category governing the parent catalogue item.
func (s *itemService) processOverrides(ctx context.Context, parent *catalogueitem.CatalogueItem, reqs []catalogueitem.PropertyValueReq) ([]catalogueitem.PropertyValue, error) {
	category, err := s.categoryRepo.GetByID(ctx, parent.CatalogueCategoryID)
	if errors.Is(err, cataloguecategory.ErrCatalogueCategoryNotFound) {
		return nil, apperrors.DatabaseIntegrity(
			"catalogue category with ID " + parent.CatalogueCategoryID.Hex() + " no longer exists")
	}
	if err != nil {
		return nil, err
	}

	supplied, err := catalogueitem.ToSupplied(reqs)
	if err != nil {
		return nil, err
	}
	return item.ProcessOverrides(category.Properties, supplied)
}

func (s *itemService) mergeParentProperties(ctx context.Context, i *item.Item) error {
	parent, err := s.catItemRepo.GetByID(ctx, i.CatalogueItemID)
	if err != nil {
		return parentIntegrityError(err, i.ID)
	}
	i.Properties = item.MergeProperties(parent.Properties, i.Properties)
	return nil
}

func parentIntegrityError(err error, itemID bson.ObjectID) error {
	if errors.Is(err, catalogueitem.ErrCatalogueItemNotFound) {
		return apperrors.DatabaseIntegrity(
			"catalogue item referenced by item with ID " + itemID.Hex() + " no longer exists")
	}
	return err
}
