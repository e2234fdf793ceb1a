package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/domains/unit"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/treequery"
	"inventory-backend/internal/shared/utils"
)

type categoryService struct {
	repo     cataloguecategory.Repository
	unitRepo unit.Repository
}

func NewService(repo cataloguecategory.Repository, unitRepo unit.Repository) cataloguecategory.Service {
	return &categoryService{repo: repo, unitRepo: unitRepo}
}

func (s *categoryService) Create(ctx context.Context, req cataloguecategory.CreateCatalogueCategoryReq) (*cataloguecategory.CatalogueCategory, error) {
	var parentID *bson.ObjectID
	if req.ParentID != nil {
		id, err := utils.ParseObjectID(*req.ParentID)
		if err != nil {
			return nil, cataloguecategory.ErrParentNotFound
		}
		parent, err := s.repo.GetByID(ctx, id)
		if errors.Is(err, cataloguecategory.ErrCatalogueCategoryNotFound) {
			return nil, cataloguecategory.ErrParentNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.IsLeaf {
			return nil, cataloguecategory.ErrLeafParent
		}
		parentID = &id
	}

	code := utils.GenerateCode(req.Name)
	exists, err := s.repo.CodeExistsWithinParent(ctx, parentID, code, bson.ObjectID{})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, cataloguecategory.ErrDuplicateCatalogueCategory
	}

	// Properties only live on leaves; a list supplied for a non-leaf is
	// discarded.
	properties := []cataloguecategory.Property{}
	if req.IsLeaf {
		properties, err = s.resolveProperties(ctx, req.Properties)
		if err != nil {
			return nil, err
		}
	}

	return s.repo.Create(ctx, &cataloguecategory.CatalogueCategory{
		Name:       req.Name,
		Code:       code,
		IsLeaf:     req.IsLeaf,
		ParentID:   parentID,
		Properties: properties,
	})
}

func (s *categoryService) GetByID(ctx context.Context, id bson.ObjectID) (*cataloguecategory.CatalogueCategory, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context, filter cataloguecategory.ListFilter) ([]cataloguecategory.CatalogueCategory, error) {
	return s.repo.List(ctx, filter)
}

func (s *categoryService) Update(ctx context.Context, id bson.ObjectID, req cataloguecategory.UpdateCatalogueCategoryReq) (*cataloguecategory.CatalogueCategory, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsLeaf.IsSet() || req.Properties.IsSet() {
		hasChildren, err := s.hasChildElements(ctx, id)
		if err != nil {
			return nil, err
		}
		if hasChildren {
			return nil, cataloguecategory.ErrChildElementsExist
		}
	}

	nameChanged := false
	if req.Name.IsSet() && req.Name.Get() != c.Name {
		c.Name = req.Name.Get()
		c.Code = utils.GenerateCode(c.Name)
		nameChanged = true
	}

	parentChanged := false
	if req.ParentID.IsSet() {
		newParentID, err := s.resolveMoveDestination(ctx, c, req.ParentID.Get())
		if err != nil {
			return nil, err
		}
		if !sameParent(c.ParentID, newParentID) {
			c.ParentID = newParentID
			parentChanged = true
		}
	}

	if nameChanged || parentChanged {
		exists, err := s.repo.CodeExistsWithinParent(ctx, c.ParentID, c.Code, c.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, cataloguecategory.ErrDuplicateCatalogueCategory
		}
	}

	if req.IsLeaf.IsSet() {
		c.IsLeaf = req.IsLeaf.Get()
		if !c.IsLeaf {
			c.Properties = []cataloguecategory.Property{}
		}
	}

	if req.Properties.IsSet() && c.IsLeaf {
		c.Properties, err = s.resolveProperties(ctx, req.Properties.Get())
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	hasChildren, err := s.hasChildElements(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return cataloguecategory.ErrChildElementsExist
	}

	return s.repo.Delete(ctx, id)
}

func (s *categoryService) Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error) {
	trail, err := s.repo.Breadcrumbs(ctx, id)
	if errors.Is(err, treequery.ErrEntityNotFound) {
		return nil, cataloguecategory.ErrCatalogueCategoryNotFound
	}
	if errors.Is(err, treequery.ErrDanglingParent) {
		return nil, apperrors.DatabaseIntegrity(
			"unable to locate the full breadcrumb trail for catalogue category with ID " + id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return trail, nil
}

// resolveMoveDestination validates the new parent on a move: existence,
// non-leaf placement, and the cycle check.
func (s *categoryService) resolveMoveDestination(ctx context.Context, c *cataloguecategory.CatalogueCategory, rawParentID *string) (*bson.ObjectID, error) {
	if rawParentID == nil {
		return nil, nil
	}

	destID, err := utils.ParseObjectID(*rawParentID)
	if err != nil {
		return nil, cataloguecategory.ErrParentNotFound
	}
	if sameParent(c.ParentID, &destID) {
		return &destID, nil
	}

	parent, err := s.repo.GetByID(ctx, destID)
	if errors.Is(err, cataloguecategory.ErrCatalogueCategoryNotFound) {
		return nil, cataloguecategory.ErrParentNotFound
	}
	if err != nil {
		return nil, err
	}
	if parent.IsLeaf {
		return nil, cataloguecategory.ErrLeafParent
	}

	allowed, err := s.repo.MoveAllowed(ctx, c.ID, destID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.InvalidAction("Cannot move a catalogue category to one of its own children")
	}

	return &destID, nil
}

// resolveProperties converts definition requests into stored properties:
// fresh ids, schema validation, and unit value caching.
func (s *categoryService) resolveProperties(ctx context.Context, reqs []cataloguecategory.PropertyReq) ([]cataloguecategory.Property, error) {
	properties := make([]cataloguecategory.Property, 0, len(reqs))
	for _, r := range reqs {
		p, err := r.ToModel()
		if err != nil {
			return nil, cataloguecategory.ErrUnitNotFound
		}
		p.ID = bson.NewObjectID()
		properties = append(properties, p)
	}

	if err := cataloguecategory.ValidateDefinitions(properties); err != nil {
		return nil, err
	}

	for i := range properties {
		if err := s.resolveUnit(ctx, &properties[i]); err != nil {
			return nil, err
		}
	}
	return properties, nil
}

func (s *categoryService) resolveUnit(ctx context.Context, p *cataloguecategory.Property) error {
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

func (s *categoryService) hasChildElements(ctx context.Context, id bson.ObjectID) (bool, error) {
	hasCategories, err := s.repo.HasChildCategories(ctx, id)
	if err != nil {
		return false, err
	}
	if hasCategories {
		return true, nil
	}
	return s.repo.HasCatalogueItems(ctx, id)
}

func sameParent(a, b *bson.ObjectID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
