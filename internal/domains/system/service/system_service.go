package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/system"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/treequery"
	"inventory-backend/internal/shared/utils"
)

type systemService struct {
	repo system.Repository
}

func NewService(repo system.Repository) system.Service {
	return &systemService{repo: repo}
}

func (s *systemService) Create(ctx context.Context, req system.CreateSystemReq) (*system.System, error) {
	var parentID *bson.ObjectID
	if req.ParentID != nil {
		id, err := utils.ParseObjectID(*req.ParentID)
		if err != nil {
			return nil, system.ErrParentNotFound
		}
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, system.ErrSystemNotFound) {
				return nil, system.ErrParentNotFound
			}
			return nil, err
		}
		parentID = &id
	}

	code := utils.GenerateCode(req.Name)
	exists, err := s.repo.CodeExistsWithinParent(ctx, parentID, code, bson.ObjectID{})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, system.ErrDuplicateSystem
	}

	return s.repo.Create(ctx, &system.System{
		Name:        req.Name,
		Code:        code,
		ParentID:    parentID,
		Description: req.Description,
		Location:    req.Location,
		Owner:       req.Owner,
		Importance:  system.Importance(req.Importance),
	})
}

func (s *systemService) GetByID(ctx context.Context, id bson.ObjectID) (*system.System, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *systemService) List(ctx context.Context, filter system.ListFilter) ([]system.System, error) {
	return s.repo.List(ctx, filter)
}

func (s *systemService) Update(ctx context.Context, id bson.ObjectID, req system.UpdateSystemReq) (*system.System, error) {
	sys, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	nameChanged := false
	if req.Name.IsSet() && req.Name.Get() != sys.Name {
		sys.Name = req.Name.Get()
		sys.Code = utils.GenerateCode(sys.Name)
		nameChanged = true
	}

	parentChanged := false
	if req.ParentID.IsSet() {
		newParentID, err := s.resolveMoveDestination(ctx, sys, req.ParentID.Get())
		if err != nil {
			return nil, err
		}
		if !sameParent(sys.ParentID, newParentID) {
			sys.ParentID = newParentID
			parentChanged = true
		}
	}

	if nameChanged || parentChanged {
		exists, err := s.repo.CodeExistsWithinParent(ctx, sys.ParentID, sys.Code, sys.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, system.ErrDuplicateSystem
		}
	}

	if req.Description.IsSet() {
		sys.Description = req.Description.Get()
	}
	if req.Location.IsSet() {
		sys.Location = req.Location.Get()
	}
	if req.Owner.IsSet() {
		sys.Owner = req.Owner.Get()
	}
	if req.Importance.IsSet() {
		sys.Importance = system.Importance(req.Importance.Get())
	}

	if err := s.repo.Update(ctx, sys); err != nil {
		return nil, err
	}
	return sys, nil
}

func (s *systemService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	hasChildren, err := s.hasChildElements(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return system.ErrChildElementsExist
	}

	return s.repo.Delete(ctx, id)
}

func (s *systemService) Breadcrumbs(ctx context.Context, id bson.ObjectID) (*treequery.Trail, error) {
	trail, err := s.repo.Breadcrumbs(ctx, id)
	if errors.Is(err, treequery.ErrEntityNotFound) {
		return nil, system.ErrSystemNotFound
	}
	if errors.Is(err, treequery.ErrDanglingParent) {
		return nil, apperrors.DatabaseIntegrity(
			"unable to locate the full breadcrumb trail for system with ID " + id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return trail, nil
}

func (s *systemService) resolveMoveDestination(ctx context.Context, sys *system.System, rawParentID *string) (*bson.ObjectID, error) {
	if rawParentID == nil {
		return nil, nil
	}

	destID, err := utils.ParseObjectID(*rawParentID)
	if err != nil {
		return nil, system.ErrParentNotFound
	}
	if sameParent(sys.ParentID, &destID) {
		return &destID, nil
	}

	if _, err := s.repo.GetByID(ctx, destID); err != nil {
		if errors.Is(err, system.ErrSystemNotFound) {
			return nil, system.ErrParentNotFound
		}
		return nil, err
	}

	allowed, err := s.repo.MoveAllowed(ctx, sys.ID, destID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.InvalidAction("Cannot move a system to one of its own children")
	}

	return &destID, nil
}

func (s *systemService) hasChildElements(ctx context.Context, id bson.ObjectID) (bool, error) {
	hasSystems, err := s.repo.HasChildSystems(ctx, id)
	if err != nil {
		return false, err
	}
	if hasSystems {
		return true, nil
	}
	return s.repo.HasItems(ctx, id)
}

func sameParent(a, b *bson.ObjectID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
