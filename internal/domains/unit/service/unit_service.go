package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/unit"
	"inventory-backend/internal/shared/utils"
)

type unitService struct {
	repo unit.Repository
}

func NewService(repo unit.Repository) unit.Service {
	return &unitService{repo: repo}
}

func (s *unitService) Create(ctx context.Context, req unit.CreateUnitReq) (*unit.Unit, error) {
	code := utils.GenerateCode(req.Value)

	exists, err := s.repo.CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, unit.ErrDuplicateUnit
	}

	return s.repo.Create(ctx, &unit.Unit{Value: req.Value, Code: code})
}

func (s *unitService) GetByID(ctx context.Context, id bson.ObjectID) (*unit.Unit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *unitService) List(ctx context.Context) ([]unit.Unit, error) {
	return s.repo.List(ctx)
}

func (s *unitService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return unit.ErrUnitInUse
	}

	return s.repo.Delete(ctx, id)
}
