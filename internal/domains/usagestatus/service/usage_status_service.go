package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-backend/internal/domains/usagestatus"
	"inventory-backend/internal/shared/utils"
)

type usageStatusService struct {
	repo usagestatus.Repository
}

func NewService(repo usagestatus.Repository) usagestatus.Service {
	return &usageStatusService{repo: repo}
}

func (s *usageStatusService) Create(ctx context.Context, req usagestatus.CreateUsageStatusReq) (*usagestatus.UsageStatus, error) {
	code := utils.GenerateCode(req.Value)

	exists, err := s.repo.CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, usagestatus.ErrDuplicateUsageStatus
	}

	return s.repo.Create(ctx, &usagestatus.UsageStatus{Value: req.Value, Code: code})
}

func (s *usageStatusService) GetByID(ctx context.Context, id bson.ObjectID) (*usagestatus.UsageStatus, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *usageStatusService) List(ctx context.Context) ([]usagestatus.UsageStatus, error) {
	return s.repo.List(ctx)
}

func (s *usageStatusService) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return usagestatus.ErrUsageStatusInUse
	}

	return s.repo.Delete(ctx, id)
}
