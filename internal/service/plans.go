package service

import (
	"context"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/normalize"
)

func (s *Service) ListPlans(ctx context.Context) ([]models.Plan, error) {
	raw, err := s.api.Get(ctx, "/api/planes")
	if err != nil {
		s.log.Warn("plan list fetch failed", "error", err.Error())
		return []models.Plan{}, err
	}
	return normalize.PlanList(raw), nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (models.Plan, error) {
	raw, err := s.api.Get(ctx, "/api/planes/"+id)
	if err != nil {
		return models.Plan{}, err
	}
	return normalize.PlanOne(raw), nil
}

func (s *Service) CreatePlan(ctx context.Context, plan models.Plan) (models.Plan, error) {
	raw, err := s.api.Post(ctx, "/api/planes", normalize.PlanPayload(plan))
	if err != nil {
		s.log.Error("plan create failed", "name", plan.Name, "error", err.Error())
		return models.Plan{}, err
	}
	created := normalize.PlanOne(raw)
	s.log.Info("plan created", "plan_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) UpdatePlan(ctx context.Context, id string, plan models.Plan) (models.Plan, error) {
	raw, err := s.api.Put(ctx, "/api/planes/"+id, normalize.PlanPayload(plan))
	if err != nil {
		s.log.Error("plan update failed", "plan_id", id, "error", err.Error())
		return models.Plan{}, err
	}
	return normalize.PlanOne(raw), nil
}

func (s *Service) DeletePlan(ctx context.Context, id string) error {
	if _, err := s.api.Delete(ctx, "/api/planes/"+id); err != nil {
		s.log.Error("plan delete failed", "plan_id", id, "error", err.Error())
		return err
	}
	s.log.Info("plan deleted", "plan_id", id)
	return nil
}
