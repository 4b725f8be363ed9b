package service

import (
	"context"
	"encoding/json"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/normalize"
)

func (s *Service) ListRouters(ctx context.Context) ([]models.Router, error) {
	raw, err := s.api.Get(ctx, "/api/routers")
	if err != nil {
		s.log.Warn("router list fetch failed", "error", err.Error())
		return []models.Router{}, err
	}
	return normalize.RouterList(raw), nil
}

func (s *Service) GetRouter(ctx context.Context, id string) (models.Router, error) {
	raw, err := s.api.Get(ctx, "/api/routers/"+id)
	if err != nil {
		return models.Router{}, err
	}
	return normalize.RouterOne(raw), nil
}

func (s *Service) CreateRouter(ctx context.Context, router models.Router) (models.Router, error) {
	raw, err := s.api.Post(ctx, "/api/routers", normalize.RouterPayload(router))
	if err != nil {
		s.log.Error("router create failed", "name", router.Name, "error", err.Error())
		return models.Router{}, err
	}
	created := normalize.RouterOne(raw)
	s.log.Info("router created", "router_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) UpdateRouter(ctx context.Context, id string, router models.Router) (models.Router, error) {
	raw, err := s.api.Put(ctx, "/api/routers/"+id, normalize.RouterPayload(router))
	if err != nil {
		s.log.Error("router update failed", "router_id", id, "error", err.Error())
		return models.Router{}, err
	}
	return normalize.RouterOne(raw), nil
}

func (s *Service) DeleteRouter(ctx context.Context, id string) error {
	if _, err := s.api.Delete(ctx, "/api/routers/"+id); err != nil {
		s.log.Error("router delete failed", "router_id", id, "error", err.Error())
		return err
	}
	s.log.Info("router deleted", "router_id", id)
	return nil
}

// TestRouterConnection asks the upstream to probe the router's management
// port. The result reflects reachability at probe time, nothing more.
func (s *Service) TestRouterConnection(ctx context.Context, id string) (bool, error) {
	raw, err := s.api.Post(ctx, "/servers/test/"+id, nil)
	if err != nil {
		s.log.Warn("router connection test failed", "router_id", id, "error", err.Error())
		return false, err
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return false, err
	}
	return result.Success, nil
}

func (s *Service) GetRouterStats(ctx context.Context, id string) (models.RouterStats, error) {
	raw, err := s.api.Get(ctx, "/api/routers/"+id+"/stats")
	if err != nil {
		return models.RouterStats{}, err
	}
	return normalize.RouterStats(raw), nil
}
