package service

import (
	"context"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/normalize"
)

func (s *Service) ListClients(ctx context.Context) ([]models.Client, error) {
	raw, err := s.api.Get(ctx, "/api/clientes")
	if err != nil {
		s.log.Warn("client list fetch failed", "error", err.Error())
		return []models.Client{}, err
	}
	return normalize.ClientList(raw), nil
}

func (s *Service) GetClient(ctx context.Context, id string) (models.Client, error) {
	raw, err := s.api.Get(ctx, "/api/clientes/"+id)
	if err != nil {
		return models.Client{}, err
	}
	return normalize.ClientOne(raw), nil
}

func (s *Service) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	raw, err := s.api.Post(ctx, "/api/clientes", normalize.ClientPayload(client))
	if err != nil {
		s.log.Error("client create failed", "name", client.Name, "error", err.Error())
		return models.Client{}, err
	}
	created := normalize.ClientOne(raw)
	s.log.Info("client created", "client_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) UpdateClient(ctx context.Context, id string, client models.Client) (models.Client, error) {
	raw, err := s.api.Put(ctx, "/api/clientes/"+id, normalize.ClientPayload(client))
	if err != nil {
		s.log.Error("client update failed", "client_id", id, "error", err.Error())
		return models.Client{}, err
	}
	return normalize.ClientOne(raw), nil
}

func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.api.Delete(ctx, "/api/clientes/"+id); err != nil {
		s.log.Error("client delete failed", "client_id", id, "error", err.Error())
		return err
	}
	s.log.Info("client deleted", "client_id", id)
	return nil
}
