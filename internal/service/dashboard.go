package service

import (
	"context"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/normalize"
)

func (s *Service) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	raw, err := s.api.Get(ctx, "/api/dashboard/stats")
	if err != nil {
		s.log.Warn("dashboard stats fetch failed", "error", err.Error())
		return models.DashboardStats{}, err
	}
	return normalize.DashboardStats(raw), nil
}

func (s *Service) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	raw, err := s.api.Get(ctx, "/api/alerts")
	if err != nil {
		s.log.Warn("alert list fetch failed", "error", err.Error())
		return []models.Alert{}, err
	}
	return normalize.AlertList(raw), nil
}

func (s *Service) CreateAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	body := map[string]interface{}{
		"tipo":     alert.Type,
		"mensaje":  alert.Message,
		"servidor": alert.RouterName,
	}
	raw, err := s.api.Post(ctx, "/api/alerts", body)
	if err != nil {
		s.log.Error("alert create failed", "type", alert.Type, "error", err.Error())
		return models.Alert{}, err
	}

	records := normalize.Records(raw, "alerts", "alertas")
	if len(records) == 0 {
		return alert, nil
	}
	return normalize.Alert(records[0]), nil
}

func (s *Service) MarkAlertRead(ctx context.Context, id string) error {
	if _, err := s.api.Put(ctx, "/api/alerts/"+id+"/read", nil); err != nil {
		s.log.Error("alert read-mark failed", "alert_id", id, "error", err.Error())
		return err
	}
	return nil
}

func (s *Service) ListActiveConnections(ctx context.Context) ([]models.ActiveConnection, error) {
	raw, err := s.api.Get(ctx, "/api/monitor/conexiones")
	if err != nil {
		s.log.Warn("active connections fetch failed", "error", err.Error())
		return []models.ActiveConnection{}, err
	}
	return normalize.ActiveConnectionList(raw), nil
}
