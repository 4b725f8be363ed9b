package service

import (
	"context"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/normalize"
)

// loadLookups fetches the client, plan and router lists the contract
// normalizer cross-references against. The fetches run sequentially, and
// always before the contract fetch: normalizing contracts against
// half-populated lookup lists silently drops the nested entities. A
// failed sub-fetch degrades to an empty list so one broken resource does
// not take the whole contract view down with it.
func (s *Service) loadLookups(ctx context.Context) ([]models.Client, []models.Plan, []models.Router) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		s.log.Warn("contract lookups: proceeding without clients", "error", err.Error())
	}
	plans, err := s.ListPlans(ctx)
	if err != nil {
		s.log.Warn("contract lookups: proceeding without plans", "error", err.Error())
	}
	routers, err := s.ListRouters(ctx)
	if err != nil {
		s.log.Warn("contract lookups: proceeding without routers", "error", err.Error())
	}
	return clients, plans, routers
}

func (s *Service) ListContracts(ctx context.Context) ([]models.Contract, error) {
	clients, plans, routers := s.loadLookups(ctx)

	raw, err := s.api.Get(ctx, "/api/contratos")
	if err != nil {
		s.log.Warn("contract list fetch failed", "error", err.Error())
		return []models.Contract{}, err
	}
	return normalize.ContractList(raw, clients, plans, routers), nil
}

func (s *Service) GetContract(ctx context.Context, id string) (models.Contract, error) {
	clients, plans, routers := s.loadLookups(ctx)

	raw, err := s.api.Get(ctx, "/api/contratos/"+id)
	if err != nil {
		return models.Contract{}, err
	}
	return normalize.ContractOne(raw, clients, plans, routers), nil
}

// CreateContract posts the five required fields. The server generates the
// PPPoE credential pair and provisions the router secret; nothing is
// created locally, so a failure leaves no partial state behind.
func (s *Service) CreateContract(ctx context.Context, in models.CreateContractInput) (models.Contract, error) {
	raw, err := s.api.Post(ctx, "/api/contratos", normalize.ContractPayload(in))
	if err != nil {
		s.log.Error("contract create failed", "client_id", in.ClientID, "plan_id", in.PlanID, "error", err.Error())
		return models.Contract{}, err
	}

	clients, plans, routers := s.loadLookups(ctx)
	created := normalize.ContractOne(raw, clients, plans, routers)
	s.log.Info("contract created", "contract_id", created.ID, "client_id", created.ClientID)
	return created, nil
}

// UpdateContract passes already-wire-shaped fields through. Foreign keys
// other than the plan are immutable server-side; the plan changes through
// ChangePlan, not here.
func (s *Service) UpdateContract(ctx context.Context, id string, fields map[string]interface{}) (models.Contract, error) {
	raw, err := s.api.Put(ctx, "/api/contratos/"+id, fields)
	if err != nil {
		s.log.Error("contract update failed", "contract_id", id, "error", err.Error())
		return models.Contract{}, err
	}
	clients, plans, routers := s.loadLookups(ctx)
	return normalize.ContractOne(raw, clients, plans, routers), nil
}

func (s *Service) DeleteContract(ctx context.Context, id string) error {
	if _, err := s.api.Delete(ctx, "/api/contratos/"+id); err != nil {
		s.log.Error("contract delete failed", "contract_id", id, "error", err.Error())
		return err
	}
	s.log.Info("contract deleted", "contract_id", id)
	return nil
}

// The lifecycle commands below are fire-and-reload: the authoritative
// transition happens server-side, where it can still fail at the router
// provisioning layer after the HTTP call succeeds. No local status flip;
// callers reload the contract list after success.

func (s *Service) SuspendContract(ctx context.Context, id string) error {
	if _, err := s.api.Post(ctx, "/api/contratos/"+id+"/suspender", nil); err != nil {
		s.log.Error("contract suspend failed", "contract_id", id, "error", err.Error())
		return err
	}
	s.log.Info("contract suspended", "contract_id", id)
	return nil
}

func (s *Service) ReactivateContract(ctx context.Context, id string) error {
	if _, err := s.api.Post(ctx, "/api/contratos/"+id+"/reactivar", nil); err != nil {
		s.log.Error("contract reactivate failed", "contract_id", id, "error", err.Error())
		return err
	}
	s.log.Info("contract reactivated", "contract_id", id)
	return nil
}

func (s *Service) ChangeContractPlan(ctx context.Context, id, planID string) error {
	body := map[string]interface{}{"planId": planID}
	if _, err := s.api.Post(ctx, "/api/contratos/"+id+"/cambiar-plan", body); err != nil {
		s.log.Error("contract plan change failed", "contract_id", id, "plan_id", planID, "error", err.Error())
		return err
	}
	s.log.Info("contract plan changed", "contract_id", id, "plan_id", planID)
	return nil
}
