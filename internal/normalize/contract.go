package normalize

import (
	"encoding/json"
	"time"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

var contractKeys = struct {
	id, clientID, planID, routerID         []string
	clientObj, planObj, routerObj          []string
	pppoeUser, pppoePass                   []string
	status, startDate, endDate, monthlyFee []string
	createdAt, updatedAt                   []string
}{
	id:         []string{"_id", "id"},
	clientID:   []string{"clientId", "clienteId"},
	planID:     []string{"planId"},
	routerID:   []string{"routerId"},
	clientObj:  []string{"client", "cliente"},
	planObj:    []string{"plan"},
	routerObj:  []string{"router", "servidor"},
	pppoeUser:  []string{"pppoeUsername", "usuarioPPPoE"},
	pppoePass:  []string{"pppoePassword", "contrasenaPPPoE"},
	status:     []string{"status", "estado"},
	startDate:  []string{"startDate", "fechaInicio"},
	endDate:    []string{"endDate", "fechaFin"},
	monthlyFee: []string{"monthlyFee", "tarifaMensual"},
	createdAt:  []string{"createdAt"},
	updatedAt:  []string{"updatedAt"},
}

// Contract shapes one raw record into the canonical contract and attaches
// denormalized client/plan/router copies for display.
//
// Each foreign key resolves from a direct *Id field or from the identity
// of an embedded object. The resolved key is then cross-referenced
// against the supplied lookup lists; when nothing matches, whatever
// embedded object the server sent is used, and failing that the nested
// field stays absent. Empty cross-referencing is never an error.
//
// Every required field gets an explicit default: status "active",
// monthlyFee 0, and a start date of now when the server omitted it
// entirely (a contract with no start date is taken to start immediately).
// End date and the nested entities are the only genuinely optional
// fields. The function is idempotent over its own output.
func Contract(rec Record, clients []models.Client, plans []models.Plan, routers []models.Router) models.Contract {
	status := rec.str(contractKeys.status...)
	if status == "" {
		status = string(models.ContractActive)
	}

	var startDate time.Time
	if parsed := rec.date(contractKeys.startDate...); parsed != nil {
		startDate = *parsed
	} else {
		startDate = time.Now()
	}

	c := models.Contract{
		ID:            rec.str(contractKeys.id...),
		ClientID:      rec.refID(contractKeys.clientID, contractKeys.clientObj),
		PlanID:        rec.refID(contractKeys.planID, contractKeys.planObj),
		RouterID:      rec.refID(contractKeys.routerID, contractKeys.routerObj),
		PPPoEUsername: rec.str(contractKeys.pppoeUser...),
		PPPoEPassword: rec.str(contractKeys.pppoePass...),
		Status:        models.ContractStatus(status),
		StartDate:     startDate,
		EndDate:       rec.date(contractKeys.endDate...),
		MonthlyFee:    rec.floatVal(contractKeys.monthlyFee...),
		CreatedAt:     rec.date(contractKeys.createdAt...),
		UpdatedAt:     rec.date(contractKeys.updatedAt...),
	}

	c.Client = resolveClient(c.ClientID, rec, clients)
	c.Plan = resolvePlan(c.PlanID, rec, plans)
	c.Router = resolveRouter(c.RouterID, rec, routers)

	return c
}

func resolveClient(id string, rec Record, clients []models.Client) *models.Client {
	for i := range clients {
		if clients[i].ID != "" && clients[i].ID == id {
			match := clients[i]
			return &match
		}
	}
	if embedded, ok := rec.obj(contractKeys.clientObj...); ok {
		fallback := Client(embedded)
		return &fallback
	}
	return nil
}

func resolvePlan(id string, rec Record, plans []models.Plan) *models.Plan {
	for i := range plans {
		if plans[i].ID != "" && plans[i].ID == id {
			match := plans[i]
			return &match
		}
	}
	if embedded, ok := rec.obj(contractKeys.planObj...); ok {
		fallback := Plan(embedded)
		return &fallback
	}
	return nil
}

func resolveRouter(id string, rec Record, routers []models.Router) *models.Router {
	for i := range routers {
		if routers[i].ID != "" && routers[i].ID == id {
			match := routers[i]
			return &match
		}
	}
	if embedded, ok := rec.obj(contractKeys.routerObj...); ok {
		fallback := Router(embedded)
		return &fallback
	}
	return nil
}

func ContractList(raw json.RawMessage, clients []models.Client, plans []models.Plan, routers []models.Router) []models.Contract {
	records := Records(raw, "contracts", "contratos")
	out := make([]models.Contract, 0, len(records))
	for _, rec := range records {
		out = append(out, Contract(rec, clients, plans, routers))
	}
	return out
}

func ContractOne(raw json.RawMessage, clients []models.Client, plans []models.Plan, routers []models.Router) models.Contract {
	records := Records(raw, "contracts", "contratos")
	if len(records) == 0 {
		return Contract(Record{}, clients, plans, routers)
	}
	return Contract(records[0], clients, plans, routers)
}
