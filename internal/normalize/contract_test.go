package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

var (
	lookupClients = []models.Client{
		{ID: "k1", Name: "Cliente Uno", Status: models.ClientActive},
		{ID: "k2", Name: "Cliente Dos", Status: models.ClientActive},
	}
	lookupPlans = []models.Plan{
		{ID: "p1", Name: "Básico 10M", DownloadSpeed: 10, UploadSpeed: 2, Price: 25},
	}
	lookupRouters = []models.Router{
		{ID: "r1", Name: "RB-Centro", IP: "10.0.0.1", Port: 8728, Status: models.RouterOnline},
	}
)

func TestContract_ForeignKeyCrossReference(t *testing.T) {
	rec := Record{
		"_id":      "c1",
		"clientId": "k1",
		"planId":   "p1",
		"routerId": "r1",
	}

	c := Contract(rec, lookupClients, lookupPlans, lookupRouters)

	require.NotNil(t, c.Client)
	assert.Equal(t, lookupClients[0], *c.Client)
	require.NotNil(t, c.Plan)
	assert.Equal(t, lookupPlans[0], *c.Plan)
	require.NotNil(t, c.Router)
	assert.Equal(t, lookupRouters[0], *c.Router)
}

func TestContract_NoMatchFallsBackToEmbeddedObject(t *testing.T) {
	rec := Record{
		"_id":      "c1",
		"clientId": "unknown",
		"cliente":  map[string]interface{}{"_id": "unknown", "nombre": "Embebido"},
	}

	c := Contract(rec, lookupClients, lookupPlans, lookupRouters)

	require.NotNil(t, c.Client)
	assert.Equal(t, "Embebido", c.Client.Name)
}

func TestContract_NoMatchNoEmbeddedLeavesNestedAbsent(t *testing.T) {
	rec := Record{"_id": "c1", "clientId": "unknown"}

	c := Contract(rec, lookupClients, lookupPlans, lookupRouters)

	assert.Nil(t, c.Client)
	assert.Nil(t, c.Plan)
	assert.Nil(t, c.Router)
	assert.Equal(t, "unknown", c.ClientID, "the raw foreign key survives even unresolved")
}

func TestContract_ForeignKeyFromEmbeddedObjectIdentity(t *testing.T) {
	rec := Record{
		"_id":    "c1",
		"client": map[string]interface{}{"_id": "k2", "nombre": "Cliente Dos"},
	}

	c := Contract(rec, lookupClients, lookupPlans, lookupRouters)

	assert.Equal(t, "k2", c.ClientID)
	require.NotNil(t, c.Client)
	assert.Equal(t, lookupClients[1], *c.Client, "resolved id cross-references the lookup list")
}

func TestContract_PPPoECredentialAliases(t *testing.T) {
	spanish := Record{"_id": "c1", "usuarioPPPoE": "user01", "contrasenaPPPoE": "secret"}
	english := Record{"_id": "c1", "pppoeUsername": "user01", "pppoePassword": "secret"}

	a := Contract(spanish, nil, nil, nil)
	b := Contract(english, nil, nil, nil)

	assert.Equal(t, "user01", a.PPPoEUsername)
	assert.Equal(t, "secret", a.PPPoEPassword)
	assert.Equal(t, a.PPPoEUsername, b.PPPoEUsername)
	assert.Equal(t, a.PPPoEPassword, b.PPPoEPassword)
}

func TestContract_MissingDatesDefaulting(t *testing.T) {
	before := time.Now()
	c := Contract(Record{
		"id":       "c1",
		"clientId": "k1",
		"planId":   "p1",
		"routerId": "r1",
	}, nil, nil, nil)
	after := time.Now()

	assert.False(t, c.StartDate.Before(before), "absent start date defaults to now")
	assert.False(t, c.StartDate.After(after))
	assert.Nil(t, c.EndDate, "end date must stay absent unless explicitly present")
}

func TestContract_ExplicitDatesKept(t *testing.T) {
	c := Contract(Record{
		"_id":         "c1",
		"fechaInicio": "2024-01-01T00:00:00Z",
		"fechaFin":    "2024-12-31T00:00:00Z",
	}, nil, nil, nil)

	assert.Equal(t, 2024, c.StartDate.Year())
	require.NotNil(t, c.EndDate)
	assert.Equal(t, time.December, c.EndDate.Month())
}

func TestContract_RequiredFieldDefaults(t *testing.T) {
	c := Contract(Record{}, nil, nil, nil)

	assert.Equal(t, models.ContractActive, c.Status)
	assert.Zero(t, c.MonthlyFee)
	assert.False(t, c.StartDate.IsZero())
}

func TestContract_MonthlyFeeBoundaries(t *testing.T) {
	for _, fee := range []float64{0, 999999} {
		c := Contract(Record{"_id": "c1", "monthlyFee": fee}, nil, nil, nil)
		assert.Equal(t, fee, c.MonthlyFee)
	}
}

func TestContract_CancelledStatusPreserved(t *testing.T) {
	c := Contract(Record{"_id": "c1", "estado": "cancelled"}, nil, nil, nil)
	assert.Equal(t, models.ContractCancelled, c.Status)
}

func TestContract_Idempotent(t *testing.T) {
	rec := Record{
		"_id":             "c1",
		"clientId":        "k1",
		"planId":          "p1",
		"routerId":        "r1",
		"usuarioPPPoE":    "user01",
		"contrasenaPPPoE": "secret",
		"estado":          "suspended",
		"fechaInicio":     "2024-01-01T00:00:00Z",
		"monthlyFee":      float64(25),
	}

	first := Contract(rec, lookupClients, lookupPlans, lookupRouters)

	// round-trip the canonical contract through JSON, as a re-fetch would
	payload, err := json.Marshal(first)
	require.NoError(t, err)
	var canonical Record
	require.NoError(t, json.Unmarshal(payload, &canonical))

	second := Contract(canonical, lookupClients, lookupPlans, lookupRouters)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ClientID, second.ClientID)
	assert.Equal(t, first.PlanID, second.PlanID)
	assert.Equal(t, first.RouterID, second.RouterID)
	assert.Equal(t, first.PPPoEUsername, second.PPPoEUsername)
	assert.Equal(t, first.PPPoEPassword, second.PPPoEPassword)
	assert.Equal(t, first.Status, second.Status)
	assert.True(t, first.StartDate.Equal(second.StartDate))
	assert.Equal(t, first.EndDate, second.EndDate)
	assert.Equal(t, first.MonthlyFee, second.MonthlyFee)
	assert.Equal(t, first.Client, second.Client)
	assert.Equal(t, first.Plan, second.Plan)
	assert.Equal(t, first.Router, second.Router)
}

func TestContractList_WrapperShapes(t *testing.T) {
	record := `{"_id":"c1","clientId":"k1","estado":"active"}`

	for shape, payload := range map[string]string{
		"bare array":        `[` + record + `]`,
		"data wrapper":      `{"data":[` + record + `]}`,
		"contratos wrapper": `{"contratos":[` + record + `]}`,
	} {
		got := ContractList(json.RawMessage(payload), lookupClients, nil, nil)
		require.Len(t, got, 1, "shape: %s", shape)
		assert.Equal(t, "c1", got[0].ID, "shape: %s", shape)
	}
}
