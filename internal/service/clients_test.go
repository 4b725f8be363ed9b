package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/upstream"
)

func serviceAgainst(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logger.NewWithOutput(io.Discard)
	return New(upstream.New(srv.URL, log, nil), log)
}

func TestListClients_NormalizesWireShape(t *testing.T) {
	svc := serviceAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"_id":"k1","nombre":"Ana","estado":"activo"},{"id":"k2","name":"Luis"}]}`))
	})

	clients, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, "Ana", clients[0].Name)
	assert.Equal(t, "k2", clients[1].ID)
	assert.Equal(t, models.ClientActive, clients[1].Status, "missing status defaults to active")
}

func TestListClients_DegradesToEmptyOnFailure(t *testing.T) {
	svc := serviceAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	clients, err := svc.ListClients(context.Background())
	require.Error(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestCreateClient_SendsNativeFieldNames(t *testing.T) {
	var sent map[string]interface{}
	svc := serviceAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"k9","nombre":"Nueva","estado":"activo"}`))
	})

	created, err := svc.CreateClient(context.Background(), models.Client{
		Name:       "Nueva",
		NationalID: "998877",
		Address:    "Calle 2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Nueva", sent["nombre"], "wire payloads use the server's field names")
	assert.Equal(t, "998877", sent["ci"])
	assert.Equal(t, "Calle 2", sent["direccion"])
	assert.Equal(t, "k9", created.ID)
}

func TestDeleteClient_PropagatesTransportError(t *testing.T) {
	svc := serviceAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"mensaje":"Cliente tiene contratos activos"}`))
	})

	err := svc.DeleteClient(context.Background(), "k1")
	tErr, ok := upstream.IsTransport(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, tErr.StatusCode)
	assert.Equal(t, "Cliente tiene contratos activos", tErr.Message)
}
