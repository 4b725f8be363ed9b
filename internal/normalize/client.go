package normalize

import (
	"encoding/json"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

// Wire aliases for client records, in fallback order. The identity check
// must try _id before id: Mongo-backed endpoints send both, with id
// holding a stale value.
var clientKeys = struct {
	id, name, nationalID, address, phone, email, status, registeredAt []string
}{
	id:           []string{"_id", "id"},
	name:         []string{"name", "nombre"},
	nationalID:   []string{"ci", "nationalId"},
	address:      []string{"direccion", "address"},
	phone:        []string{"telefono", "phone"},
	email:        []string{"email"},
	status:       []string{"estado", "status"},
	registeredAt: []string{"fechaRegistro", "registeredAt", "createdAt"},
}

// Client shapes one raw record into the canonical client. Missing fields
// get explicit defaults; the function never fails.
func Client(rec Record) models.Client {
	status := rec.str(clientKeys.status...)
	if status == "" {
		status = string(models.ClientActive)
	}

	return models.Client{
		ID:           rec.str(clientKeys.id...),
		Name:         rec.str(clientKeys.name...),
		NationalID:   rec.str(clientKeys.nationalID...),
		Address:      rec.str(clientKeys.address...),
		Phone:        rec.str(clientKeys.phone...),
		Email:        rec.str(clientKeys.email...),
		Status:       models.ClientStatus(status),
		RegisteredAt: rec.date(clientKeys.registeredAt...),
	}
}

// ClientList accepts any of the wire list shapes and returns zero or more
// canonical clients. A payload with no array anywhere yields an empty
// list, not an error.
func ClientList(raw json.RawMessage) []models.Client {
	records := Records(raw, "clients", "clientes")
	out := make([]models.Client, 0, len(records))
	for _, rec := range records {
		out = append(out, Client(rec))
	}
	return out
}

// ClientOne normalizes a single-entity response. Get, create and update
// responses run through the same shape handling as lists; some endpoints
// wrap even a single client under data.
func ClientOne(raw json.RawMessage) models.Client {
	records := Records(raw, "clients", "clientes")
	if len(records) == 0 {
		return Client(Record{})
	}
	return Client(records[0])
}
