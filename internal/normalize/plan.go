package normalize

import (
	"encoding/json"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

var planKeys = struct {
	id, name, download, upload, price, profile, description, createdAt, updatedAt []string
}{
	id:          []string{"_id", "id"},
	name:        []string{"name", "nombre"},
	download:    []string{"downloadSpeed", "velocidadBajada"},
	upload:      []string{"uploadSpeed", "velocidadSubida"},
	price:       []string{"price", "precio"},
	profile:     []string{"pppoeProfile", "perfilPppoe"},
	description: []string{"description", "descripcion"},
	createdAt:   []string{"createdAt", "fechaCreacion"},
	updatedAt:   []string{"updatedAt", "fechaActualizacion"},
}

func Plan(rec Record) models.Plan {
	return models.Plan{
		ID:            rec.str(planKeys.id...),
		Name:          rec.str(planKeys.name...),
		DownloadSpeed: rec.intVal(planKeys.download...),
		UploadSpeed:   rec.intVal(planKeys.upload...),
		Price:         rec.floatVal(planKeys.price...),
		PPPoEProfile:  rec.str(planKeys.profile...),
		Description:   rec.str(planKeys.description...),
		CreatedAt:     rec.date(planKeys.createdAt...),
		UpdatedAt:     rec.date(planKeys.updatedAt...),
	}
}

func PlanList(raw json.RawMessage) []models.Plan {
	records := Records(raw, "plans", "planes")
	out := make([]models.Plan, 0, len(records))
	for _, rec := range records {
		out = append(out, Plan(rec))
	}
	return out
}

func PlanOne(raw json.RawMessage) models.Plan {
	records := Records(raw, "plans", "planes")
	if len(records) == 0 {
		return Plan(Record{})
	}
	return Plan(records[0])
}
