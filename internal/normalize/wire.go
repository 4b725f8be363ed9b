package normalize

import (
	"time"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

// Outbound mapping. Create and update payloads must use the server's
// native field names; this is the writing half of the same translation
// boundary the normalizers implement for reads.

func ClientPayload(c models.Client) map[string]interface{} {
	payload := map[string]interface{}{
		"nombre":    c.Name,
		"ci":        c.NationalID,
		"direccion": c.Address,
		"telefono":  c.Phone,
		"email":     c.Email,
		"estado":    string(c.Status),
	}
	if c.Status == "" {
		payload["estado"] = string(models.ClientActive)
	}
	return payload
}

func PlanPayload(p models.Plan) map[string]interface{} {
	return map[string]interface{}{
		"nombre":          p.Name,
		"velocidadBajada": p.DownloadSpeed,
		"velocidadSubida": p.UploadSpeed,
		"precio":          p.Price,
		"perfilPppoe":     p.PPPoEProfile,
		"descripcion":     p.Description,
	}
}

func RouterPayload(r models.Router) map[string]interface{} {
	return map[string]interface{}{
		"nombre":     r.Name,
		"ip":         r.IP,
		"puerto":     r.Port,
		"usuario":    r.Username,
		"contrasena": r.Password,
		"ubicacion":  r.Location,
		"estado":     string(r.Status),
	}
}

func ContractPayload(in models.CreateContractInput) map[string]interface{} {
	status := in.Status
	if status == "" {
		status = string(models.ContractActive)
	}
	return map[string]interface{}{
		"clientId":    in.ClientID,
		"planId":      in.PlanID,
		"routerId":    in.RouterID,
		"fechaInicio": in.StartDate.Format(time.RFC3339),
		"estado":      status,
		"monthlyFee":  in.MonthlyFee,
	}
}
