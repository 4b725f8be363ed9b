package normalize

import (
	"encoding/json"
	"time"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

var alertKeys = struct {
	id, typ, message, routerName, timestamp []string
}{
	id:         []string{"_id", "id"},
	typ:        []string{"type", "tipo"},
	message:    []string{"message", "mensaje"},
	routerName: []string{"routerName", "servidor"},
	timestamp:  []string{"timestamp", "fecha"},
}

func Alert(rec Record) models.Alert {
	typ := rec.str(alertKeys.typ...)
	if typ == "" {
		typ = "info"
	}

	var ts time.Time
	if parsed := rec.date(alertKeys.timestamp...); parsed != nil {
		ts = *parsed
	} else {
		ts = time.Now()
	}

	read, _ := rec["read"].(bool)

	return models.Alert{
		ID:         rec.str(alertKeys.id...),
		Type:       typ,
		Message:    rec.str(alertKeys.message...),
		RouterName: rec.str(alertKeys.routerName...),
		Timestamp:  ts,
		Read:       read,
	}
}

func AlertList(raw json.RawMessage) []models.Alert {
	records := Records(raw, "alerts", "alertas")
	out := make([]models.Alert, 0, len(records))
	for _, rec := range records {
		out = append(out, Alert(rec))
	}
	return out
}

// DashboardStats tolerates both the flat counter shape and the older
// Spanish indicator names.
func DashboardStats(raw json.RawMessage) models.DashboardStats {
	records := Records(raw, "stats", "indicadores")
	rec := Record{}
	if len(records) > 0 {
		rec = records[0]
	} else {
		// stats payloads carry no identity key, so Records may have
		// rejected a perfectly good bare object
		var obj map[string]interface{}
		if err := json.Unmarshal(raw, &obj); err == nil {
			if inner, ok := obj["data"].(map[string]interface{}); ok {
				rec = inner
			} else {
				rec = obj
			}
		}
	}

	return models.DashboardStats{
		TotalClients:     rec.intVal("totalClients", "totalClientes"),
		ActiveClients:    rec.intVal("activeClients", "clientesActivos"),
		SuspendedClients: rec.intVal("suspendedClients", "clientesSuspendidos"),
		InactiveClients:  rec.intVal("inactiveClients", "clientesInactivos"),
		TotalRouters:     rec.intVal("totalRouters"),
		OnlineRouters:    rec.intVal("onlineRouters"),
		OfflineRouters:   rec.intVal("offlineRouters"),
		TotalContracts:   rec.intVal("totalContracts", "totalContratos"),
		ActiveContracts:  rec.intVal("activeContracts", "contratosActivos"),
		MonthlyRevenue:   rec.floatVal("monthlyRevenue", "ingresosMensuales"),
	}
}

func ActiveConnection(rec Record) models.ActiveConnection {
	return models.ActiveConnection{
		ID:            rec.str("_id", "id"),
		PPPoEUsername: rec.str("pppoeUsername", "usuarioPPPoE"),
		ClientName:    rec.str("clientName", "cliente"),
		IPAddress:     rec.str("ipAddress", "ip"),
		RxBytes:       int64(rec.floatVal("rxBytes")),
		TxBytes:       int64(rec.floatVal("txBytes")),
		ConnectedTime: rec.str("connectedTime", "tiempoConectado"),
		RouterName:    rec.str("routerName", "servidor"),
	}
}

func ActiveConnectionList(raw json.RawMessage) []models.ActiveConnection {
	records := Records(raw, "connections", "conexiones")
	out := make([]models.ActiveConnection, 0, len(records))
	for _, rec := range records {
		out = append(out, ActiveConnection(rec))
	}
	return out
}

func RouterStats(raw json.RawMessage) models.RouterStats {
	records := Records(raw, "stats")
	rec := Record{}
	if len(records) > 0 {
		rec = records[0]
	} else {
		var obj map[string]interface{}
		if err := json.Unmarshal(raw, &obj); err == nil {
			if inner, ok := obj["data"].(map[string]interface{}); ok {
				rec = inner
			} else {
				rec = obj
			}
		}
	}

	var ts time.Time
	if parsed := rec.date("timestamp"); parsed != nil {
		ts = *parsed
	} else {
		ts = time.Now()
	}

	return models.RouterStats{
		RouterID:      rec.str("routerId"),
		CPUUsage:      rec.floatVal("cpuUsage"),
		MemoryUsage:   rec.floatVal("memoryUsage"),
		Uptime:        rec.str("uptime"),
		ActiveClients: rec.intVal("activeClients"),
		TxBytes:       int64(rec.floatVal("txBytes")),
		RxBytes:       int64(rec.floatVal("rxBytes")),
		Timestamp:     ts,
	}
}
