package normalize

import (
	"encoding/json"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

var routerKeys = struct {
	id, name, ip, port, username, password, location, status, lastSeen []string
}{
	id:       []string{"_id", "id"},
	name:     []string{"name", "nombre"},
	ip:       []string{"ip", "direccionIp"},
	port:     []string{"port", "puerto"},
	username: []string{"username", "usuario"},
	password: []string{"password", "contrasena"},
	location: []string{"location", "ubicacion"},
	status:   []string{"status", "estado"},
	lastSeen: []string{"lastSeen", "ultimaConexion"},
}

func Router(rec Record) models.Router {
	status := rec.str(routerKeys.status...)
	if status == "" {
		status = string(models.RouterOffline)
	}

	return models.Router{
		ID:       rec.str(routerKeys.id...),
		Name:     rec.str(routerKeys.name...),
		IP:       rec.str(routerKeys.ip...),
		Port:     rec.intVal(routerKeys.port...),
		Username: rec.str(routerKeys.username...),
		Password: rec.str(routerKeys.password...),
		Location: rec.str(routerKeys.location...),
		Status:   models.RouterStatus(status),
		LastSeen: rec.date(routerKeys.lastSeen...),
	}
}

func RouterList(raw json.RawMessage) []models.Router {
	records := Records(raw, "routers", "servers", "servidores")
	out := make([]models.Router, 0, len(records))
	for _, rec := range records {
		out = append(out, Router(rec))
	}
	return out
}

func RouterOne(raw json.RawMessage) models.Router {
	records := Records(raw, "routers", "servers", "servidores")
	if len(records) == 0 {
		return Router(Record{})
	}
	return Router(records[0])
}
