package models

import "time"

// Canonical entity shapes. The upstream API is inconsistent about field
// names (nombre/name, estado/status, _id/id); nothing outside
// internal/normalize is allowed to know that. These structs are the only
// shapes the rest of the codebase sees.

type ClientStatus string

const (
	ClientActive    ClientStatus = "activo"
	ClientInactive  ClientStatus = "inactivo"
	ClientSuspended ClientStatus = "suspendido"
)

type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	NationalID   string       `json:"nationalId"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Status       ClientStatus `json:"status"`
	RegisteredAt *time.Time   `json:"registeredAt,omitempty"`
}

type Plan struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	DownloadSpeed int        `json:"downloadSpeed"` // Mbps
	UploadSpeed   int        `json:"uploadSpeed"`   // Mbps
	Price         float64    `json:"price"`
	PPPoEProfile  string     `json:"pppoeProfile"`
	Description   string     `json:"description,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type RouterStatus string

const (
	RouterOnline  RouterStatus = "online"
	RouterOffline RouterStatus = "offline"
	RouterError   RouterStatus = "error"
)

type Router struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	IP       string       `json:"ip"`
	Port     int          `json:"port"`
	Username string       `json:"username"`
	Password string       `json:"password"`
	Location string       `json:"location"`
	Status   RouterStatus `json:"status"`
	LastSeen *time.Time   `json:"lastSeen,omitempty"`
}

type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractSuspended ContractStatus = "suspended"
	ContractCancelled ContractStatus = "cancelled"
)

// Contract binds one client, one plan and one router. The PPPoE credential
// pair is generated server-side at creation and never regenerated.
// MonthlyFee is stored independently of the plan price so historical
// billing survives later plan price changes. The nested Client/Plan/Router
// are denormalized display copies, never authoritative.
type Contract struct {
	ID            string         `json:"id"`
	ClientID      string         `json:"clientId"`
	PlanID        string         `json:"planId"`
	RouterID      string         `json:"routerId"`
	PPPoEUsername string         `json:"pppoeUsername"`
	PPPoEPassword string         `json:"pppoePassword"`
	Status        ContractStatus `json:"status"`
	StartDate     time.Time      `json:"startDate"`
	EndDate       *time.Time     `json:"endDate,omitempty"`
	MonthlyFee    float64        `json:"monthlyFee"`
	CreatedAt     *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`

	Client *Client `json:"client,omitempty"`
	Plan   *Plan   `json:"plan,omitempty"`
	Router *Router `json:"router,omitempty"`
}

type CreateContractInput struct {
	ClientID   string    `json:"clientId"`
	PlanID     string    `json:"planId"`
	RouterID   string    `json:"routerId"`
	StartDate  time.Time `json:"startDate"`
	Status     string    `json:"status"`
	MonthlyFee float64   `json:"monthlyFee"`
}

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
	RoleSupport    UserRole = "support"
)

type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Role     UserRole `json:"role"`
}

type DashboardStats struct {
	TotalClients     int     `json:"totalClients"`
	ActiveClients    int     `json:"activeClients"`
	SuspendedClients int     `json:"suspendedClients"`
	InactiveClients  int     `json:"inactiveClients"`
	TotalRouters     int     `json:"totalRouters"`
	OnlineRouters    int     `json:"onlineRouters"`
	OfflineRouters   int     `json:"offlineRouters"`
	TotalContracts   int     `json:"totalContracts"`
	ActiveContracts  int     `json:"activeContracts"`
	MonthlyRevenue   float64 `json:"monthlyRevenue"`
}

type Alert struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // error, warning, info
	Message    string    `json:"message"`
	RouterName string    `json:"routerName,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// ActiveConnection is one PPPoE session as reported by a router.
type ActiveConnection struct {
	ID            string `json:"id"`
	PPPoEUsername string `json:"pppoeUsername"`
	ClientName    string `json:"clientName"`
	IPAddress     string `json:"ipAddress"`
	RxBytes       int64  `json:"rxBytes"`
	TxBytes       int64  `json:"txBytes"`
	ConnectedTime string `json:"connectedTime"`
	RouterName    string `json:"routerName"`
}

type RouterStats struct {
	RouterID      string    `json:"routerId"`
	CPUUsage      float64   `json:"cpuUsage"`
	MemoryUsage   float64   `json:"memoryUsage"`
	Uptime        string    `json:"uptime"`
	ActiveClients int       `json:"activeClients"`
	TxBytes       int64     `json:"txBytes"`
	RxBytes       int64     `json:"rxBytes"`
	Timestamp     time.Time `json:"timestamp"`
}
