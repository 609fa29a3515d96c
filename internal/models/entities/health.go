package entities

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Mode     string                   `json:"mode"`
	Services map[string]ServiceStatus `json:"services"`
}
