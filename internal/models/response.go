package models

// HealthStatusHealthy is the only status the health endpoint reports
const HealthStatusHealthy = "healthy"

// HealthMessage is the fixed message returned by the health endpoint
const HealthMessage = "Hello World Web Application is running"

// HealthResponse represents the response structure for the health check endpoint
type HealthResponse struct {
	Status     string  `json:"status" example:"healthy"`
	Message    string  `json:"message" example:"Hello World Web Application is running"`
	Timestamp  float64 `json:"timestamp" example:"1731249000.123"`
	AppName    string  `json:"app_name" example:"Hello World Web App"`
	AppVersion string  `json:"app_version" example:"0.1.0"`
}

// IsHealthy reports whether the response carries the healthy status
func (r HealthResponse) IsHealthy() bool {
	return r.Status == HealthStatusHealthy
}
