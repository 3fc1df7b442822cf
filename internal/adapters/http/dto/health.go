package dto

// Health status values reported by the probe endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// dependency to "ok" or to the reason it failed.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// NewReadinessResponse folds checker results into a response and reports
// whether every dependency is healthy.
func NewReadinessResponse(results map[string]error) (ReadinessResponse, bool) {
	resp := ReadinessResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !healthy {
		resp.Status = HealthNotReady
	}
	return resp, healthy
}
