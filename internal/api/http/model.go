package http

// == health ==
type HealthResponse struct {
	UpstreamConfigured bool `json:"upstreamConfigured"`
}
