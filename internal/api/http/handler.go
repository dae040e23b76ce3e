package http

import (
	"net/http"

	apimodel "phishx/internal/api/http/utils"
	"phishx/internal/env"
)

func NewRequestHandler(cfg *env.Config) *RequestHandler {
	return &RequestHandler{
		config: cfg,
	}
}

type RequestHandler struct {
	config *env.Config
}

// Healthz godoc
// @Summary Liveness
// @Description always 200 while the process serves; reports whether the appliance connection is configured
// @Tags ops
// @Produce json
// @Success 200 {object} apimodel.ApiResponse{data=HealthResponse}
// @Router /healthz [get]
func (h *RequestHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	apimodel.RespondSuccess(w, http.StatusOK, "ok", HealthResponse{
		UpstreamConfigured: h.config.Validate() == nil,
	})
}
