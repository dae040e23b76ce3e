package proxy

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"phishx/internal/api/http/logger"
	apimodel "phishx/internal/api/http/utils"
	"phishx/internal/core/gateway"
)

const maxRequestBody = 1 << 20 // 1 MiB

func NewRequestHandler(gw gateway.GatewayHandler) *RequestHandler {
	return &RequestHandler{
		gatewayHandler: gw,
	}
}

type RequestHandler struct {
	gatewayHandler gateway.GatewayHandler
}

// ForwardGet godoc
// @Summary Relay a read to the appliance
// @Description forwards GET /control/{path} with the query string unchanged and answers with the appliance's JSON body
// @Tags proxy
// @Produce json
// @Param path path string true "control sub-path, e.g. stats or filtering/status"
// @Success 200 {object} object
// @Failure 500 {object} gateway.ErrorBody
// @Router /api/adguard/{path} [get]
func (h *RequestHandler) ForwardGet(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, gateway.ForwardModel{
		Method:   http.MethodGet,
		SubPath:  subPath(r),
		RawQuery: r.URL.RawQuery,
	})
}

// ForwardPost godoc
// @Summary Relay a write to the appliance
// @Description forwards POST /control/{path} with the JSON body re-serialized
// @Tags proxy
// @Accept json
// @Produce json
// @Param path path string true "control sub-path, e.g. filtering/config"
// @Param request body object true "appliance request body"
// @Success 200 {object} object
// @Failure 500 {object} gateway.ErrorBody
// @Router /api/adguard/{path} [post]
func (h *RequestHandler) ForwardPost(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		logger.SetReason(r.Context(), "read request body: "+err.Error())
		h.fail(w, http.MethodPost)
		return
	}
	h.relay(w, r, gateway.ForwardModel{
		Method:  http.MethodPost,
		SubPath: subPath(r),
		Body:    body,
	})
}

func (h *RequestHandler) relay(w http.ResponseWriter, r *http.Request, p gateway.ForwardModel) {
	logger.SetTarget(r.Context(), logger.Target{
		UpstreamPath: "/control/" + strings.Join(p.SubPath, "/"),
	})

	result, err := h.gatewayHandler.Forward(r.Context(), p)
	if err != nil {
		logger.SetReason(r.Context(), err.Error())
		h.fail(w, p.Method)
		return
	}

	// the body is always JSON, so no-body statuses become 200
	status := result.StatusCode
	if status == 0 || status == http.StatusNoContent || status == http.StatusResetContent {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(result.Body)
}

func (h *RequestHandler) fail(w http.ResponseWriter, method string) {
	apimodel.WriteJson(w, http.StatusInternalServerError, gateway.ErrorBody{
		Error: gateway.FailureMessage(method),
	})
}

func subPath(r *http.Request) []string {
	return strings.Split(chi.URLParam(r, "*"), "/")
}
