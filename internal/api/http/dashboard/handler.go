package dashboard

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"phishx/internal/api/http/logger"
	apimodel "phishx/internal/api/http/utils"
	"phishx/internal/core/blockedsvc"
	perrors "phishx/internal/errors"
	"phishx/internal/store/session"
)

func NewRequestHandler(sessions session.SessionHandler) *RequestHandler {
	return &RequestHandler{
		sessionHandler: sessions,
	}
}

type RequestHandler struct {
	sessionHandler session.SessionHandler
}

// CreateSession godoc
// @Summary Open a dashboard session
// @Description creates the per-browser view state; nothing is fetched until the dashboard is read
// @Tags sessions
// @Produce json
// @Success 201 {object} apimodel.ApiResponse{data=session.SessionInfo}
// @Router /v1/sessions [post]
func (h *RequestHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	info := h.sessionHandler.Create()
	logger.SetTarget(r.Context(), logger.Target{SessionId: info.Id})
	apimodel.RespondSuccess(w, http.StatusCreated, "session created", info)
}

// DeleteSession godoc
// @Summary Close a dashboard session
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} apimodel.ApiResponse
// @Failure 404 {object} apimodel.ApiResponse
// @Router /v1/sessions/{sessionId} [delete]
func (h *RequestHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionId := chi.URLParam(r, "sessionId")
	logger.SetTarget(r.Context(), logger.Target{SessionId: sessionId})

	if err := h.sessionHandler.Delete(sessionId); err != nil {
		h.respondSessionError(w, err)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "session closed", nil)
}

// GetDashboard godoc
// @Summary Get the dashboard snapshot
// @Description returns the held snapshot, fetching it from the appliance on first access
// @Tags dashboard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} apimodel.ApiResponse{data=dashboard.Snapshot}
// @Failure 404 {object} apimodel.ApiResponse
// @Router /v1/sessions/{sessionId}/dashboard [get]
func (h *RequestHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "", sess.View.Snapshot(r.Context()))
}

// RefreshDashboard godoc
// @Summary Re-fetch the dashboard
// @Description runs the six appliance reads again; failed sections are reported in the snapshot
// @Tags dashboard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} apimodel.ApiResponse{data=dashboard.Snapshot}
// @Failure 404 {object} apimodel.ApiResponse
// @Router /v1/sessions/{sessionId}/dashboard/refresh [post]
func (h *RequestHandler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	snap := sess.View.Refresh(r.Context())
	if snap.Error != "" {
		logger.PutExtra(r.Context(), "fetch_errors", len(snap.FetchErrors))
	}
	apimodel.RespondSuccess(w, http.StatusOK, "", snap)
}

// ToggleProtection godoc
// @Summary Enable or disable protection
// @Tags dashboard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body ToggleProtectionRequest true "desired state"
// @Success 200 {object} apimodel.ApiResponse{data=dashboard.Snapshot}
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 502 {object} apimodel.ApiResponse{data=dashboard.Snapshot}
// @Router /v1/sessions/{sessionId}/protection [post]
func (h *RequestHandler) ToggleProtection(w http.ResponseWriter, r *http.Request) {
	var req ToggleProtectionRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.Enabled == nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "enabled is required", nil)
		return
	}
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if *req.Enabled {
		logger.SetAction(r.Context(), "protection.enable")
	} else {
		logger.SetAction(r.Context(), "protection.disable")
	}
	logger.SetTarget(r.Context(), logger.Target{Enabled: req.Enabled})

	snap, err := sess.View.ToggleProtection(r.Context(), *req.Enabled)
	if err != nil {
		logger.SetReason(r.Context(), err.Error())
		apimodel.RespondFail(w, http.StatusBadGateway, snap.ActionError, snap)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "protection updated", snap)
}

// AddBlockedDomain godoc
// @Summary Block a domain
// @Description appends ||domain^$important to the appliance's user rules
// @Tags dashboard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body AddBlockedDomainRequest true "domain"
// @Success 200 {object} apimodel.ApiResponse{data=dashboard.Snapshot}
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 502 {object} apimodel.ApiResponse{data=dashboard.Snapshot}
// @Router /v1/sessions/{sessionId}/blocklist [post]
func (h *RequestHandler) AddBlockedDomain(w http.ResponseWriter, r *http.Request) {
	var req AddBlockedDomainRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.Domain == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "domain is required", nil)
		return
	}
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	logger.SetTarget(r.Context(), logger.Target{Domain: req.Domain})

	snap, err := sess.View.AddBlockedDomain(r.Context(), req.Domain)
	if err != nil {
		logger.SetReason(r.Context(), err.Error())
		apimodel.RespondFail(w, http.StatusBadGateway, snap.ActionError, snap)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "domain blocked", snap)
}

// GetBlockedServices godoc
// @Summary Blocked-service catalog and working set
// @Description loads from the appliance on first access or with reload=true
// @Tags blocked-services
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param reload query bool false "discard the working set and reload"
// @Success 200 {object} apimodel.ApiResponse{data=blockedsvc.State}
// @Failure 502 {object} apimodel.ApiResponse{data=blockedsvc.State}
// @Router /v1/sessions/{sessionId}/blocked-services [get]
func (h *RequestHandler) GetBlockedServices(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	state := sess.Editor.State()
	if !state.Loaded || r.URL.Query().Get("reload") == "true" {
		var err error
		state, err = sess.Editor.Load(r.Context())
		if err != nil {
			logger.SetReason(r.Context(), err.Error())
			apimodel.RespondFail(w, http.StatusBadGateway, blockedsvc.LoadFailedMessage, state)
			return
		}
	}
	apimodel.RespondSuccess(w, http.StatusOK, "", state)
}

// ToggleBlockedService godoc
// @Summary Toggle a service in the working set
// @Description local only; nothing is sent to the appliance until save
// @Tags blocked-services
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param serviceId path string true "Service ID"
// @Success 200 {object} apimodel.ApiResponse{data=blockedsvc.State}
// @Failure 409 {object} apimodel.ApiResponse{data=blockedsvc.State}
// @Router /v1/sessions/{sessionId}/blocked-services/{serviceId}/toggle [post]
func (h *RequestHandler) ToggleBlockedService(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	serviceId := chi.URLParam(r, "serviceId")
	logger.SetTarget(r.Context(), logger.Target{ServiceId: serviceId})

	state, err := sess.Editor.Toggle(serviceId)
	if err != nil {
		logger.SetReason(r.Context(), err.Error())
		apimodel.RespondFail(w, apimodel.StatusForKind(perrors.GetKind(err)), err.Error(), state)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "", state)
}

// SaveBlockedServices godoc
// @Summary Submit the working set
// @Description replaces the appliance's enabled list with the whole working set
// @Tags blocked-services
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} apimodel.ApiResponse{data=blockedsvc.State}
// @Failure 409 {object} apimodel.ApiResponse{data=blockedsvc.State}
// @Failure 502 {object} apimodel.ApiResponse{data=blockedsvc.State}
// @Router /v1/sessions/{sessionId}/blocked-services/save [post]
func (h *RequestHandler) SaveBlockedServices(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	state, err := sess.Editor.Save(r.Context())
	if err != nil {
		logger.SetReason(r.Context(), err.Error())
		if perrors.GetKind(err) == perrors.KindConflict {
			apimodel.RespondFail(w, http.StatusConflict, err.Error(), state)
			return
		}
		apimodel.RespondFail(w, http.StatusBadGateway, blockedsvc.SaveFailedMessage, state)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "blocked services saved", state)
}

func (h *RequestHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sessionId := chi.URLParam(r, "sessionId")
	logger.SetTarget(r.Context(), logger.Target{SessionId: sessionId})

	sess, err := h.sessionHandler.Get(sessionId)
	if err != nil {
		h.respondSessionError(w, err)
		return nil, false
	}
	return sess, true
}

func (h *RequestHandler) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		apimodel.RespondFail(w, http.StatusNotFound, "session not found", nil)
		return
	}
	apimodel.RespondFail(w, apimodel.StatusForKind(perrors.GetKind(err)), err.Error(), nil)
}
