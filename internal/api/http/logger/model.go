package logger

type Logger interface {
	Write(event Event)
}

type Event struct {
	TS            string `json:"ts"`
	EventId       string `json:"event_id"`
	CorrelationId string `json:"correlation_id,omitempty"`
	Severity      string `json:"severity"`

	Actor Actor `json:"actor"`

	Action string `json:"action,omitempty"`
	Target Target `json:"target,omitempty"`

	Request Request `json:"request"`
	Result  Result  `json:"result"`

	Runtime Runtime `json:"runtime"`

	Extra map[string]any `json:"extra,omitempty"`
}

type Actor struct {
	PeerIp    string `json:"peer_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

type Target struct {
	// proxy
	UpstreamPath string `json:"upstream_path,omitempty"`

	// session
	SessionId string `json:"session_id,omitempty"`

	// actions
	ServiceId string `json:"service_id,omitempty"`
	Domain    string `json:"domain,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Host   string `json:"host,omitempty"`
}

type Result struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Reason    string `json:"reason,omitempty"`
	Bytes     int    `json:"bytes,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type Runtime struct {
	Component string `json:"component,omitempty"`
	Node      string `json:"node,omitempty"`
}

type ctxKey int

var Severity = map[int]string{
	0: "information",
	1: "low",
	2: "medium",
	3: "high",
	4: "critical",
}

const (
	SEV_INFO     = 0
	SEV_LOW      = 1
	SEV_MEDIUM   = 2
	SEV_HIGH     = 3
	SEV_CRITICAL = 4
)

type Rule struct {
	Method   string
	Pattern  string
	Action   string
	Severity int
}

var rules = []Rule{
	// proxy
	{"GET", "/api/adguard/*", "proxy.read", SEV_INFO},
	{"POST", "/api/adguard/*", "proxy.write", SEV_MEDIUM},

	// session
	{"POST", "/v1/sessions", "session.open", SEV_INFO},
	{"DELETE", "/v1/sessions/{sessionId}", "session.close", SEV_INFO},

	// dashboard
	{"GET", "/v1/sessions/{sessionId}/dashboard", "dashboard.view", SEV_INFO},
	{"POST", "/v1/sessions/{sessionId}/dashboard/refresh", "dashboard.refresh", SEV_INFO},
	{"POST", "/v1/sessions/{sessionId}/protection", "protection.toggle", SEV_HIGH},
	{"POST", "/v1/sessions/{sessionId}/blocklist", "blocklist.add", SEV_HIGH},

	// blocked services
	{"GET", "/v1/sessions/{sessionId}/blocked-services", "blockedsvc.list", SEV_INFO},
	{"POST", "/v1/sessions/{sessionId}/blocked-services/{serviceId}/toggle", "blockedsvc.toggle", SEV_LOW},
	{"POST", "/v1/sessions/{sessionId}/blocked-services/save", "blockedsvc.save", SEV_HIGH},

	// websocket
	{"GET", "/v1/sessions/{sessionId}/stream", "ws.stream", SEV_LOW},

	// ops
	{"GET", "/healthz", "health", SEV_INFO},
	{"GET", "/metrics", "metrics.scrape", SEV_INFO},
	{"GET", "/swagger/*", "docs.view", SEV_INFO},
}

// severities for actions set by handlers at runtime
var actionSeverity = map[string]int{
	"protection.enable":  SEV_MEDIUM,
	"protection.disable": SEV_CRITICAL,
}
