package env

import "time"

const (
	UpstreamURLVar      = "ADGUARD_URL"
	UpstreamUsernameVar = "ADGUARD_USERNAME"
	UpstreamPasswordVar = "ADGUARD_PASSWORD"

	ListenAddrVar      = "PHISHX_LISTEN_ADDR"
	UpstreamTimeoutVar = "PHISHX_UPSTREAM_TIMEOUT"
	SessionTTLVar      = "PHISHX_SESSION_TTL"
	TLSCertVar         = "PHISHX_TLS_CERT"
	TLSKeyVar          = "PHISHX_TLS_KEY"
)

const (
	DefaultListenAddr      = ":3000"
	DefaultUpstreamTimeout = 30 * time.Second
	DefaultSessionTTL      = 30 * time.Minute

	// ControlPrefix is the path every upstream call lives under.
	ControlPrefix = "/control/"
)
