package gateway

import "net/http"

// Fixed caller-facing failure messages. Nothing else about a failed relay is
// returned to the caller.
const (
	ReadFailedMessage  = "Failed to fetch from AdGuard"
	WriteFailedMessage = "Failed to post to AdGuard"
)

type ForwardModel struct {
	Method   string   // GET or POST
	SubPath  []string // segments below /control/
	RawQuery string   // GET only, forwarded verbatim
	Body     []byte   // POST only, must be JSON
}

type ForwardResult struct {
	StatusCode   int
	Body         []byte
	UpstreamPath string
}

type ErrorBody struct {
	Error string `json:"error"`
}

// FailureMessage picks the fixed message for a failed relay of method.
func FailureMessage(method string) string {
	if method == http.MethodPost {
		return WriteFailedMessage
	}
	return ReadFailedMessage
}
