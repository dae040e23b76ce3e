package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"phishx/internal/env"
	perrors "phishx/internal/errors"
	"phishx/internal/metrics"
)

const (
	maxUpstreamBody = 10 << 20
	logSnippetBytes = 256
)

func NewGatewayService(cfg *env.Config, m *metrics.Registry) *GatewayService {
	timeout := env.DefaultUpstreamTimeout
	if cfg != nil && cfg.UpstreamTimeout > 0 {
		timeout = cfg.UpstreamTimeout
	}
	return &GatewayService{
		config:     cfg,
		metrics:    m,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type GatewayService struct {
	config     *env.Config
	metrics    *metrics.Registry
	httpClient *http.Client
}

// Forward relays one call to the upstream control API. Every failure is
// logged here; callers only decide how to present it.
func (s *GatewayService) Forward(ctx context.Context, forwardParameter ForwardModel) (ForwardResult, error) {
	start := time.Now()
	result, err := s.forward(ctx, forwardParameter)

	outcome := "ok"
	if err != nil {
		outcome = perrors.GetKind(err).String()
		log.Printf("[!] gateway %s /%s failed: kind=%s attrs=%v err=%v",
			forwardParameter.Method, strings.Join(forwardParameter.SubPath, "/"),
			outcome, perrors.GetAttributes(err), err)
	}
	s.metrics.ObserveRelay(forwardParameter.Method, outcome, time.Since(start))
	return result, err
}

func (s *GatewayService) forward(ctx context.Context, p ForwardModel) (ForwardResult, error) {
	// 1. configuration must be complete before any network I/O
	if err := s.config.Validate(); err != nil {
		return ForwardResult{}, err
	}
	if p.Method != http.MethodGet && p.Method != http.MethodPost {
		return ForwardResult{}, perrors.Errorf(perrors.KindValidation, "unsupported method %q", p.Method)
	}

	// 2. build upstream url
	subPath, err := JoinSubPath(p.SubPath)
	if err != nil {
		return ForwardResult{}, err
	}
	base, err := s.config.UpstreamBase()
	if err != nil {
		return ForwardResult{}, err
	}
	target := *base
	target.Path = strings.TrimSuffix(base.Path, "/") + env.ControlPrefix + subPath
	target.RawPath = ""
	if p.Method == http.MethodGet {
		target.RawQuery = p.RawQuery
	}

	// 3. re-serialize request body
	var body io.Reader
	if p.Method == http.MethodPost {
		var buf bytes.Buffer
		if err := json.Compact(&buf, p.Body); err != nil {
			return ForwardResult{}, perrors.Wrap(err, perrors.KindValidation, "request body is not valid json")
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, target.String(), body)
	if err != nil {
		return ForwardResult{}, perrors.Wrap(err, perrors.KindInternal, "build upstream request")
	}
	req.Header.Set("Authorization", s.config.AuthorizationHeader())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// 4. relay
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ForwardResult{}, perrors.Attr(classifyTransportError(err), "path", target.Path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return ForwardResult{}, perrors.Attr(classifyTransportError(err), "path", target.Path)
	}

	// 5. only a 2xx JSON body is relayed
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := perrors.Errorf(perrors.KindUpstream, "upstream answered %d", resp.StatusCode)
		err = perrors.Attr(err, "path", target.Path)
		return ForwardResult{}, perrors.Attr(err, "body", snippet(raw))
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	} else if !json.Valid(raw) {
		err := perrors.New(perrors.KindDecode, "upstream body is not json")
		err = perrors.Attr(err, "path", target.Path)
		return ForwardResult{}, perrors.Attr(err, "body", snippet(raw))
	}

	return ForwardResult{
		StatusCode:   resp.StatusCode,
		Body:         raw,
		UpstreamPath: target.Path,
	}, nil
}

// JoinSubPath joins segments with "/". Dot segments are refused so a
// credentialed call cannot leave the control prefix.
func JoinSubPath(segments []string) (string, error) {
	for _, seg := range segments {
		for _, part := range strings.Split(seg, "/") {
			if part == "." || part == ".." {
				return "", perrors.Errorf(perrors.KindValidation, "dot segment in sub-path %q", strings.Join(segments, "/"))
			}
		}
	}
	return strings.Join(segments, "/"), nil
}

func classifyTransportError(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return perrors.Wrap(err, perrors.KindTimeout, "upstream timed out")
	}
	return perrors.Wrap(err, perrors.KindUnavailable, "upstream unreachable")
}

func snippet(b []byte) string {
	if len(b) > logSnippetBytes {
		return string(b[:logSnippetBytes]) + "..."
	}
	return string(b)
}
