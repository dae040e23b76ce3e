package env

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	perrors "phishx/internal/errors"
)

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is built once at process start and shared read-only.
type Config struct {
	UpstreamURL string
	Username    string
	Password    string

	ListenAddr      string
	UpstreamTimeout time.Duration
	SessionTTL      time.Duration

	TLSCert string
	TLSKey  string
}

// LoadConfig reads the process configuration through lookup (os.LookupEnv
// when nil). Missing upstream values are not an error here; see Validate.
func LoadConfig(lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := &Config{
		UpstreamURL:     strings.TrimSpace(getEnv(lookup, UpstreamURLVar, "")),
		Username:        getEnv(lookup, UpstreamUsernameVar, ""),
		Password:        getEnv(lookup, UpstreamPasswordVar, ""),
		ListenAddr:      getEnv(lookup, ListenAddrVar, DefaultListenAddr),
		UpstreamTimeout: DefaultUpstreamTimeout,
		SessionTTL:      DefaultSessionTTL,
		TLSCert:         getEnv(lookup, TLSCertVar, ""),
		TLSKey:          getEnv(lookup, TLSKeyVar, ""),
	}

	var err error
	if cfg.UpstreamTimeout, err = getDuration(lookup, UpstreamTimeoutVar, DefaultUpstreamTimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration(lookup, SessionTTLVar, DefaultSessionTTL); err != nil {
		return nil, err
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return nil, perrors.Errorf(perrors.KindConfig, "%s and %s must be set together", TLSCertVar, TLSKeyVar)
	}

	return cfg, nil
}

// Validate reports whether the upstream can be contacted at all.
func (c *Config) Validate() error {
	if c == nil {
		return perrors.New(perrors.KindConfig, "configuration not loaded")
	}
	var missing []string
	if c.UpstreamURL == "" {
		missing = append(missing, UpstreamURLVar)
	}
	if c.Username == "" {
		missing = append(missing, UpstreamUsernameVar)
	}
	if c.Password == "" {
		missing = append(missing, UpstreamPasswordVar)
	}
	if len(missing) > 0 {
		return perrors.Errorf(perrors.KindConfig, "missing %s", strings.Join(missing, ", "))
	}
	if _, err := c.UpstreamBase(); err != nil {
		return err
	}
	return nil
}

// UpstreamBase parses UpstreamURL, which must be an absolute http(s) URL.
func (c *Config) UpstreamBase() (*url.URL, error) {
	u, err := url.Parse(c.UpstreamURL)
	if err != nil {
		// the parse error quotes the raw url, userinfo included
		return nil, perrors.Errorf(perrors.KindConfig, "invalid %s", UpstreamURLVar)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, perrors.Errorf(perrors.KindConfig, "%s must be an absolute http(s) url", UpstreamURLVar)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil
	return u, nil
}

// AuthorizationHeader returns the Basic credentials header value.
func (c *Config) AuthorizationHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+":"+c.Password))
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// String never includes the password.
func (c *Config) String() string {
	if c == nil {
		return "<nil>"
	}
	pass := ""
	if c.Password != "" {
		pass = "***"
	}
	return fmt.Sprintf("upstream=%q user=%q password=%q listen=%q timeout=%s session_ttl=%s tls=%t",
		redactURL(c.UpstreamURL), c.Username, pass, c.ListenAddr, c.UpstreamTimeout, c.SessionTTL, c.TLSEnabled())
}

// redactURL masks the password of userinfo embedded in raw.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}

func getEnv(lookup LookupFunc, key, fallback string) string {
	if value, ok := lookup(key); ok {
		return value
	}
	return fallback
}

func getDuration(lookup LookupFunc, key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, perrors.Wrapf(err, perrors.KindConfig, "invalid %s", key)
	}
	if d <= 0 {
		return 0, perrors.Errorf(perrors.KindConfig, "%s must be positive", key)
	}
	return d, nil
}
