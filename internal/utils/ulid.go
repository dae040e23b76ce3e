package utils

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewUlid returns a lowercase ULID; ids from one process sort by creation.
func NewUlid() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}

// IsUlid reports whether s is a well-formed ULID in either case.
func IsUlid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
