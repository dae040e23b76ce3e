package errors

import (
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	err := New(KindConfig, "ADGUARD_URL is not set")
	if err.Error() != "ADGUARD_URL is not set" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	wrapped := Wrap(err, KindInternal, "relay failed")
	if wrapped.Error() != "relay failed: ADGUARD_URL is not set" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}

	if Wrap(nil, KindInternal, "nothing") != nil {
		t.Fatalf("expected nil when wrapping nil")
	}
}

func TestGetKind(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		expect Kind
	}{
		{name: "direct", err: New(KindUpstream, "status 401"), expect: KindUpstream},
		{name: "outer wins", err: Wrap(New(KindDecode, "bad json"), KindTimeout, "slow"), expect: KindTimeout},
		{name: "plain", err: errors.New("plain"), expect: KindUnknown},
		{name: "nil", err: nil, expect: KindUnknown},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := GetKind(tc.err); got != tc.expect {
				t.Fatalf("expected %v, got %v", tc.expect, got)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindUnavailable.String() != "unavailable" {
		t.Fatalf("unexpected %q", KindUnavailable.String())
	}
	if Kind(99).String() != "unknown" {
		t.Fatalf("unexpected %q", Kind(99).String())
	}
}

func TestAttributes(t *testing.T) {
	err := New(KindUpstream, "non-success status")
	err = Attr(err, "status", 502)

	wrapped := Wrap(err, KindInternal, "relay")
	wrapped = Attr(wrapped, "path", "/control/stats")

	attrs := GetAttributes(wrapped)
	if attrs["status"] != 502 || attrs["path"] != "/control/stats" {
		t.Fatalf("missing attributes: %v", attrs)
	}

	plain := Attr(errors.New("boom"), "k", "v")
	if GetKind(plain) != KindInternal {
		t.Fatalf("expected plain error to become internal")
	}
}
