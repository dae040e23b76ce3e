package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"phishx/internal/core/appliance"
	"phishx/internal/core/dashboard"
)

func testSnapshot() dashboard.Snapshot {
	return dashboard.Snapshot{
		Status:   &appliance.Status{Version: "v0.107.52", Running: true},
		QueryLog: []dashboard.QueryLogRecord{{Question: dashboard.Question{Name: "example.org", Type: "A"}}},
		Error:    dashboard.FetchFailedMessage,
	}
}

func TestWriteJson(t *testing.T) {
	var buf bytes.Buffer
	if err := write(&buf, "json", testSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"version": "v0.107.52"`) {
		t.Fatalf("expected indented json, got %s", buf.String())
	}
}

func TestWriteYaml(t *testing.T) {
	var buf bytes.Buffer
	if err := write(&buf, "yaml", testSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if doc["error"] != dashboard.FetchFailedMessage {
		t.Fatalf("expected error key from json tag, got %v", doc["error"])
	}
	status, ok := doc["status"].(map[string]any)
	if !ok || status["version"] != "v0.107.52" {
		t.Fatalf("expected nested status, got %v", doc["status"])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := write(&bytes.Buffer{}, "xml", testSnapshot()); err == nil {
		t.Fatalf("expected error")
	}
}
