package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"phishx/internal/core/appliance"
	"phishx/internal/core/dashboard"
	"phishx/internal/core/gateway"
	"phishx/internal/env"
)

// phishx-snapshot runs one aggregated dashboard fetch against the configured
// appliance and prints it. Exit status 1 when any section failed.
func main() {
	format := flag.String("format", "json", "output format: json or yaml")
	timeout := flag.Duration("timeout", 0, "overall deadline (0 = upstream timeout only)")
	flag.Parse()

	cfg, err := env.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[!] %v", err)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	client := appliance.NewApplianceService(gateway.NewGatewayService(cfg, nil))
	snap := dashboard.NewAggregator(client, nil).Fetch(ctx)

	if err := write(os.Stdout, *format, snap); err != nil {
		log.Fatal(err)
	}
	if snap.Error != "" {
		os.Exit(1)
	}
}

func write(w io.Writer, format string, snap dashboard.Snapshot) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "yaml":
		// round trip through json so the yaml keys follow the json tags
		raw, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
