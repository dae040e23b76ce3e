package dashboard

import "context"

type AggregatorHandler interface {
	Fetch(ctx context.Context) Snapshot
}

type ViewHandler interface {
	Snapshot(ctx context.Context) Snapshot
	Refresh(ctx context.Context) Snapshot
	ToggleProtection(ctx context.Context, enabled bool) (Snapshot, error)
	AddBlockedDomain(ctx context.Context, domain string) (Snapshot, error)
}
