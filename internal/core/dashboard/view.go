package dashboard

import (
	"context"
	"log"
	"sync"

	"phishx/internal/core/appliance"
)

func NewView(agg AggregatorHandler, a appliance.ApplianceHandler) *View {
	return &View{
		aggregatorHandler: agg,
		applianceHandler:  a,
	}
}

// View holds the latest snapshot of one session. Upstream writes run
// without the lock so readers observe the tentative state.
type View struct {
	aggregatorHandler AggregatorHandler
	applianceHandler  appliance.ApplianceHandler

	mu       sync.Mutex
	snapshot *Snapshot
	gen      uint64 // bumped on every wholesale replace
}

// Snapshot returns the current snapshot, fetching it on first access.
func (v *View) Snapshot(ctx context.Context) Snapshot {
	v.mu.Lock()
	if v.snapshot != nil {
		snap := *v.snapshot
		v.mu.Unlock()
		return snap
	}
	v.mu.Unlock()
	return v.Refresh(ctx)
}

func (v *View) Refresh(ctx context.Context) Snapshot {
	snap := v.aggregatorHandler.Fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot = &snap
	v.gen++
	return snap
}

// ToggleProtection applies enabled tentatively, sends it upstream and then
// confirms or reverts. The update interval is read fresh and posted back
// unchanged.
func (v *View) ToggleProtection(ctx context.Context, enabled bool) (Snapshot, error) {
	// 1. tentative apply
	v.mu.Lock()
	if v.snapshot == nil {
		v.snapshot = &Snapshot{QueryLog: []QueryLogRecord{}}
	}
	gen := v.gen
	var prior bool
	if f := v.snapshot.Filtering; f != nil {
		prior = f.Enabled
		tentative := *f
		tentative.Enabled = enabled
		v.snapshot.Filtering = &tentative
	}
	v.snapshot.ProtectionPending = true
	v.mu.Unlock()

	// 2. upstream
	err := v.setProtection(ctx, enabled)
	var fresh *appliance.FilteringStatus
	if err == nil {
		if f, rerr := v.applianceHandler.GetFilteringStatus(ctx); rerr == nil {
			fresh = &f
		} else {
			log.Printf("[!] dashboard re-read after toggle failed: %v", rerr)
		}
	}

	// 3. confirm or revert
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot.ProtectionPending = false
	if err != nil {
		log.Printf("[!] dashboard toggle protection to %t failed: %v", enabled, err)
		v.snapshot.ActionError = ToggleFailedMessage
		if gen == v.gen && v.snapshot.Filtering != nil {
			reverted := *v.snapshot.Filtering
			reverted.Enabled = prior
			v.snapshot.Filtering = &reverted
		}
		return *v.snapshot, err
	}
	v.snapshot.ActionError = ""
	if fresh != nil {
		v.snapshot.Filtering = fresh
	}
	return *v.snapshot, nil
}

func (v *View) setProtection(ctx context.Context, enabled bool) error {
	current, err := v.applianceHandler.GetFilteringStatus(ctx)
	if err != nil {
		return err
	}
	return v.applianceHandler.SetProtection(ctx, enabled, current.Interval)
}

// AddBlockedDomain blocks domain through an important user rule. The domain
// is passed through as given.
func (v *View) AddBlockedDomain(ctx context.Context, domain string) (Snapshot, error) {
	err := v.applianceHandler.AddFilteringRule(ctx, BlockRule(domain))
	var fresh *appliance.FilteringStatus
	if err == nil {
		if f, rerr := v.applianceHandler.GetFilteringStatus(ctx); rerr == nil {
			fresh = &f
		} else {
			log.Printf("[!] dashboard re-read after blocklist add failed: %v", rerr)
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.snapshot == nil {
		v.snapshot = &Snapshot{QueryLog: []QueryLogRecord{}}
	}
	if err != nil {
		log.Printf("[!] dashboard add blocked domain %q failed: %v", domain, err)
		v.snapshot.ActionError = BlocklistFailedMessage
		return *v.snapshot, err
	}
	v.snapshot.ActionError = ""
	if fresh != nil {
		v.snapshot.Filtering = fresh
	}
	return *v.snapshot, nil
}

func BlockRule(domain string) string {
	return "||" + domain + "^$important"
}
