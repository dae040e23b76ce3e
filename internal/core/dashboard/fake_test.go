package dashboard

import (
	"context"
	"sync"
	"time"

	"phishx/internal/core/appliance"
	perrors "phishx/internal/errors"
)

// fakeAppliance serves canned values; any source listed in fail errors out.
type fakeAppliance struct {
	mu   sync.Mutex
	fail map[string]bool

	filtering appliance.FilteringStatus
	entries   []appliance.QueryLogEntry

	setProtectionCalls []bool
	intervals          []uint32
	rules              []string
	block              chan struct{} // when set, SetProtection waits on it
}

func (f *fakeAppliance) err(source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[source] {
		return perrors.New(perrors.KindUpstream, source+" failed")
	}
	return nil
}

func (f *fakeAppliance) GetStatus(ctx context.Context) (appliance.Status, error) {
	return appliance.Status{Version: "v0.107.52", ProtectionEnabled: true, Running: true}, f.err(SourceStatus)
}

func (f *fakeAppliance) GetStats(ctx context.Context) (appliance.Stats, error) {
	n := int64(1200)
	return appliance.Stats{NumDnsQueries: &n}, f.err(SourceStats)
}

func (f *fakeAppliance) GetFilteringStatus(ctx context.Context) (appliance.FilteringStatus, error) {
	if err := f.err(SourceFiltering); err != nil {
		return appliance.FilteringStatus{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filtering, nil
}

func (f *fakeAppliance) SetProtection(ctx context.Context, enabled bool, interval uint32) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.setProtectionCalls = append(f.setProtectionCalls, enabled)
	f.intervals = append(f.intervals, interval)
	failed := f.fail["set_protection"]
	if !failed {
		f.filtering.Enabled = enabled
	}
	f.mu.Unlock()
	if failed {
		return perrors.New(perrors.KindUnavailable, "connection refused")
	}
	return nil
}

func (f *fakeAppliance) GetQueryLog(ctx context.Context, limit, offset int) (appliance.QueryLogResponse, error) {
	return appliance.QueryLogResponse{Data: f.entries}, f.err(SourceQueryLog)
}

func (f *fakeAppliance) AddFilteringRule(ctx context.Context, rule string) error {
	if err := f.err("add_rule"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = append(f.rules, rule)
	f.filtering.UserRules = append(f.filtering.UserRules, rule)
	return nil
}

func (f *fakeAppliance) GetClients(ctx context.Context) (appliance.ClientsResponse, error) {
	return appliance.ClientsResponse{
		AutoClients: []appliance.AutoClient{{Ip: "192.168.1.20", Name: "laptop", Source: "ARP"}},
	}, f.err(SourceClients)
}

func (f *fakeAppliance) GetDnsInfo(ctx context.Context) (appliance.DnsInfo, error) {
	return appliance.DnsInfo{UpstreamDns: []string{"https://dns10.quad9.net/dns-query"}, UpstreamMode: "load_balance"}, f.err(SourceDnsInfo)
}

func (f *fakeAppliance) GetBlockedServices(ctx context.Context) (appliance.BlockedServicesResponse, error) {
	return appliance.BlockedServicesResponse{}, nil
}

func (f *fakeAppliance) GetEnabledBlockedServices(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeAppliance) SetBlockedServices(ctx context.Context, ids []string) error {
	return nil
}

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)
