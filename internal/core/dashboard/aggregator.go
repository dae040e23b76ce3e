package dashboard

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"phishx/internal/core/appliance"
	"phishx/internal/metrics"
)

func NewAggregator(a appliance.ApplianceHandler, m *metrics.Registry) *Aggregator {
	return &Aggregator{
		applianceHandler: a,
		metrics:          m,
		now:              time.Now,
	}
}

type Aggregator struct {
	applianceHandler appliance.ApplianceHandler
	metrics          *metrics.Registry
	now              func() time.Time
}

// Fetch runs the six dashboard reads concurrently and waits for all of them.
// A failed read leaves its section empty; the others still populate.
func (a *Aggregator) Fetch(ctx context.Context) Snapshot {
	var (
		g         errgroup.Group
		status    appliance.Status
		stats     appliance.Stats
		filtering appliance.FilteringStatus
		queryLog  appliance.QueryLogResponse
		clients   appliance.ClientsResponse
		dnsInfo   appliance.DnsInfo
	)
	sources := []string{SourceStatus, SourceStats, SourceFiltering, SourceQueryLog, SourceClients, SourceDnsInfo}
	errs := make([]error, len(sources))

	// branches never return an error to the group so none cancels another
	calls := []func() error{
		func() (err error) { status, err = a.applianceHandler.GetStatus(ctx); return },
		func() (err error) { stats, err = a.applianceHandler.GetStats(ctx); return },
		func() (err error) { filtering, err = a.applianceHandler.GetFilteringStatus(ctx); return },
		func() (err error) { queryLog, err = a.applianceHandler.GetQueryLog(ctx, QueryLogLimit, 0); return },
		func() (err error) { clients, err = a.applianceHandler.GetClients(ctx); return },
		func() (err error) { dnsInfo, err = a.applianceHandler.GetDnsInfo(ctx); return },
	}
	for i, call := range calls {
		g.Go(func() error {
			errs[i] = call()
			return nil
		})
	}
	_ = g.Wait()

	snap := Snapshot{
		FetchedAt: a.now().UTC(),
		QueryLog:  []QueryLogRecord{},
	}
	for i, err := range errs {
		if err == nil {
			continue
		}
		log.Printf("[!] dashboard fetch %s failed: %v", sources[i], err)
		a.metrics.FetchFailed(sources[i])
		snap.FetchErrors = append(snap.FetchErrors, FetchError{Source: sources[i], Message: "failed to fetch " + sources[i]})
	}
	if len(snap.FetchErrors) > 0 {
		snap.Error = FetchFailedMessage
	}

	if errs[0] == nil {
		snap.Status = &status
	}
	if errs[1] == nil {
		snap.Stats = &stats
	}
	if errs[2] == nil {
		snap.Filtering = &filtering
	}
	if errs[3] == nil {
		snap.QueryLog = NormalizeQueryLog(queryLog.Data)
	}
	if errs[4] == nil {
		snap.Clients = ClientsView{
			Clients:       clients.Clients,
			AutoClients:   clients.AutoClients,
			SupportedTags: clients.SupportedTags,
		}
	}
	if errs[5] == nil {
		snap.DnsInfo = &dnsInfo
	}
	return snap
}
