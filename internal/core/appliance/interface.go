package appliance

import "context"

type ApplianceHandler interface {
	GetStatus(ctx context.Context) (Status, error)
	GetStats(ctx context.Context) (Stats, error)
	GetFilteringStatus(ctx context.Context) (FilteringStatus, error)
	SetProtection(ctx context.Context, enabled bool, interval uint32) error
	GetQueryLog(ctx context.Context, limit, offset int) (QueryLogResponse, error)
	AddFilteringRule(ctx context.Context, rule string) error
	GetClients(ctx context.Context) (ClientsResponse, error)
	GetDnsInfo(ctx context.Context) (DnsInfo, error)
	GetBlockedServices(ctx context.Context) (BlockedServicesResponse, error)
	GetEnabledBlockedServices(ctx context.Context) ([]string, error)
	SetBlockedServices(ctx context.Context, ids []string) error
}
