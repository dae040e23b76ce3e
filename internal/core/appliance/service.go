package appliance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"phishx/internal/core/gateway"
	perrors "phishx/internal/errors"
)

func NewApplianceService(gw gateway.GatewayHandler) *ApplianceService {
	return &ApplianceService{
		gatewayHandler: gw,
	}
}

type ApplianceService struct {
	gatewayHandler gateway.GatewayHandler
}

func (s *ApplianceService) GetStatus(ctx context.Context) (Status, error) {
	var status Status
	err := s.get(ctx, "status", nil, &status)
	return status, err
}

func (s *ApplianceService) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.get(ctx, "stats", nil, &stats)
	return stats, err
}

func (s *ApplianceService) GetFilteringStatus(ctx context.Context) (FilteringStatus, error) {
	var filtering FilteringStatus
	err := s.get(ctx, "filtering/status", nil, &filtering)
	return filtering, err
}

// SetProtection posts the whole filtering config. interval is sent as given;
// callers pass the value currently set on the appliance.
func (s *ApplianceService) SetProtection(ctx context.Context, enabled bool, interval uint32) error {
	return s.post(ctx, "filtering/config", FilteringConfig{
		Enabled:  enabled,
		Interval: interval,
	})
}

func (s *ApplianceService) GetQueryLog(ctx context.Context, limit, offset int) (QueryLogResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var queryLog QueryLogResponse
	err := s.get(ctx, "querylog", query, &queryLog)
	return queryLog, err
}

// AddFilteringRule appends rule to the user rules. The appliance only
// accepts the full list, so the current one is read first.
func (s *ApplianceService) AddFilteringRule(ctx context.Context, rule string) error {
	current, err := s.GetFilteringStatus(ctx)
	if err != nil {
		return err
	}
	rules := make([]string, 0, len(current.UserRules)+1)
	rules = append(rules, current.UserRules...)
	rules = append(rules, rule)

	return s.post(ctx, "filtering/set_rules", SetRulesRequest{Rules: rules})
}

func (s *ApplianceService) GetClients(ctx context.Context) (ClientsResponse, error) {
	var clients ClientsResponse
	err := s.get(ctx, "clients", nil, &clients)
	return clients, err
}

func (s *ApplianceService) GetDnsInfo(ctx context.Context) (DnsInfo, error) {
	var info DnsInfo
	err := s.get(ctx, "dns_info", nil, &info)
	return info, err
}

func (s *ApplianceService) GetBlockedServices(ctx context.Context) (BlockedServicesResponse, error) {
	var services BlockedServicesResponse
	err := s.get(ctx, "blocked_services/all", nil, &services)
	return services, err
}

func (s *ApplianceService) GetEnabledBlockedServices(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.get(ctx, "blocked_services/list", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetBlockedServices replaces the enabled set. The body is a bare JSON array.
func (s *ApplianceService) SetBlockedServices(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.post(ctx, "blocked_services/set", ids)
}

func (s *ApplianceService) get(ctx context.Context, path string, query url.Values, out any) error {
	result, err := s.gatewayHandler.Forward(ctx, gateway.ForwardModel{
		Method:   http.MethodGet,
		SubPath:  strings.Split(path, "/"),
		RawQuery: query.Encode(),
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(result.Body, out); err != nil {
		return perrors.Wrapf(err, perrors.KindDecode, "decode %s", path)
	}
	return nil
}

func (s *ApplianceService) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return perrors.Wrapf(err, perrors.KindInternal, "encode %s", path)
	}
	_, err = s.gatewayHandler.Forward(ctx, gateway.ForwardModel{
		Method:  http.MethodPost,
		SubPath: strings.Split(path, "/"),
		Body:    body,
	})
	return err
}
