package dashboard

import (
	"encoding/json"
	"time"

	"phishx/internal/core/appliance"
)

const (
	FetchFailedMessage     = "Failed to fetch data"
	ToggleFailedMessage    = "Failed to toggle protection"
	BlocklistFailedMessage = "Failed to add domain to blocklist"

	// most-recent entries pulled per fetch
	QueryLogLimit = 100
)

// fetch sources, also used as metric labels
const (
	SourceStatus    = "status"
	SourceStats     = "stats"
	SourceFiltering = "filtering"
	SourceQueryLog  = "querylog"
	SourceClients   = "clients"
	SourceDnsInfo   = "dns_info"
)

type FetchError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// Snapshot is the display model built by one aggregated fetch. Sections whose
// call failed stay nil and are listed in FetchErrors.
type Snapshot struct {
	Status    *appliance.Status          `json:"status"`
	Stats     *appliance.Stats           `json:"stats"`
	Filtering *appliance.FilteringStatus `json:"filtering"`
	QueryLog  []QueryLogRecord           `json:"query_log"`
	Clients   ClientsView                `json:"clients"`
	DnsInfo   *appliance.DnsInfo         `json:"dns_info"`
	FetchedAt time.Time                  `json:"fetched_at"`

	ProtectionPending bool         `json:"protection_pending"`
	Error             string       `json:"error,omitempty"`
	ActionError       string       `json:"action_error,omitempty"`
	FetchErrors       []FetchError `json:"fetch_errors,omitempty"`
}

type ClientsView struct {
	Clients       []appliance.Client     `json:"clients"`
	AutoClients   []appliance.AutoClient `json:"auto_clients"`
	SupportedTags []string               `json:"supported_tags"`
}

// QueryLogRecord is a query-log entry with the question name resolved.
type QueryLogRecord struct {
	Time        time.Time              `json:"time"`
	RawTime     string                 `json:"raw_time"`
	Question    Question               `json:"question"`
	Client      string                 `json:"client"`
	ClientName  string                 `json:"client_name"`
	ClientInfo  *appliance.ClientInfo  `json:"client_info,omitempty"`
	ClientProto string                 `json:"client_proto,omitempty"`
	Reason      string                 `json:"reason"`
	Rule        string                 `json:"rule,omitempty"`
	Rules       []appliance.FilterRule `json:"rules,omitempty"`
	FilterId    int64                  `json:"filter_id,omitempty"`
	Status      string                 `json:"status,omitempty"`
	Answers     []Answer               `json:"answers,omitempty"`
	Dnssec      bool                   `json:"answer_dnssec"`
	Cached      bool                   `json:"cached"`
	ElapsedMs   float64                `json:"elapsed_ms"`
	Upstream    string                 `json:"upstream,omitempty"`
}

type Question struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Class     string `json:"class"`
	TypeCode  uint16 `json:"type_code"`
	ClassCode uint16 `json:"class_code"`
}

type Answer struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
	Ttl   int64           `json:"ttl"`
}
