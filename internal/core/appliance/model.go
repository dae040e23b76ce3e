package appliance

import "encoding/json"

type Status struct {
	Version           string   `json:"version"`
	ProtectionEnabled bool     `json:"protection_enabled"`
	DnsAddresses      []string `json:"dns_addresses,omitempty"`
	Running           bool     `json:"running"`
}

// Stats counters are pointers: absent until the appliance reports them.
type Stats struct {
	NumDnsQueries           *int64   `json:"num_dns_queries,omitempty"`
	NumBlockedFiltering     *int64   `json:"num_blocked_filtering,omitempty"`
	NumReplacedSafebrowsing *int64   `json:"num_replaced_safebrowsing,omitempty"`
	NumReplacedParental     *int64   `json:"num_replaced_parental,omitempty"`
	AvgProcessingTime       *float64 `json:"avg_processing_time,omitempty"`
	TimeUnits               string   `json:"time_units,omitempty"`
}

type Filter struct {
	Id          int64  `json:"id"`
	Enabled     bool   `json:"enabled"`
	Url         string `json:"url"`
	Name        string `json:"name"`
	RulesCount  int64  `json:"rules_count"`
	LastUpdated string `json:"last_updated,omitempty"`
}

type FilteringStatus struct {
	Enabled   bool     `json:"enabled"`
	Interval  uint32   `json:"interval"` // hours, 0 disables auto-update
	Filters   []Filter `json:"filters"`
	UserRules []string `json:"user_rules,omitempty"`
}

type FilteringConfig struct {
	Enabled  bool   `json:"enabled"`
	Interval uint32 `json:"interval"`
}

type SetRulesRequest struct {
	Rules []string `json:"rules"`
}

type DnsInfo struct {
	UpstreamDns       []string `json:"upstream_dns"`
	BootstrapDns      []string `json:"bootstrap_dns"`
	ProtectionEnabled bool     `json:"protection_enabled"`
	Ratelimit         int64    `json:"ratelimit"`
	BlockingMode      string   `json:"blocking_mode"`
	BlockingIpv4      string   `json:"blocking_ipv4,omitempty"`
	BlockingIpv6      string   `json:"blocking_ipv6,omitempty"`
	EdnsCsEnabled     bool     `json:"edns_cs_enabled"`
	DnssecEnabled     bool     `json:"dnssec_enabled"`
	DisableIpv6       bool     `json:"disable_ipv6"`
	CacheSize         int64    `json:"cache_size"`
	CacheTtlMin       int64    `json:"cache_ttl_min"`
	CacheTtlMax       int64    `json:"cache_ttl_max"`
	UpstreamMode      string   `json:"upstream_mode"`
}

// == query log (raw upstream shape) ==
type QueryLogResponse struct {
	Data   []QueryLogEntry `json:"data"`
	Oldest string          `json:"oldest,omitempty"`
}

type QueryLogEntry struct {
	Answer       []DnsAnswer  `json:"answer,omitempty"`
	AnswerDnssec bool         `json:"answer_dnssec,omitempty"`
	Cached       bool         `json:"cached,omitempty"`
	Client       string       `json:"client"`
	ClientInfo   *ClientInfo  `json:"client_info,omitempty"`
	ClientProto  string       `json:"client_proto,omitempty"`
	ElapsedMs    string       `json:"elapsedMs,omitempty"`
	FilterId     int64        `json:"filterId,omitempty"`
	Question     RawQuestion  `json:"question"`
	Reason       string       `json:"reason"`
	Rule         string       `json:"rule,omitempty"`
	Rules        []FilterRule `json:"rules,omitempty"`
	Status       string       `json:"status,omitempty"`
	Time         string       `json:"time"`
	Upstream     string       `json:"upstream,omitempty"`
}

// RawQuestion carries the queried name under either "host" or "name"
// depending on the appliance version.
type RawQuestion struct {
	Class string `json:"class"`
	Host  string `json:"host,omitempty"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
}

type DnsAnswer struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
	Ttl   int64           `json:"ttl"`
}

type FilterRule struct {
	FilterListId int64  `json:"filter_list_id"`
	Text         string `json:"text"`
}

type WhoisInfo struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Orgname string `json:"orgname,omitempty"`
}

type ClientInfo struct {
	Whois          *WhoisInfo `json:"whois,omitempty"`
	Name           string     `json:"name,omitempty"`
	DisallowedRule string     `json:"disallowed_rule,omitempty"`
	Disallowed     bool       `json:"disallowed,omitempty"`
}

// == clients ==
type Client struct {
	Name                     string   `json:"name"`
	Ids                      []string `json:"ids"`
	UseGlobalSettings        bool     `json:"use_global_settings"`
	FilteringEnabled         bool     `json:"filtering_enabled"`
	ParentalEnabled          bool     `json:"parental_enabled"`
	SafebrowsingEnabled      bool     `json:"safebrowsing_enabled"`
	SafesearchEnabled        bool     `json:"safesearch_enabled"`
	UseGlobalBlockedServices bool     `json:"use_global_blocked_services"`
	BlockedServices          []string `json:"blocked_services"`
	Upstreams                []string `json:"upstreams"`
}

type AutoClient struct {
	WhoisInfo *WhoisInfo `json:"whois_info,omitempty"`
	Ip        string     `json:"ip"`
	Name      string     `json:"name"`
	Source    string     `json:"source"`
}

// ClientsResponse lists are nil when the appliance sends null or omits them.
type ClientsResponse struct {
	Clients       []Client     `json:"clients"`
	AutoClients   []AutoClient `json:"auto_clients"`
	SupportedTags []string     `json:"supported_tags"`
}

// == blocked services ==
type BlockedService struct {
	Id      string   `json:"id"`
	Name    string   `json:"name"`
	IconSvg string   `json:"icon_svg"`
	Rules   []string `json:"rules"`
}

type BlockedServicesResponse struct {
	BlockedServices []BlockedService `json:"blocked_services"`
}
