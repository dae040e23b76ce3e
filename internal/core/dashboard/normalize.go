package dashboard

import (
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"

	"phishx/internal/core/appliance"
)

// NormalizeQueryLog converts every raw entry; none are dropped.
func NormalizeQueryLog(entries []appliance.QueryLogEntry) []QueryLogRecord {
	records := make([]QueryLogRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, NormalizeEntry(e))
	}
	return records
}

func NormalizeEntry(e appliance.QueryLogEntry) QueryLogRecord {
	r := QueryLogRecord{
		RawTime:     e.Time,
		Question:    normalizeQuestion(e.Question),
		Client:      e.Client,
		ClientName:  e.Client,
		ClientInfo:  e.ClientInfo,
		ClientProto: e.ClientProto,
		Reason:      e.Reason,
		Rule:        e.Rule,
		Rules:       e.Rules,
		FilterId:    e.FilterId,
		Status:      e.Status,
		Dnssec:      e.AnswerDnssec,
		Cached:      e.Cached,
		Upstream:    e.Upstream,
	}
	if e.ClientInfo != nil && e.ClientInfo.Name != "" {
		r.ClientName = e.ClientInfo.Name
	}
	if t, err := time.Parse(time.RFC3339Nano, e.Time); err == nil {
		r.Time = t
	}
	if ms, err := strconv.ParseFloat(e.ElapsedMs, 64); err == nil {
		r.ElapsedMs = ms
	}
	for _, a := range e.Answer {
		r.Answers = append(r.Answers, Answer{Type: a.Type, Value: a.Value, Ttl: a.Ttl})
	}
	return r
}

// host wins over name when both are set
func normalizeQuestion(q appliance.RawQuestion) Question {
	name := q.Host
	if name == "" {
		name = q.Name
	}
	return Question{
		Name:      name,
		Type:      q.Type,
		Class:     q.Class,
		TypeCode:  dns.StringToType[strings.ToUpper(q.Type)],
		ClassCode: dns.StringToClass[strings.ToUpper(q.Class)],
	}
}
