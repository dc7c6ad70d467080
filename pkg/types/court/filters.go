package court

import "time"

// SearchFilters is a sparse record of optional match criteria. No field is
// required; an all-empty filter is legal and providers must answer it with
// a capped (possibly empty) result set rather than an error.
type SearchFilters struct {
	CNR          string     `json:"cnr,omitempty"`
	CaseNumber   string     `json:"caseNumber,omitempty"`
	FilingNumber string     `json:"filingNumber,omitempty"`
	PartyName    string     `json:"partyName,omitempty"`
	AdvocateName string     `json:"advocateName,omitempty"`
	Court        string     `json:"court,omitempty"`
	CourtType    CourtType  `json:"courtType,omitempty"`
	CaseType     string     `json:"caseType,omitempty"`
	CaseStatus   string     `json:"caseStatus,omitempty"`
	FiledFrom    *time.Time `json:"filedFrom,omitempty"`
	FiledTo      *time.Time `json:"filedTo,omitempty"`
	HearingFrom  *time.Time `json:"hearingFrom,omitempty"`
	HearingTo    *time.Time `json:"hearingTo,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Offset       int        `json:"offset,omitempty"`
}

// DefaultSearchLimit caps result sets when the caller does not specify one.
const DefaultSearchLimit = 50

// EffectiveLimit returns the limit to apply upstream: the caller's value
// clamped to [1, DefaultSearchLimit], or DefaultSearchLimit when unset.
func (f SearchFilters) EffectiveLimit() int {
	if f.Limit <= 0 || f.Limit > DefaultSearchLimit {
		return DefaultSearchLimit
	}
	return f.Limit
}

// EffectiveCourtType returns the filter's court type, defaulting to
// district when the caller omitted it. Search has no CNR to classify from,
// so the caller-supplied value is authoritative.
func (f SearchFilters) EffectiveCourtType() CourtType {
	if f.CourtType == "" {
		return CourtDistrict
	}
	return f.CourtType
}

// IsEmpty reports whether no match criterion at all was supplied.
func (f SearchFilters) IsEmpty() bool {
	return f.CNR == "" && f.CaseNumber == "" && f.FilingNumber == "" &&
		f.PartyName == "" && f.AdvocateName == "" && f.Court == "" &&
		f.CourtType == "" && f.CaseType == "" && f.CaseStatus == "" &&
		f.FiledFrom == nil && f.FiledTo == nil &&
		f.HearingFrom == nil && f.HearingTo == nil
}
