// Package court defines the canonical case record every provider must
// produce, together with the lookup/search request and result shapes shared
// by the providers, the resolution orchestrator, and the interface layers.
//
// Upstream sources disagree on almost everything: field names, nesting,
// vocabularies, even what counts as a case number. The types here are the
// single normalized shape the rest of the system is allowed to see.
package court

import (
	"strings"
	"time"
)

// Sentinel display values substituted when an upstream source omits a
// required display field.
const (
	UnknownTitle = "Unknown Case"
	UnknownCourt = "Unknown Court"
)

// PartyType classifies a party to a case. PLAINTIFF and PETITIONER are the
// same side under two procedural vocabularies, as are DEFENDANT and
// RESPONDENT; use Side to compare across vocabularies.
type PartyType string

const (
	PartyPlaintiff  PartyType = "PLAINTIFF"
	PartyPetitioner PartyType = "PETITIONER"
	PartyDefendant  PartyType = "DEFENDANT"
	PartyRespondent PartyType = "RESPONDENT"
)

// PartySide collapses the four party types into the two sides of a case.
type PartySide string

const (
	SidePetitioner PartySide = "PETITIONER_SIDE"
	SideRespondent PartySide = "RESPONDENT_SIDE"
	SideUnknown    PartySide = "UNKNOWN_SIDE"
)

// Side returns which side of the case this party type belongs to.
func (t PartyType) Side() PartySide {
	switch t {
	case PartyPlaintiff, PartyPetitioner:
		return SidePetitioner
	case PartyDefendant, PartyRespondent:
		return SideRespondent
	}
	return SideUnknown
}

// Party is one named party to a case.
type Party struct {
	Name string    `json:"name"`
	Type PartyType `json:"type"`
}

// Advocate is counsel on record. Only Name is reliably present upstream.
type Advocate struct {
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	BarNumber string `json:"barNumber,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Judge is a presiding or listed judge.
type Judge struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Court       string `json:"court"`
}

// HearingEntry is one row of the hearing history. The history is
// append-only in storage; display layers may truncate it but the canonical
// record never does.
type HearingEntry struct {
	Date    time.Time `json:"date"`
	Purpose string    `json:"purpose"`
	Judge   string    `json:"judge"`
	Status  string    `json:"status,omitempty"`
}

// Order is a court order or judgment attached to a case. Number is a
// 1-based sequence assigned by the normalizer when the upstream source
// lacks one.
type Order struct {
	Number int       `json:"number"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	URL    string    `json:"url,omitempty"`
}

// ActsAndSections carries the statutes and sections a case is filed under.
type ActsAndSections struct {
	Acts     string `json:"acts"`
	Sections string `json:"sections"`
}

// CleanSections returns the sections value with the known upstream junk
// value "," suppressed to the empty string.
func (a ActsAndSections) CleanSections() string {
	s := strings.TrimSpace(a.Sections)
	if s == "," {
		return ""
	}
	return s
}

// CaseDetails carries the free-text description block of a case.
type CaseDetails struct {
	SubjectMatter   string `json:"subjectMatter"`
	CaseDescription string `json:"caseDescription"`
	ReliefSought    string `json:"reliefSought"`
	CaseValue       string `json:"caseValue,omitempty"`
	Jurisdiction    string `json:"jurisdiction"`
}

// CanonicalCase is the single normalized case record. A fresh value is
// constructed on every successful provider response; the caller owns any
// subsequent persistence. There is no update-in-place: refresh means
// re-resolve by CNR and replace.
type CanonicalCase struct {
	// CNR is the primary external key, 16 characters of letters, digits
	// and hyphens. Providers that synthesize CNRs must still conform.
	CNR string `json:"cnr"`

	// CaseNumber is the authoritative court-assigned registration number
	// and the primary display identifier. FilingNumber is the number
	// assigned at filing time; the two are distinct concepts and may
	// differ. CaseNumber is never empty: normalizers synthesize a
	// fallback when the upstream record lacks one.
	CaseNumber   string `json:"caseNumber"`
	FilingNumber string `json:"filingNumber,omitempty"`

	Title         string `json:"title"`
	Court         string `json:"court"`
	CourtLocation string `json:"courtLocation,omitempty"`
	HallNumber    string `json:"hallNumber,omitempty"`

	// CaseType and CaseStatus use the upstream source's own vocabulary;
	// no unification is attempted because the vocabularies are
	// incompatible. Status strings may contain embedded markup; use
	// DisplayStatus before rendering.
	CaseType   string `json:"caseType,omitempty"`
	CaseStatus string `json:"caseStatus,omitempty"`

	FilingDate       *time.Time `json:"filingDate,omitempty"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
	FirstHearingDate *time.Time `json:"firstHearingDate,omitempty"`
	LastHearingDate  *time.Time `json:"lastHearingDate,omitempty"`
	NextHearingDate  *time.Time `json:"nextHearingDate,omitempty"`
	DecisionDate     *time.Time `json:"decisionDate,omitempty"`

	Parties        []Party         `json:"parties,omitempty"`
	Advocates      []Advocate      `json:"advocates,omitempty"`
	Judges         []Judge         `json:"judges,omitempty"`
	HearingHistory []HearingEntry  `json:"hearingHistory,omitempty"`
	Orders         []Order         `json:"orders,omitempty"`
	Statutes       ActsAndSections `json:"actsAndSections"`
	Details        CaseDetails     `json:"caseDetails"`
}

// markupReplacer strips the markup fragments some portals embed in status
// strings before they reach a display surface.
var markupReplacer = strings.NewReplacer(
	"<br>", " ", "<br/>", " ", "<br />", " ",
	"<b>", "", "</b>", "",
	"<i>", "", "</i>", "",
	"&nbsp;", " ",
)

// DisplayStatus returns CaseStatus with embedded markup stripped and
// whitespace collapsed.
func (c *CanonicalCase) DisplayStatus() string {
	return strings.Join(strings.Fields(markupReplacer.Replace(c.CaseStatus)), " ")
}

// Petitioner returns the name of the first petitioner-side party
// (PETITIONER or PLAINTIFF), or "" when none is present.
func (c *CanonicalCase) Petitioner() string {
	return c.firstOnSide(SidePetitioner)
}

// Respondent returns the name of the first respondent-side party
// (RESPONDENT or DEFENDANT), or "" when none is present.
func (c *CanonicalCase) Respondent() string {
	return c.firstOnSide(SideRespondent)
}

func (c *CanonicalCase) firstOnSide(side PartySide) string {
	for _, p := range c.Parties {
		if p.Type.Side() == side {
			return p.Name
		}
	}
	return ""
}

// HasDecision reports whether the case carries a real decision date. The
// epoch sentinel 1970-01-01T00:00:00Z means "no decision", not a decision
// taken in 1970; upstream sources do not mark genuine 1970 dates, so the
// ambiguity is resolved in favor of absence.
func (c *CanonicalCase) HasDecision() bool {
	if c.DecisionDate == nil {
		return false
	}
	return !c.DecisionDate.Equal(time.Unix(0, 0).UTC())
}

// DisplayHearings returns up to the first n entries of the hearing history
// for display surfaces. The canonical record itself is never truncated.
func (c *CanonicalCase) DisplayHearings(n int) []HearingEntry {
	if n <= 0 || len(c.HearingHistory) <= n {
		return c.HearingHistory
	}
	return c.HearingHistory[:n]
}
