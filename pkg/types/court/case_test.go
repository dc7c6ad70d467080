package court

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
)

func TestPartySideAliasing(t *testing.T) {
	tests := []struct {
		name    string
		parties []Party
	}{
		{
			name: "petitioner/respondent vocabulary",
			parties: []Party{
				{Name: "A", Type: PartyPetitioner},
				{Name: "B", Type: PartyRespondent},
			},
		},
		{
			name: "plaintiff/defendant vocabulary",
			parties: []Party{
				{Name: "A", Type: PartyPlaintiff},
				{Name: "B", Type: PartyDefendant},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CanonicalCase{Parties: tt.parties}
			assert.Equal(t, "A", c.Petitioner())
			assert.Equal(t, "B", c.Respondent())
		})
	}
}

func TestPetitionerEmptyWhenNoParties(t *testing.T) {
	c := &CanonicalCase{}
	assert.Empty(t, c.Petitioner())
	assert.Empty(t, c.Respondent())
}

func TestDisplayStatusStripsMarkup(t *testing.T) {
	c := &CanonicalCase{CaseStatus: "Pending<br><b>Arguments</b>&nbsp;heard"}
	assert.Equal(t, "Pending Arguments heard", c.DisplayStatus())
}

func TestCleanSectionsSuppressesCommaSentinel(t *testing.T) {
	assert.Empty(t, ActsAndSections{Acts: "IPC 302", Sections: ","}.CleanSections())
	assert.Empty(t, ActsAndSections{Sections: " , "}.CleanSections())
	assert.Equal(t, "302, 304", ActsAndSections{Sections: "302, 304"}.CleanSections())
}

func TestHasDecisionEpochSentinel(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	real := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	later1970 := time.Date(1970, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, (&CanonicalCase{}).HasDecision())
	assert.False(t, (&CanonicalCase{DecisionDate: &epoch}).HasDecision())
	assert.True(t, (&CanonicalCase{DecisionDate: &real}).HasDecision())
	// Only the exact epoch instant is a sentinel.
	assert.True(t, (&CanonicalCase{DecisionDate: &later1970}).HasDecision())
}

func TestDisplayHearingsTruncatesForDisplayOnly(t *testing.T) {
	c := &CanonicalCase{}
	for i := 0; i < 8; i++ {
		c.HearingHistory = append(c.HearingHistory, HearingEntry{Purpose: "hearing"})
	}
	assert.Len(t, c.DisplayHearings(5), 5)
	assert.Len(t, c.HearingHistory, 8)
	assert.Len(t, c.DisplayHearings(0), 8)
}

func TestCNRRules(t *testing.T) {
	tests := []struct {
		cnr    string
		strict bool
		loose  bool
	}{
		{"DLHC010012342023", true, true},
		{"KABC01-123-2023x", true, false}, // hyphens fail the loose rule
		{"SHORT1234", false, false},
		{"DLDC1234567890", false, true}, // 14 chars: loose only
		{"DLHC0100123420231", false, true},
		{"DLHC01001234202", false, true},
		{"", false, false},
		{"DLHC01001234 023", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.strict, CNRRuleStrict.Valid(tt.cnr), "strict %q", tt.cnr)
		assert.Equal(t, tt.loose, CNRRuleLoose.Valid(tt.cnr), "loose %q", tt.cnr)
	}
	assert.True(t, IsValidCNR("DLHC010012342023"))
}

func TestClassifyCNRPrecedence(t *testing.T) {
	tests := []struct {
		cnr  string
		want CourtType
	}{
		{"DLHC010012342023", CourtHigh},
		{"SCHC010012342023", CourtHigh}, // high-court marker wins when both appear
		{"KASC010012342023", CourtSupreme},
		{"DLSC010012342023", CourtSupreme},
		{"NCLT202300012345", CourtNCLT},
		{"CF00123420230001", CourtConsumer},
		{"CAT0012342023001", CourtCAT},
		{"KABC010012342023", CourtDistrict},
		{"", CourtDistrict},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCNR(tt.cnr), "cnr %q", tt.cnr)
	}
}

func TestCascadeAfterExcludesTried(t *testing.T) {
	order := CascadeAfter(CourtHigh)
	assert.Equal(t, []CourtType{CourtDistrict, CourtSupreme, CourtNCLT, CourtCAT, CourtConsumer}, order)
	assert.Len(t, CascadeOrder(), 6)
}

func TestCourtTypeSlugs(t *testing.T) {
	assert.Equal(t, "district-court", CourtDistrict.Slug())
	assert.Equal(t, "high-court", CourtHigh.Slug())
	assert.Equal(t, "supreme-court", CourtSupreme.Slug())
	assert.Equal(t, "consumer-forum", CourtConsumer.Slug())
	assert.Equal(t, "district-court", CourtType("bogus").Slug())
}

func TestSearchFiltersDefaults(t *testing.T) {
	var f SearchFilters
	assert.True(t, f.IsEmpty())
	assert.Equal(t, CourtDistrict, f.EffectiveCourtType())
	assert.Equal(t, DefaultSearchLimit, f.EffectiveLimit())

	f.CourtType = CourtHigh
	f.Limit = 10
	assert.False(t, f.IsEmpty())
	assert.Equal(t, CourtHigh, f.EffectiveCourtType())
	assert.Equal(t, 10, f.EffectiveLimit())

	f.Limit = 10_000
	assert.Equal(t, DefaultSearchLimit, f.EffectiveLimit())
}

func TestEnvelopeFromLookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := &CanonicalCase{CNR: "DLHC010012342023", CaseNumber: "CRL/100/2023"}
		env := EnvelopeFromLookup(Lookup{
			Status:       StatusOK,
			Case:         c,
			Provider:     "kleopatra",
			ResponseTime: 250 * time.Millisecond,
		})
		assert.True(t, env.Success)
		assert.Equal(t, c, env.Data)
		assert.Equal(t, "kleopatra", env.Provider)
		assert.EqualValues(t, 250, env.ResponseTimeMs)
	})

	t.Run("action required rides outside data", func(t *testing.T) {
		env := EnvelopeFromLookup(LookupSuspended(&ActionRequired{
			Provider:   "highcourt",
			CaptchaURL: "https://portal.example/captcha/abc",
			SessionID:  "sess-1",
		}))
		assert.False(t, env.Success)
		assert.Nil(t, env.Data)
		assert.True(t, env.RequiresCaptcha)
		assert.Equal(t, "sess-1", env.Captcha.SessionID)
		assert.Equal(t, errors.CodeCaptchaRequired.String(), env.Error)
	})

	t.Run("terminal exhaustion flags manual", func(t *testing.T) {
		env := EnvelopeFromLookup(LookupFailed(errors.CodeAllProvidersExhausted, "all vendors failed", "ecourts"))
		assert.False(t, env.Success)
		assert.True(t, env.RequiresManual)
		assert.Equal(t, errors.CodeAllProvidersExhausted.String(), env.Error)
	})
}

func TestCapabilitiesSupports(t *testing.T) {
	caps := Capabilities{Operations: []Operation{OpGetCaseByCNR, OpSearchCases}}
	assert.True(t, caps.Supports(OpGetCaseByCNR))
	assert.False(t, caps.Supports(OpDownloadOrderPDF))
}
