package normalize

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

func decode(t *testing.T, raw string) Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestECourtsFullRecord(t *testing.T) {
	doc := decode(t, `{
		"cino": "DLHC010012342023",
		"case_no": "W.P.(C) 1234/2023",
		"title": "Asha Devi vs State of NCT of Delhi",
		"courtName": "High Court of Delhi",
		"caseStage": "Pending<br>Arguments",
		"date_of_filing": "15-02-2023",
		"date_next_list": "2026-09-14",
		"petitioners": [{"name": "Asha Devi"}],
		"respondents": [{"name": "State of NCT of Delhi"}],
		"caseHistory": [
			{"businessOnDate": "2023-03-01", "purposeOfHearing": "Admission", "judgeName": "Justice Rao"}
		],
		"interimOrders": [
			{"orderDate": "2023-03-01", "pdfUrl": "https://hc.example/o1.pdf"}
		],
		"underActs": "Constitution of India",
		"underSections": "Article 226"
	}`)

	c := ECourts(doc)

	assert.Equal(t, "DLHC010012342023", c.CNR)
	assert.Equal(t, "W.P.(C) 1234/2023", c.CaseNumber)
	assert.Equal(t, "High Court of Delhi", c.Court)
	assert.Equal(t, "Pending Arguments", c.DisplayStatus())
	require.NotNil(t, c.FilingDate)
	assert.Equal(t, time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC), *c.FilingDate)
	require.NotNil(t, c.NextHearingDate)

	assert.Equal(t, "Asha Devi", c.Petitioner())
	assert.Equal(t, "State of NCT of Delhi", c.Respondent())

	require.Len(t, c.HearingHistory, 1)
	assert.Equal(t, "Admission", c.HearingHistory[0].Purpose)

	require.Len(t, c.Orders, 1)
	assert.Equal(t, 1, c.Orders[0].Number)
	assert.Equal(t, "https://hc.example/o1.pdf", c.Orders[0].URL)

	assert.Equal(t, "Constitution of India", c.Statutes.Acts)
	assert.Equal(t, "Article 226", c.Statutes.Sections)
}

func TestECourtsEmptyDocumentIsTotal(t *testing.T) {
	c := ECourts(Document{})

	assert.Equal(t, court.UnknownTitle, c.Title)
	assert.Equal(t, court.UnknownCourt, c.Court)
	assert.True(t, strings.HasPrefix(c.CaseNumber, "REG-"))
	assert.False(t, c.HasDecision())
	assert.Empty(t, c.Parties)
}

func TestEmptyDetectsSentinelOnlyRecords(t *testing.T) {
	assert.True(t, Empty(ECourts(Document{})))
	assert.True(t, Empty(Kleopatra(Document{})))
	assert.True(t, Empty(ThirdParty(Document{})))
	assert.True(t, Empty(Judgment(Document{})))

	// Any substantive field marks the record as real data.
	assert.False(t, Empty(ECourts(decode(t, `{"cino": "DLHC010012342023"}`))))
	assert.False(t, Empty(ECourts(decode(t, `{"filing_no": "F/881/2022"}`))))
	assert.False(t, Empty(ThirdParty(decode(t, `{"title": "A vs B"}`))))
	assert.False(t, Empty(ThirdParty(decode(t, `{"petitioners": ["A"]}`))))
	assert.False(t, Empty(Judgment(decode(t, `{"pdf_url": "https://archive.example/j.pdf"}`))))
}

func TestECourtsFallbackCaseNumbersAreUnique(t *testing.T) {
	a := ECourts(Document{})
	b := ECourts(Document{})
	assert.NotEqual(t, a.CaseNumber, b.CaseNumber)
}

func TestECourtsPrefersFilingNumberOverSynthesized(t *testing.T) {
	c := ECourts(decode(t, `{"filing_no": "F/881/2022"}`))
	assert.Equal(t, "F/881/2022", c.CaseNumber)
	assert.Equal(t, "F/881/2022", c.FilingNumber)
}

func TestKleopatraNestedShape(t *testing.T) {
	doc := decode(t, `{
		"data": {
			"caseInfo": {
				"cnr_number": "KABC0100123420",
				"registration_number": "O.S. 456/2020",
				"court_name": "City Civil Court, Bengaluru"
			},
			"dates": {
				"filing_date": "2020-06-10",
				"decision_date": "1970-01-01T00:00:00Z"
			},
			"parties": {
				"plaintiffs": [{"party_name": "Ravi Kumar", "party_type": "PLAINTIFF"}],
				"defendants": [{"party_name": "Mohan Traders", "party_type": "DEFENDANT"}]
			},
			"orders_judgments": [
				{"order_name": "Interim Injunction", "order_date": "2021-01-05"},
				{"pdf_url": "https://v.example/o2.pdf"}
			]
		}
	}`)

	c := Kleopatra(doc)

	assert.Equal(t, "KABC0100123420", c.CNR)
	assert.Equal(t, "O.S. 456/2020", c.CaseNumber)
	assert.Equal(t, "Ravi Kumar vs Mohan Traders", c.Title)

	// The plaintiff/defendant vocabulary survives normalization.
	require.Len(t, c.Parties, 2)
	assert.Equal(t, court.PartyPlaintiff, c.Parties[0].Type)
	assert.Equal(t, court.PartyDefendant, c.Parties[1].Type)
	assert.Equal(t, "Ravi Kumar", c.Petitioner())
	assert.Equal(t, "Mohan Traders", c.Respondent())

	// Epoch decision date means no decision.
	require.NotNil(t, c.DecisionDate)
	assert.False(t, c.HasDecision())

	require.Len(t, c.Orders, 2)
	assert.Equal(t, "Interim Injunction", c.Orders[0].Name)
	assert.Equal(t, 2, c.Orders[1].Number)
	assert.Equal(t, "Order", c.Orders[1].Name)
}

func TestThirdPartySnakeAndCamelKeys(t *testing.T) {
	snake := ThirdParty(decode(t, `{"data": {"cnr_number": "X", "case_status": "Pending"}}`))
	camel := ThirdParty(decode(t, `{"data": {"cnrNumber": "X", "caseStatus": "Pending"}}`))

	assert.Equal(t, snake.CNR, camel.CNR)
	assert.Equal(t, snake.CaseStatus, camel.CaseStatus)
}

func TestThirdPartyStringPartyLists(t *testing.T) {
	c := ThirdParty(decode(t, `{"petitioners": ["A"], "respondents": ["B", "C"]}`))
	require.Len(t, c.Parties, 3)
	assert.Equal(t, "A vs B", c.Title)
}

func TestJudgmentRecord(t *testing.T) {
	c := Judgment(decode(t, `{
		"judgment": {
			"docId": "SCJUDG2019004512",
			"citation": "2019 SCC 112",
			"title": "Union of India vs Sharma",
			"judgment_date": "2019-11-21",
			"pdf_url": "https://j.example/j.pdf"
		}
	}`))

	assert.Equal(t, "SCJUDG2019004512", c.CNR)
	assert.Equal(t, "2019 SCC 112", c.CaseNumber)
	assert.Equal(t, "Disposed", c.CaseStatus)
	assert.True(t, c.HasDecision())
	require.Len(t, c.Orders, 1)
	assert.Equal(t, "Judgment", c.Orders[0].Name)
}

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{"2023-02-15", "15-02-2023", "15/02/2023", "15-Feb-2023"} {
		got := parseDate(s)
		require.NotNil(t, got, s)
		assert.Equal(t, time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC), *got, s)
	}
	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
}

func TestCleanSectionsSuppressesJunkComma(t *testing.T) {
	c := ThirdParty(decode(t, `{"acts_and_sections": {"acts": "IPC", "sections": ","}}`))
	assert.Equal(t, "IPC", c.Statutes.Acts)
	assert.Equal(t, "", c.Statutes.CleanSections())
}
