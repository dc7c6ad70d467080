package normalize

import (
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// ThirdParty normalizes the loosely standardized shape shared by the
// smaller paid vendors (Surepass, Legalkart and compatible APIs). These
// vendors mirror each other's schema but disagree on casing, so every
// field is read under both camelCase and snake_case.
func ThirdParty(doc Document) *court.CanonicalCase {
	data := doc.section("data", "result", "response")
	if len(data) == 0 {
		data = doc
	}

	c := &court.CanonicalCase{
		CNR:           data.str("cnr", "cnr_number", "cnrNumber"),
		CaseNumber:    data.str("caseNumber", "case_number", "case_no"),
		FilingNumber:  data.str("filingNumber", "filing_number"),
		Title:         data.str("title", "case_title", "caseTitle"),
		Court:         data.str("court", "court_name", "courtName"),
		CourtLocation: data.str("courtLocation", "court_location", "district"),
		HallNumber:    data.str("hallNumber", "hall_number"),
		CaseType:      data.str("caseType", "case_type"),
		CaseStatus:    data.str("caseStatus", "case_status", "status"),

		FilingDate:       data.date("filingDate", "filing_date"),
		RegistrationDate: data.date("registrationDate", "registration_date"),
		FirstHearingDate: data.date("firstHearingDate", "first_hearing_date"),
		LastHearingDate:  data.date("lastHearingDate", "last_hearing_date"),
		NextHearingDate:  data.date("nextHearingDate", "next_hearing_date"),
		DecisionDate:     data.date("decisionDate", "decision_date"),
	}

	for _, p := range data.list("parties") {
		c.Parties = append(c.Parties, court.Party{
			Name: p.str("name", "party_name", "partyName"),
			Type: partyType(p.str("type", "party_type", "partyType"), court.PartyPetitioner),
		})
	}
	for _, name := range data.strs("petitioners", "plaintiffs") {
		c.Parties = append(c.Parties, court.Party{Name: name, Type: court.PartyPetitioner})
	}
	for _, name := range data.strs("respondents", "defendants") {
		c.Parties = append(c.Parties, court.Party{Name: name, Type: court.PartyRespondent})
	}

	for _, a := range data.list("advocates", "lawyers") {
		c.Advocates = append(c.Advocates, court.Advocate{
			Name: a.str("name", "advocate_name", "advocateName"),
			Type: a.str("type", "side"),
		})
	}

	for _, h := range data.list("hearings", "hearing_history", "hearingHistory") {
		entry := court.HearingEntry{
			Purpose: h.str("purpose", "purpose_of_hearing"),
			Judge:   h.str("judge", "judge_name", "judgeName"),
			Status:  h.str("status"),
		}
		if t := h.date("date", "hearing_date", "hearingDate"); t != nil {
			entry.Date = *t
		}
		c.HearingHistory = append(c.HearingHistory, entry)
	}

	var orders []court.Order
	for _, o := range data.list("orders") {
		order := court.Order{
			Name: orDefault(o.str("name", "order_name", "orderName"), "Order"),
			URL:  o.str("url", "pdf_url", "pdfUrl"),
		}
		if n, ok := o.num("number", "order_number", "orderNumber"); ok {
			order.Number = n
		}
		if t := o.date("date", "order_date", "orderDate"); t != nil {
			order.Date = *t
		}
		orders = append(orders, order)
	}
	c.Orders = numberOrders(orders)

	acts := data.section("acts_and_sections", "actsAndSections")
	c.Statutes = court.ActsAndSections{
		Acts:     acts.str("acts", "act"),
		Sections: acts.str("sections", "section"),
	}

	finalize(c)
	return c
}

// Judgment normalizes a judgments-archive record. The archive indexes
// decided cases only, so most live-case fields are absent; the decision
// date and the judgment document are the substance.
func Judgment(doc Document) *court.CanonicalCase {
	data := doc.section("data", "judgment")
	if len(data) == 0 {
		data = doc
	}

	c := &court.CanonicalCase{
		CNR:          data.str("cnr", "cnr_number", "docId"),
		CaseNumber:   data.str("caseNumber", "case_number", "citation"),
		Title:        data.str("title", "case_title"),
		Court:        data.str("court", "court_name"),
		CaseStatus:   orDefault(data.str("status", "case_status"), "Disposed"),
		DecisionDate: data.date("decisionDate", "decision_date", "judgment_date", "date"),
	}

	if url := data.str("pdfUrl", "pdf_url", "judgment_url", "url"); url != "" {
		c.Orders = []court.Order{{Number: 1, Name: "Judgment", URL: url}}
		if c.DecisionDate != nil {
			c.Orders[0].Date = *c.DecisionDate
		}
	}

	finalize(c)
	return c
}
