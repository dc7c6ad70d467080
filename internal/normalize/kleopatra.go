package normalize

import (
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// Kleopatra normalizes the deeply nested shape returned by the Kleopatra
// vendor API. The payload of interest sits under "data"; parties and
// counsel live in per-side arrays rather than a typed list.
func Kleopatra(doc Document) *court.CanonicalCase {
	data := doc.section("data")
	if len(data) == 0 {
		data = doc
	}
	caseInfo := data.section("caseInfo", "case_info", "case")
	if len(caseInfo) == 0 {
		caseInfo = data
	}

	c := &court.CanonicalCase{
		CNR:           caseInfo.str("cnr", "cnrNumber", "cnr_number"),
		CaseNumber:    caseInfo.str("caseNumber", "case_number", "registrationNumber", "registration_number"),
		FilingNumber:  caseInfo.str("filingNumber", "filing_number"),
		Title:         caseInfo.str("title", "caseTitle", "case_title"),
		Court:         caseInfo.str("court", "courtName", "court_name"),
		CourtLocation: caseInfo.str("courtLocation", "court_location", "bench"),
		HallNumber:    caseInfo.str("hallNumber", "hall_number", "courtHall"),
		CaseType:      caseInfo.str("caseType", "case_type"),
		CaseStatus:    caseInfo.str("caseStatus", "case_status", "stage"),
	}

	dates := data.section("dates", "importantDates", "important_dates")
	if len(dates) == 0 {
		dates = caseInfo
	}
	c.FilingDate = dates.date("filingDate", "filing_date")
	c.RegistrationDate = dates.date("registrationDate", "registration_date")
	c.FirstHearingDate = dates.date("firstHearingDate", "first_hearing_date")
	c.LastHearingDate = dates.date("lastHearingDate", "last_hearing_date")
	c.NextHearingDate = dates.date("nextHearingDate", "next_hearing_date", "nextDate")
	c.DecisionDate = dates.date("decisionDate", "decision_date", "disposalDate")

	parties := data.section("parties")
	for _, p := range parties.list("petitioners", "plaintiffs", "applicants") {
		c.Parties = append(c.Parties, court.Party{
			Name: p.str("name", "partyName", "party_name"),
			Type: partyType(p.str("type", "party_type"), court.PartyPetitioner),
		})
	}
	for _, p := range parties.list("respondents", "defendants", "opponents") {
		c.Parties = append(c.Parties, court.Party{
			Name: p.str("name", "partyName", "party_name"),
			Type: partyType(p.str("type", "party_type"), court.PartyRespondent),
		})
	}
	for _, name := range parties.strs("petitioners", "plaintiffs") {
		c.Parties = append(c.Parties, court.Party{Name: name, Type: court.PartyPetitioner})
	}
	for _, name := range parties.strs("respondents", "defendants") {
		c.Parties = append(c.Parties, court.Party{Name: name, Type: court.PartyRespondent})
	}

	for _, a := range data.list("advocates", "lawyers", "counsel") {
		c.Advocates = append(c.Advocates, court.Advocate{
			Name:      a.str("name", "advocateName", "advocate_name"),
			Type:      a.str("type", "side", "representing"),
			BarNumber: a.str("barNumber", "bar_number", "enrollmentNumber"),
			Phone:     a.str("phone", "contactNumber"),
			Email:     a.str("email"),
		})
	}

	for _, j := range data.list("judges", "bench") {
		c.Judges = append(c.Judges, court.Judge{
			Name:        j.str("name", "judgeName", "judge_name"),
			Designation: j.str("designation", "post"),
			Court:       j.str("court", "courtName"),
		})
	}

	for _, h := range data.list("hearingHistory", "hearing_history", "hearings", "history") {
		entry := court.HearingEntry{
			Purpose: h.str("purpose", "purpose_of_hearing", "business"),
			Judge:   h.str("judge", "judgeName", "judge_name"),
			Status:  h.str("status", "hearing_status"),
		}
		if t := h.date("date", "hearingDate", "hearing_date"); t != nil {
			entry.Date = *t
		}
		c.HearingHistory = append(c.HearingHistory, entry)
	}

	var orders []court.Order
	for _, o := range data.list("orders", "ordersAndJudgments", "orders_judgments") {
		order := court.Order{
			Name: orDefault(o.str("name", "orderName", "order_name", "type"), "Order"),
			URL:  o.str("url", "pdfUrl", "pdf_url", "downloadUrl"),
		}
		if n, ok := o.num("number", "orderNumber", "order_number", "sno"); ok {
			order.Number = n
		}
		if t := o.date("date", "orderDate", "order_date"); t != nil {
			order.Date = *t
		}
		orders = append(orders, order)
	}
	c.Orders = numberOrders(orders)

	acts := data.section("actsAndSections", "acts_and_sections", "statutes")
	c.Statutes = court.ActsAndSections{
		Acts:     acts.str("acts", "act"),
		Sections: acts.str("sections", "section"),
	}

	details := data.section("caseDetails", "case_details")
	c.Details = court.CaseDetails{
		SubjectMatter:   details.str("subjectMatter", "subject_matter", "subject"),
		CaseDescription: details.str("caseDescription", "case_description", "description"),
		ReliefSought:    details.str("reliefSought", "relief_sought", "prayer"),
		CaseValue:       details.str("caseValue", "case_value"),
		Jurisdiction:    details.str("jurisdiction"),
	}

	finalize(c)
	return c
}
