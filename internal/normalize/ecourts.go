package normalize

import (
	"strings"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// ECourts normalizes a case document from the official e-Courts API. Both
// endpoints return the same flat shape, though older records use a
// different set of key names for dates and parties.
func ECourts(doc Document) *court.CanonicalCase {
	c := &court.CanonicalCase{
		CNR:           doc.str("cnr", "cnrNumber", "cino"),
		CaseNumber:    doc.str("caseNumber", "case_no", "registrationNumber", "reg_no"),
		FilingNumber:  doc.str("filingNumber", "filing_no"),
		Title:         doc.str("title", "caseTitle", "petitionerVsRespondent"),
		Court:         doc.str("court", "courtName", "establishment"),
		CourtLocation: doc.str("courtLocation", "district", "stateName"),
		HallNumber:    doc.str("hallNumber", "courtNumber", "court_no"),
		CaseType:      doc.str("caseType", "case_type", "typeName"),
		CaseStatus:    doc.str("caseStatus", "status", "caseStage"),

		FilingDate:       doc.date("filingDate", "date_of_filing", "dateOfFiling"),
		RegistrationDate: doc.date("registrationDate", "date_of_registration"),
		FirstHearingDate: doc.date("firstHearingDate", "first_hearing_date"),
		LastHearingDate:  doc.date("lastHearingDate", "last_hearing_date"),
		NextHearingDate:  doc.date("nextHearingDate", "next_hearing_date", "date_next_list"),
		DecisionDate:     doc.date("decisionDate", "date_of_decision", "disposalDate"),
	}

	for _, p := range doc.list("parties", "petitioners") {
		c.Parties = append(c.Parties, court.Party{
			Name: p.str("name", "partyName"),
			Type: partyType(p.str("type", "partyType"), court.PartyPetitioner),
		})
	}
	for _, p := range doc.list("respondents") {
		c.Parties = append(c.Parties, court.Party{
			Name: p.str("name", "partyName"),
			Type: court.PartyRespondent,
		})
	}
	for _, name := range doc.strs("petitionerNames") {
		c.Parties = append(c.Parties, court.Party{Name: name, Type: court.PartyPetitioner})
	}
	for _, name := range doc.strs("respondentNames") {
		c.Parties = append(c.Parties, court.Party{Name: name, Type: court.PartyRespondent})
	}

	for _, a := range doc.list("advocates", "lawyers") {
		c.Advocates = append(c.Advocates, court.Advocate{
			Name:      a.str("name", "advocateName"),
			Type:      a.str("type", "side"),
			BarNumber: a.str("barNumber", "bar_registration_no"),
		})
	}

	for _, j := range doc.list("judges") {
		c.Judges = append(c.Judges, court.Judge{
			Name:        j.str("name", "judgeName"),
			Designation: j.str("designation"),
			Court:       j.str("court", "courtName"),
		})
	}
	if c.Judges == nil {
		if name := doc.str("judge", "courtNumberAndJudge"); name != "" {
			c.Judges = append(c.Judges, court.Judge{Name: name})
		}
	}

	for _, h := range doc.list("hearingHistory", "hearings", "caseHistory") {
		entry := court.HearingEntry{
			Purpose: h.str("purpose", "purposeOfHearing", "business"),
			Judge:   h.str("judge", "judgeName"),
			Status:  h.str("status", "hearingStatus"),
		}
		if t := h.date("date", "hearingDate", "businessOnDate"); t != nil {
			entry.Date = *t
		}
		c.HearingHistory = append(c.HearingHistory, entry)
	}

	var orders []court.Order
	for _, o := range doc.list("orders", "interimOrders", "finalOrders") {
		order := court.Order{
			Name: orDefault(o.str("name", "orderName", "orderType"), "Order"),
			URL:  o.str("url", "orderUrl", "pdfUrl"),
		}
		if n, ok := o.num("number", "orderNumber", "order_no"); ok {
			order.Number = n
		}
		if t := o.date("date", "orderDate"); t != nil {
			order.Date = *t
		}
		orders = append(orders, order)
	}
	c.Orders = numberOrders(orders)

	acts := doc.section("actsAndSections", "acts")
	c.Statutes = court.ActsAndSections{
		Acts:     acts.str("acts", "act", "underActs"),
		Sections: acts.str("sections", "section", "underSections"),
	}
	if c.Statutes.Acts == "" {
		c.Statutes.Acts = doc.str("underActs", "act")
		c.Statutes.Sections = doc.str("underSections", "section")
	}

	details := doc.section("caseDetails", "details")
	c.Details = court.CaseDetails{
		SubjectMatter:   details.str("subjectMatter", "subject"),
		CaseDescription: details.str("caseDescription", "description"),
		ReliefSought:    details.str("reliefSought", "relief"),
		CaseValue:       details.str("caseValue", "valuation"),
		Jurisdiction:    details.str("jurisdiction"),
	}

	finalize(c)
	return c
}

// partyType maps an upstream party-type string onto the canonical
// vocabulary, preserving whichever of the two procedural vocabularies the
// source used. Unrecognized values get the provided default.
func partyType(raw string, def court.PartyType) court.PartyType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PLAINTIFF":
		return court.PartyPlaintiff
	case "PETITIONER", "APPELLANT", "COMPLAINANT":
		return court.PartyPetitioner
	case "DEFENDANT":
		return court.PartyDefendant
	case "RESPONDENT", "OPPOSITE PARTY":
		return court.PartyRespondent
	}
	return def
}

// finalize applies the invariants shared by every normalizer: sentinel
// display values, a synthesized case number when none exists, and a title
// composed from the parties when the source omits one.
func finalize(c *court.CanonicalCase) {
	if c.CaseNumber == "" {
		if c.FilingNumber != "" {
			c.CaseNumber = c.FilingNumber
		} else {
			c.CaseNumber = fallbackCaseNumber()
		}
	}
	if c.Title == "" {
		c.Title = composeTitle(c.Petitioner(), c.Respondent())
	}
	c.Court = orDefault(c.Court, court.UnknownCourt)
}
