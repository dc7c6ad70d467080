package normalize

import (
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// CauseList extracts daily listing rows from an upstream response. All
// JSON-speaking sources wrap the rows in one of a few well-known keys;
// serial numbers are taken from the source when present and assigned
// positionally otherwise.
func CauseList(doc Document) []court.CauseListEntry {
	container := doc.section("data", "result")
	if len(container) == 0 {
		container = doc
	}
	rows := container.list("causeList", "cause_list", "cases", "entries")

	entries := make([]court.CauseListEntry, 0, len(rows))
	for i, row := range rows {
		entry := court.CauseListEntry{
			SerialNumber: i + 1,
			CNR:          row.str("cnr", "cnr_number", "cnrNumber"),
			CaseNumber:   row.str("caseNumber", "case_number", "case_no"),
			Title:        row.str("title", "case_title", "partyDetail"),
			Court:        row.str("court", "court_name", "courtName"),
			HallNumber:   row.str("hallNumber", "hall_number", "court_no"),
			Judge:        row.str("judge", "judge_name", "judgeName"),
			Purpose:      row.str("purpose", "purpose_of_hearing"),
		}
		if n, ok := row.num("serialNumber", "serial_number", "sno"); ok {
			entry.SerialNumber = n
		}
		entries = append(entries, entry)
	}
	return entries
}

// SearchResults extracts a page of case documents from a vendor search
// response, normalizing each row with rowFn.
func SearchResults(doc Document, rowFn func(Document) *court.CanonicalCase) *court.SearchResult {
	container := doc.section("data", "result")
	if len(container) == 0 {
		container = doc
	}
	rows := container.list("cases", "results", "records")

	out := &court.SearchResult{Cases: make([]court.CanonicalCase, 0, len(rows))}
	for _, row := range rows {
		out.Cases = append(out.Cases, *rowFn(row))
	}
	out.Total = len(out.Cases)
	if n, ok := container.num("total", "totalCount", "total_count"); ok {
		out.Total = n
	}
	return out
}
