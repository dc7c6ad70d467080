package court

import "strings"

// ClassifyCNR infers the court hierarchy tier a CNR belongs to from the
// registrar codes embedded in it (DLHC, KAHC, DLSC, NCLT, ...). The
// codes are not formally documented but are stable in practice. Checks
// run in a fixed precedence: high-court markers win over supreme-court
// markers when a CNR carries both, and anything unrecognized is treated
// as a district court, the tier that issues the vast majority of CNRs.
// The classification is advisory; it picks the first endpoint to try and
// never blocks a request.
func ClassifyCNR(cnr string) CourtType {
	upper := strings.ToUpper(cnr)
	switch {
	case strings.Contains(upper, "HC"):
		return CourtHigh
	case strings.Contains(upper, "SC"):
		return CourtSupreme
	case strings.Contains(upper, "NCLT"), strings.Contains(upper, "NCLAT"):
		return CourtNCLT
	case strings.Contains(upper, "CONSUMER"), strings.HasPrefix(upper, "CF"):
		return CourtConsumer
	case strings.HasPrefix(upper, "CAT"):
		return CourtCAT
	}
	return CourtDistrict
}
