package court

// CourtType identifies which court hierarchy a case belongs to. Paid
// vendors template their endpoints by court type, so the orchestrator's
// cascade iterates these values in a fixed order.
type CourtType string

const (
	CourtDistrict CourtType = "district"
	CourtHigh     CourtType = "high"
	CourtSupreme  CourtType = "supreme"
	CourtNCLT     CourtType = "nclt"
	CourtCAT      CourtType = "cat"
	CourtConsumer CourtType = "consumer"
)

// Slug returns the vendor URL path segment for this court type, e.g.
// "{base}/api/core/live/high-court/case".
func (t CourtType) Slug() string {
	switch t {
	case CourtDistrict:
		return "district-court"
	case CourtHigh:
		return "high-court"
	case CourtSupreme:
		return "supreme-court"
	case CourtNCLT:
		return "nclt"
	case CourtCAT:
		return "cat"
	case CourtConsumer:
		return "consumer-forum"
	}
	return "district-court"
}

// cascadeOrder is the fixed vendor-endpoint cascade: district, then high,
// supreme, tribunal, consumer. There is no adaptive reordering based on
// latency or success history; attempts are strictly sequential.
var cascadeOrder = []CourtType{
	CourtDistrict,
	CourtHigh,
	CourtSupreme,
	CourtNCLT,
	CourtCAT,
	CourtConsumer,
}

// CascadeOrder returns the full fixed endpoint order.
func CascadeOrder() []CourtType {
	out := make([]CourtType, len(cascadeOrder))
	copy(out, cascadeOrder)
	return out
}

// CascadeAfter returns the fixed cascade order with the already-attempted
// court type removed, preserving relative order of the rest.
func CascadeAfter(tried CourtType) []CourtType {
	out := make([]CourtType, 0, len(cascadeOrder)-1)
	for _, t := range cascadeOrder {
		if t != tried {
			out = append(out, t)
		}
	}
	return out
}
