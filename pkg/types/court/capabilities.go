package court

// Operation names the seven operations of the provider contract.
type Operation string

const (
	OpGetCaseByCNR     Operation = "getCaseByCNR"
	OpSearchCases      Operation = "searchCases"
	OpGetCauseList     Operation = "getCauseList"
	OpListOrders       Operation = "listOrders"
	OpDownloadOrderPDF Operation = "downloadOrderPdf"
	OpTestConnection   Operation = "testConnection"
	OpGetCapabilities  Operation = "getCapabilities"
)

// Capabilities is the static self-description a provider returns from
// GetCapabilities. It is metadata only: the orchestrator consults it to
// decide whether a provider is even eligible for a request. Implementations
// must return it in O(1) with no I/O.
type Capabilities struct {
	Provider           string      `json:"provider"`
	Type               string      `json:"type"`
	Operations         []Operation `json:"operations"`
	Courts             []CourtType `json:"courts,omitempty"`
	CaseTypes          []string    `json:"caseTypes,omitempty"`
	CNRRule            CNRRule     `json:"cnrRule"`
	MaxConcurrent      int         `json:"maxConcurrent,omitempty"`
	RateLimitPerMinute int         `json:"rateLimitPerMinute,omitempty"`
	RequiresAPIKey     bool        `json:"requiresApiKey,omitempty"`
	MayRequireCaptcha  bool        `json:"mayRequireCaptcha,omitempty"`
}

// Supports reports whether op is listed in the capability set.
func (c Capabilities) Supports(op Operation) bool {
	for _, o := range c.Operations {
		if o == op {
			return true
		}
	}
	return false
}
