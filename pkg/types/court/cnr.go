package court

import "regexp"

// CNRRule is the per-provider CNR validation policy. The strict rule is
// the canonical one; the loose rule survives on the judgments-archive
// provider, which historically accepted 10-20 character identifiers.
// The rules are deliberately not unified: which one a provider enforces is
// part of its documented capabilities (pending product clarification on
// whether the loose rule can be retired).
type CNRRule string

const (
	// CNRRuleStrict accepts exactly 16 characters of letters, digits and
	// hyphens.
	CNRRuleStrict CNRRule = "strict"

	// CNRRuleLoose accepts 10 to 20 alphanumeric characters.
	CNRRuleLoose CNRRule = "loose"
)

var (
	strictCNRPattern = regexp.MustCompile(`^[A-Za-z0-9-]{16}$`)
	looseCNRPattern  = regexp.MustCompile(`^[A-Za-z0-9]{10,20}$`)
)

// Valid reports whether cnr satisfies this rule.
func (r CNRRule) Valid(cnr string) bool {
	switch r {
	case CNRRuleLoose:
		return looseCNRPattern.MatchString(cnr)
	default:
		return strictCNRPattern.MatchString(cnr)
	}
}

// IsValidCNR applies the canonical strict rule.
func IsValidCNR(cnr string) bool {
	return CNRRuleStrict.Valid(cnr)
}
