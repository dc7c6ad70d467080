package kafka

// Topic names for resolution lifecycle events. Downstream consumers
// (billing, alerting, the audit trail) subscribe by topic; payloads are
// EventEnvelope JSON.
const (
	// TopicCaseResolved carries successfully resolved canonical cases.
	TopicCaseResolved = "courtdata.case.resolved"

	// TopicResolutionFailed carries terminal lookup failures, including
	// cascade exhaustion.
	TopicResolutionFailed = "courtdata.case.resolution_failed"

	// TopicActionRequired carries lookups suspended for captcha input.
	TopicActionRequired = "courtdata.case.action_required"

	// TopicAuditLog carries the append-only audit trail of every inbound
	// operation.
	TopicAuditLog = "courtdata.audit.log"
)
