package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	CodeOK                 ErrorCode = "OK"
	CodeUnknown            ErrorCode = "UNKNOWN"
	CodeInternal           ErrorCode = "INTERNAL"
	CodeInvalidParam       ErrorCode = "INVALID_PARAM"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeTimeout            ErrorCode = "TIMEOUT"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeNotImplemented     ErrorCode = "NOT_IMPLEMENTED"
)

// Resolution error codes. This set is deliberately closed: the UI layer
// branches on it exhaustively, so new codes require coordination with the
// consuming surfaces.
const (
	// CodeInvalidCNR marks a CNR that fails the provider's validation rule.
	// Never retried without fixing the input.
	CodeInvalidCNR ErrorCode = "INVALID_CNR"

	// CodeInvalidInput marks any other malformed lookup/search input.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeMissingConfig marks an operation attempted against a provider
	// whose endpoint or credential configuration is absent.
	CodeMissingConfig ErrorCode = "MISSING_CONFIG"

	// CodeCaptchaRequired marks an upstream portal demanding human
	// verification. The request is suspended, not failed; retry after the
	// external CAPTCHA step completes.
	CodeCaptchaRequired ErrorCode = "CAPTCHA_REQUIRED"

	// CodeNoData marks a reachable upstream with no matching record.
	// Safe to retry later.
	CodeNoData ErrorCode = "NO_DATA"

	// CodeUpstreamUnavailable marks a network or vendor failure on a
	// single source. The orchestrator cascades before surfacing this.
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"

	// CodeAPIUnavailable marks a vendor search call that failed; search
	// has no cross-vendor cascade.
	CodeAPIUnavailable ErrorCode = "API_UNAVAILABLE"

	// CodeAllProvidersExhausted marks the terminal state after every
	// configured vendor and endpoint failed. No automatic retry.
	CodeAllProvidersExhausted ErrorCode = "ALL_PROVIDERS_EXHAUSTED"

	// CodeUnsupportedOperation marks an operation a provider's
	// capabilities do not cover.
	CodeUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"

	// CodeUnknownProviderType is surfaced only by the provider factory.
	CodeUnknownProviderType ErrorCode = "UNKNOWN_PROVIDER_TYPE"

	// CodeUpstreamParseError marks an upstream response whose shape was
	// unrecognizable even to the total normalizers' envelope checks.
	CodeUpstreamParseError ErrorCode = "UPSTREAM_PARSE_ERROR"
)

// HTTPStatus maps error codes to HTTP status codes for the API layer.
var HTTPStatus = map[ErrorCode]int{
	CodeOK:                 http.StatusOK,
	CodeInternal:           http.StatusInternalServerError,
	CodeInvalidParam:       http.StatusBadRequest,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodeNotFound:           http.StatusNotFound,
	CodeConflict:           http.StatusConflict,
	CodeTimeout:            http.StatusGatewayTimeout,
	CodeServiceUnavailable: http.StatusServiceUnavailable,
	CodeNotImplemented:     http.StatusNotImplemented,

	CodeInvalidCNR:            http.StatusBadRequest,
	CodeInvalidInput:          http.StatusBadRequest,
	CodeMissingConfig:         http.StatusServiceUnavailable,
	CodeCaptchaRequired:       http.StatusConflict,
	CodeNoData:                http.StatusNotFound,
	CodeUpstreamUnavailable:   http.StatusBadGateway,
	CodeAPIUnavailable:        http.StatusBadGateway,
	CodeAllProvidersExhausted: http.StatusBadGateway,
	CodeUnsupportedOperation:  http.StatusNotImplemented,
	CodeUnknownProviderType:   http.StatusBadRequest,
	CodeUpstreamParseError:    http.StatusBadGateway,
}

// StatusFor returns the HTTP status for a code, defaulting to 500 for
// codes outside the map.
func StatusFor(code ErrorCode) int {
	if s, ok := HTTPStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Retryable reports whether a failure with this code may succeed on a
// plain retry without operator or user intervention.
func Retryable(code ErrorCode) bool {
	switch code {
	case CodeNoData, CodeUpstreamUnavailable, CodeAPIUnavailable, CodeTimeout:
		return true
	}
	return false
}
