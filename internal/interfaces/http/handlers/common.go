// Package handlers contains the HTTP handlers of the public API. Every
// response body is JSON except order-document downloads, and every error
// is an application error code mapped onto a status through the shared
// table; handlers never leak raw upstream errors.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
)

// errorBody is the uniform JSON error shape.
type errorBody struct {
	Success bool             `json:"success"`
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps err onto its HTTP status and writes the uniform error
// body. Unrecognized errors become 500 with the unknown code.
func writeError(w http.ResponseWriter, logger logging.Logger, err error) {
	code := errors.GetCode(err)
	status := errors.StatusFor(code)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", logging.Err(err))
	}
	writeJSON(w, status, errorBody{Code: code, Message: err.Error()})
}

// decodeBody decodes a JSON request body into dst with unknown fields
// rejected, so client typos surface instead of silently dropping
// filters.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrap(err, errors.CodeInvalidParam, "malformed request body")
	}
	return nil
}
