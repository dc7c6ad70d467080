package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	e := New(CodeInvalidCNR, "cnr must be 16 characters")
	assert.Equal(t, "[INVALID_CNR] cnr must be 16 characters", e.Error())

	withDetail := e.WithDetail("got 12 characters")
	assert.Equal(t, "[INVALID_CNR] cnr must be 16 characters: got 12 characters", withDetail.Error())
	// Original is untouched.
	assert.Empty(t, e.Detail)
}

func TestWrapPreservesChain(t *testing.T) {
	root := fmt.Errorf("connection refused")
	wrapped := Wrap(root, CodeUpstreamUnavailable, "ecourts endpoint A")

	require.NotNil(t, wrapped)
	assert.Equal(t, CodeUpstreamUnavailable, wrapped.Code)
	assert.ErrorIs(t, wrapped, root)
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "should be nil"))
}

func TestWrapUnknownKeepsInnerCode(t *testing.T) {
	inner := New(CodeCaptchaRequired, "captcha page detected")
	outer := Wrap(inner, CodeUnknown, "high court portal")
	assert.Equal(t, CodeCaptchaRequired, outer.Code)
}

func TestIsCodeWalksChain(t *testing.T) {
	inner := New(CodeNoData, "no matching record")
	outer := Wrap(inner, CodeUpstreamUnavailable, "vendor call")

	assert.True(t, IsCode(outer, CodeUpstreamUnavailable))
	assert.True(t, IsCode(outer, CodeNoData))
	assert.False(t, IsCode(outer, CodeInvalidCNR))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, CodeMissingConfig, GetCode(New(CodeMissingConfig, "no api key")))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(CodeInvalidCNR))
	assert.Equal(t, http.StatusBadGateway, StatusFor(CodeAllProvidersExhausted))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(ErrorCode("BOGUS")))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(CodeNoData))
	assert.True(t, Retryable(CodeUpstreamUnavailable))
	assert.False(t, Retryable(CodeInvalidCNR))
	assert.False(t, Retryable(CodeAllProvidersExhausted))
	assert.False(t, Retryable(CodeCaptchaRequired))
}
