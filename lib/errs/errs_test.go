package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponse_KnownVariants(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", ValidationError{Message: "Price is required"}, http.StatusBadRequest, "Price is required"},
		{"malformed input", MalformedInputError{Message: "Invalid JSON in request body"}, http.StatusBadRequest, "Invalid JSON in request body"},
		{"unauthorized with message", UnauthorizedError{Message: "Invalid or missing x-api-key"}, http.StatusUnauthorized, "Invalid or missing x-api-key"},
		{"unauthorized default message", UnauthorizedError{}, http.StatusUnauthorized, "Unauthorized"},
		{"internal default message", InternalError{Err: errors.New("dynamo down")}, http.StatusInternalServerError, "Internal Server Error"},
		{"internal custom message", InternalError{Message: "upstream unavailable"}, http.StatusInternalServerError, "upstream unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := Response(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestResponse_UnknownErrorIsCoerced(t *testing.T) {
	status, message := Response(errors.New("connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", message)
}

func TestResponse_WrappedHTTPErrorIsUnwrapped(t *testing.T) {
	wrapped := fmt.Errorf("create ad: %w", ValidationError{Message: "Title is required and must be a string"})
	status, message := Response(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Title is required and must be a string", message)
}

func TestInternalError_CauseIsNotExposed(t *testing.T) {
	cause := errors.New("AccessDeniedException: arn:aws:iam::123")
	err := InternalError{Err: cause}
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}
