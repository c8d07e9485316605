package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *APIError
		want int
	}{
		{NotFound("route"), http.StatusNotFound},
		{MethodNotAllowed("POST"), http.StatusMethodNotAllowed},
		{New(KindInternal, "boom"), http.StatusInternalServerError},
		{New(KindServiceUnavailable, "later"), http.StatusServiceUnavailable},
		{&APIError{Kind: "unknown"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAPIError_Messages(t *testing.T) {
	assert.Equal(t, "route not found", NotFound("route").Error())
	assert.Equal(t, "method POST not allowed", MethodNotAllowed("POST").Error())
	assert.Equal(t, "3 providers failed", New(KindInternal, "%d providers failed", 3).Error())
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil, KindInternal, "x"))

	cause := errors.New("disk")
	wrapped := From(cause, KindServiceUnavailable, "registry unavailable")
	assert.Equal(t, KindServiceUnavailable, wrapped.Kind)
	assert.Equal(t, "registry unavailable", wrapped.Message)
	assert.True(t, errors.Is(wrapped, cause))

	body, err := json.Marshal(wrapped)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "disk")

	orig := &APIError{Kind: KindNotFound, Message: "x", Details: map[string]string{"kind": "unknown"}}
	wrapped = From(orig, KindInternal, "y")
	assert.Equal(t, orig.Details, wrapped.Details)
}
