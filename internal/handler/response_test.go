package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"nifresolver/internal/handler"
	"nifresolver/internal/service"

	"github.com/stretchr/testify/require"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{name: "invalid", err: service.ErrInvalid, status: http.StatusBadRequest, expected: "invalid path"},
		{name: "wrapped_invalid", err: fmt.Errorf("%w: empty", service.ErrInvalid), status: http.StatusBadRequest, expected: "invalid path"},
		{name: "default", err: errors.New("boom"), status: http.StatusInternalServerError, expected: "internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(newTestEcho(), "/")

			err := handler.WriteServiceError(c, tc.err)
			require.NoError(t, err)

			var resp map[string]string
			assertJSONResponse(t, rec, tc.status, &resp)
			require.Equal(t, tc.expected, resp["error"])
		})
	}
}

func TestErrorResponse(t *testing.T) {
	c, rec := newTestContext(newTestEcho(), "/")

	err := handler.Error(c, http.StatusBadRequest, "bad request")
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "bad request", resp["error"])
}
