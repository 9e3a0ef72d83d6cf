package rest

import (
	"errors"
	"fmt"
	"myforum/internal/service"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bare sentinel", service.ErrNotFound, http.StatusNotFound, "not found"},
		{"wrapped reason", fmt.Errorf("%w: post does not exist", service.ErrNotFound), http.StatusNotFound, "post does not exist"},
		{"double wrap", fmt.Errorf("tx: %w", fmt.Errorf("%w: nope", service.ErrForbidden)), http.StatusForbidden, "forbidden"},
		{"bad request", fmt.Errorf("%w: title is required", service.ErrInvalidRequest), http.StatusBadRequest, "title is required"},
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"conflict", fmt.Errorf("%w: taken", service.ErrConflict), http.StatusConflict, "taken"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := classify(tt.err)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantMsg, msg)
		})
	}
}
