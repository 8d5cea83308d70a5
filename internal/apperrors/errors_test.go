package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindCapacity, KindOf(Capacity("not enough tickets")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("match not found")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))

	wrapped := fmt.Errorf("handler: %w", Unauthorized("bad token"))
	assert.Equal(t, KindUnauthorized, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{Capacity("sold out"), http.StatusBadRequest},
		{NotFound("no such match"), http.StatusNotFound},
		{Unauthorized("expired token"), http.StatusUnauthorized},
		{Internal("query failed", errors.New("pq: down")), http.StatusInternalServerError},
		{errors.New("untagged"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestMessageOfMasksUntaggedErrors(t *testing.T) {
	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: password authentication failed")))
	assert.Equal(t, "sold out", MessageOf(Capacity("sold out")))
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("insert failed", cause)
	assert.ErrorIs(t, err, cause)
}
