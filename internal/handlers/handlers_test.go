package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketfoot/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
}

func testRouter() *gin.Engine {
	h := New(nil, nil)
	r := gin.New()
	r.GET("/api/sections", h.ListSections)
	r.GET("/api/user", h.Profile)
	r.GET("/api/reservations", h.ListReservations)
	r.POST("/api/login", h.Login)
	r.POST("/api/session", h.Session)
	r.POST("/api/reservation", h.CreateReservation)
	r.PUT("/api/reservation", h.UpdateReservation)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, models.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope models.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestListSectionsRequiresMatchID(t *testing.T) {
	r := testRouter()

	w, envelope := doJSON(t, r, http.MethodGet, "/api/sections", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "validation_error", envelope.Code)
}

func TestListSectionsReturnsStadiumLayout(t *testing.T) {
	r := testRouter()

	w, envelope := doJSON(t, r, http.MethodGet, "/api/sections?matchId=some-match", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)

	sections, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, sections, 6)

	first, ok := sections[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tribune-nord", first["id"])
	assert.Equal(t, float64(150), first["price"])
}

func TestProfileRequiresToken(t *testing.T) {
	r := testRouter()

	w, envelope := doJSON(t, r, http.MethodGet, "/api/user", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "validation_error", envelope.Code)
}

func TestListReservationsRequiresToken(t *testing.T) {
	r := testRouter()

	w, envelope := doJSON(t, r, http.MethodGet, "/api/reservations", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"email": `},
		{"missing password", `{"email":"a@b.com"}`},
		{"not an email", `{"email":"nope","password":"x"}`},
		{"unknown field", `{"email":"a@b.com","password":"x","admin":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, envelope := doJSON(t, r, http.MethodPost, "/api/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, envelope.Success)
			assert.Equal(t, "validation_error", envelope.Code)
		})
	}
}

func TestCreateReservationRejectsInvalidBody(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing token", `{"matchId":"m1","ticketQuantity":2}`},
		{"zero quantity", `{"token":"t","matchId":"m1","ticketQuantity":0}`},
		{"negative quantity", `{"token":"t","matchId":"m1","ticketQuantity":-3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, envelope := doJSON(t, r, http.MethodPost, "/api/reservation", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, envelope.Success)
			assert.Equal(t, "validation_error", envelope.Code)
		})
	}
}

func TestUpdateReservationRequiresBothFields(t *testing.T) {
	r := testRouter()

	w, envelope := doJSON(t, r, http.MethodPut, "/api/reservation", `{"reservationId":"r1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "validation_error", envelope.Code)
}
