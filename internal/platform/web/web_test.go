package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medirecord/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	State string `json:"state" validate:"omitempty,oneof=tomado omitido"`
	Days  int    `json:"days" validate:"gte=0"`
}

func TestDecodeJSON_Validates(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"state":"otro","days":-1}`))

	var req sampleRequest
	err := DecodeJSON(r, &req, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "state must be one of [tomado omitido]")
	assert.Contains(t, err.Error(), "days must be >= 0")
}

func TestDecodeJSON_UnknownFieldAndEmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))
	var req sampleRequest
	assert.ErrorIs(t, DecodeJSON(r, &req, false), apperr.ErrInvalidInput)

	empty := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	var opt struct {
		Notes string `json:"notes"`
	}
	assert.NoError(t, DecodeJSON(empty, &opt, true))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperr.InvalidState("medication is inactive"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperr.CodeInvalidState, body.Error.Code)
	assert.Equal(t, "medication is inactive", body.Error.Message)

	rec = httptest.NewRecorder()
	WriteError(rec, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
