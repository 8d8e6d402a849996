package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Stock int    `json:"stock" validate:"min=0"`
}

func jsonRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSONBodySuccess(t *testing.T) {
	var payload samplePayload
	err := DecodeJSONBody(jsonRequest(`{"name":"Wild Honey","stock":3}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, "Wild Honey", payload.Name)
	assert.Equal(t, 3, payload.Stock)
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	var payload samplePayload
	err := DecodeJSONBody(jsonRequest(`{"name":"x","bogus":true}`), &payload)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyValidationDetails(t *testing.T) {
	var payload samplePayload
	err := DecodeJSONBody(jsonRequest(`{"stock":-1}`), &payload)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	// Field keys come from json tags, not struct names.
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "stock")
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=20", nil)
	value, err := ParseQueryInt(req, "limit", 10, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 20, value)

	value, err = ParseQueryInt(req, "missing", 10, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	req = httptest.NewRequest(http.MethodGet, "/?limit=500", nil)
	_, err = ParseQueryInt(req, "limit", 10, 1, 100)
	require.Error(t, err)
}

func TestParseQueryList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?category=Fresh+Produce,+Handicrafts,,", nil)
	assert.Equal(t, []string{"Fresh Produce", "Handicrafts"}, ParseQueryList(req, "category"))
	assert.Nil(t, ParseQueryList(req, "brand"))
}
