package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBody_JSONObject(t *testing.T) {
	r := ParseBody(`{"access_token":"abc","token_type":"bearer"}`)
	require.Equal(t, KindJSON, r.Kind())

	tok, ok := r.StringField("access_token")
	require.True(t, ok)
	assert.Equal(t, "abc", tok)

	assert.True(t, r.HasField("token_type"))
	assert.False(t, r.HasField("missing"))
	assert.False(t, r.IsArray())
}

func TestParseBody_JSONArray(t *testing.T) {
	r := ParseBody(`[{"id":1},{"id":2}]`)
	require.Equal(t, KindJSON, r.Kind())
	assert.True(t, r.IsArray())

	// field lookups only apply to objects
	_, ok := r.Field("id")
	assert.False(t, ok)
}

func TestParseBody_MalformedFallsBackToRaw(t *testing.T) {
	body := "Internal Server Error"
	r := ParseBody(body)
	require.Equal(t, KindRaw, r.Kind())
	assert.Equal(t, body, r.Body())
	assert.Equal(t, body, r.Verbatim())
	assert.False(t, r.HasField("anything"))
}

func TestParseBody_EmptyBodyIsRaw(t *testing.T) {
	r := ParseBody("")
	assert.Equal(t, KindRaw, r.Kind())
	assert.Equal(t, "", r.Verbatim())
}

func TestStringField_NonStringValue(t *testing.T) {
	r := ParseBody(`{"id":42}`)
	_, ok := r.StringField("id")
	assert.False(t, ok)
	assert.True(t, r.HasField("id"))
}

func TestVerbatim_CompactsJSON(t *testing.T) {
	r := ParseBody("{\n  \"error\": \"unauthorized\"\n}")
	assert.Equal(t, `{"error":"unauthorized"}`, r.Verbatim())
}
