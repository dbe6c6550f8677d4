package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
)

func parse(t *testing.T, body string) (Patch, error) {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return ParsePatch(raw)
}

func TestParsePatch(t *testing.T) {
	patch, err := parse(t, `{"uuid":"ignored","username":"new","first_name":null,"last_name":"L","is_admin":true}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"first_name", "is_admin", "last_name", "username"}, patch.Columns())
	assert.Equal(t, "new", patch["username"])
	assert.Nil(t, patch["first_name"])
	assert.Equal(t, "L", *patch["last_name"].(*string))
	assert.Equal(t, true, patch["is_admin"])
}

func TestParsePatch_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null username", `{"username":null}`},
		{"empty password", `{"password":""}`},
		{"numeric email", `{"email":5}`},
		{"invalid email", `{"email":"nope"}`},
		{"string admin flag", `{"is_admin":"yes"}`},
		{"null admin flag", `{"is_admin":null}`},
		{"numeric first name", `{"first_name":1}`},
		{"unknown field", `{"nickname":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.body)

			var apiErr *httputil.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, httputil.TitleValidation, apiErr.Title)
		})
	}
}

func TestParsePatch_EmptyBody(t *testing.T) {
	patch, err := parse(t, `{}`)
	require.NoError(t, err)
	assert.Empty(t, patch.Columns())
}
