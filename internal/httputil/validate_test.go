package httputil

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required,email,max=254"`
	Nickname *string `json:"nick_name,omitempty" validate:"omitempty,min=1"`
}

func TestValidateStruct(t *testing.T) {
	empty := ""
	longEmail := strings.Repeat("a", 250) + "@example.com"

	tests := []struct {
		name    string
		in      signup
		field   string
		value   any
		detail  string
		wantErr bool
	}{
		{name: "valid", in: signup{Username: "ana", Email: "ana@example.com"}},
		{"missing username", signup{Email: "ana@example.com"}, "username", nil, "username is required", true},
		{"bad email", signup{Username: "ana", Email: "nope"}, "email", "nope", "invalid email format", true},
		{"long email", signup{Username: "ana", Email: longEmail}, "email", longEmail, "email must be at most 254 characters", true},
		{"empty pointer", signup{Username: "ana", Email: "ana@example.com", Nickname: &empty}, "nick_name", nil, "nick_name is required", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
			assert.Equal(t, TitleValidation, apiErr.Title)
			assert.Equal(t, tt.detail, apiErr.Detail)
			assert.Equal(t, map[string]any{tt.field: tt.value}, apiErr.Context)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("email", "ana@example.com", "email"))

	err := ValidateVar("email", "ana@", "email")
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "invalid email format", apiErr.Detail)
	assert.Equal(t, map[string]any{"email": "ana@"}, apiErr.Context)
}

func TestValidateStruct_NonStruct(t *testing.T) {
	err := ValidateStruct("not a struct")
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}
