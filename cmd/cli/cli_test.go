package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/plan-a-meal/internal/auth"
	"github.com/redmonkez12/plan-a-meal/internal/database"
	"github.com/redmonkez12/plan-a-meal/internal/food"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHashPassword(t *testing.T) {
	out, err := execute(t, "hash-password", "s3cret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.True(t, auth.NewArgon2Hasher(auth.DefaultArgon2Params).Verify(hash, "s3cret"))
}

func TestHashPassword_RequiresArgument(t *testing.T) {
	_, err := execute(t, "hash-password")
	assert.Error(t, err)
}

func TestCreateAdmin_RequiresFlags(t *testing.T) {
	_, err := execute(t, "user", "create-admin", "--username", "root")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestRenderTable(t *testing.T) {
	calories := 389.0
	items := []*food.Food{{
		ID:        uuid.MustParse("6f1c7d1e-4b55-4a43-9d0b-2f1b2a2b9c11"),
		Name:      "Oats",
		Nutrients: database.Nutrients{Calories: &calories},
	}}

	var out bytes.Buffer
	renderTable(&out, foodHeaders, foodRows(items))

	rendered := out.String()
	assert.Contains(t, rendered, "Oats")
	assert.Contains(t, rendered, "6f1c7d1e-4b55-4a43-9d0b-2f1b2a2b9c11")
	assert.Contains(t, rendered, "389")
	assert.Contains(t, rendered, "1 ROWS")
}
