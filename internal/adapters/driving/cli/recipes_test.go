package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

func TestListCmd_Flags(t *testing.T) {
	flag := listCmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, OutputTable, flag.DefValue)
}

func TestListCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No recipes yet.")
}

func TestListCmd_Table(t *testing.T) {
	c := setupTestServices(t)
	seed(t, c, "Soup", "water\nsalt")
	seed(t, c, "Tea", "leaves")

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "RECIPE")
	assert.Contains(t, out, "Soup")
	assert.Contains(t, out, "water salt")
	assert.Less(t, strings.Index(out, "Soup"), strings.Index(out, "Tea"))
}

func TestListCmd_JSON(t *testing.T) {
	c := setupTestServices(t)
	r := seed(t, c, "Soup", "water")

	out, err := execute(t, "list", "--output", "json")

	require.NoError(t, err)
	var got []domain.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []domain.Recipe{r}, got)
}

func TestListCmd_YAML(t *testing.T) {
	c := setupTestServices(t)
	r := seed(t, c, "Soup", "water")

	out, err := execute(t, "list", "-o", "yaml")

	require.NoError(t, err)
	var got []domain.Recipe
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []domain.Recipe{r}, got)
}

func TestListCmd_UnknownFormat(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "list", "-o", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestListCmd_BackendDown(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "list", "--api-url", "http://127.0.0.1:1/api")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestAddCmd(t *testing.T) {
	c := setupTestServices(t)

	out, err := execute(t, "add", "--name", "Soup", "--ingredients", "water")

	require.NoError(t, err)
	assert.Contains(t, out, "Added recipe")
	list, err := c.List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Soup", list[0].Name)
}

func TestAddCmd_MissingField(t *testing.T) {
	c := setupTestServices(t)

	_, err := execute(t, "add", "--name", "Soup")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "required")
	list, err := c.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateCmd_KeepsUnsetFields(t *testing.T) {
	c := setupTestServices(t)
	r := seed(t, c, "Soup", "water")

	out, err := execute(t, "update", r.ID, "--name", "Stew")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated recipe "+r.ID)
	got, err := c.Get(t.Context(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stew", got.Name)
	assert.Equal(t, "water", got.Ingredients)
}

func TestUpdateCmd_UnknownID(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "update", "missing", "--name", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCmd_RequiresID(t *testing.T) {
	_, err := execute(t, "update")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestDeleteCmd(t *testing.T) {
	c := setupTestServices(t)
	r := seed(t, c, "Soup", "water")
	seed(t, c, "Tea", "leaves")

	out, err := execute(t, "delete", r.ID)

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted recipe "+r.ID)
	list, err := c.List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tea", list[0].Name)
}

func TestDeleteCmd_UnknownID(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "delete", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}
