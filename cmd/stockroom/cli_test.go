package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// cliEnv returns persistent flag arguments pointing the CLI at temp config
// and data locations, plus the data document path.
func cliEnv(t *testing.T) ([]string, string) {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "stock.xml")
	args := []string{
		"--config-dir", filepath.Join(dir, "config"),
		"--data-path", dataPath,
	}
	return args, dataPath
}

// runCLI executes the root command with args plus env flags and returns
// captured stdout.
func runCLI(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()

	// Flag values persist across Execute calls on one command tree, so
	// reset the one that is not always passed explicitly.
	flagJSON = false
	rootCmd.SetArgs(append(args, env...))

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := rootCmd.Execute()

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), execErr
}

func TestVersionCommand(t *testing.T) {
	env, _ := cliEnv(t)
	out, err := runCLI(t, env, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stockroom")
}

func TestInitCommand(t *testing.T) {
	env, dataPath := cliEnv(t)
	out, err := runCLI(t, env, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized successfully")

	_, err = os.Stat(dataPath)
	assert.NoError(t, err, "init should create the data document")
}

func TestCategoryCommands(t *testing.T) {
	env, _ := cliEnv(t)

	out, err := runCLI(t, env, "category", "add", "--name", "Tools", "--description", "Hand tools")
	require.NoError(t, err)
	assert.Contains(t, out, "Created category 1")

	_, err = runCLI(t, env, "category", "add", "--name", "Tools")
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	out, err = runCLI(t, env, "category", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Tools")

	out, err = runCLI(t, env, "category", "update", "1", "--name", "Hardware")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated category 1")

	out, err = runCLI(t, env, "category", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Hardware")
	assert.Contains(t, out, "Hand tools", "description survives a name-only update")

	out, err = runCLI(t, env, "category", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Hardware")
	assert.Contains(t, out, "Total: 1")

	out, err = runCLI(t, env, "category", "with-product-count")
	require.NoError(t, err)
	assert.Contains(t, out, "Hardware")

	out, err = runCLI(t, env, "category", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted category 1")

	_, err = runCLI(t, env, "category", "get", "1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestProductCommands(t *testing.T) {
	env, _ := cliEnv(t)

	_, err := runCLI(t, env, "category", "add", "--name", "Tools")
	require.NoError(t, err)

	out, err := runCLI(t, env, "product", "add",
		"--name", "Hammer", "--price", "9.99", "--quantity", "5",
		"--category-id", "1", "--supplier-id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Created product 1")

	out, err = runCLI(t, env, "product", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Hammer")
	assert.Contains(t, out, "9.99")

	_, err = runCLI(t, env, "product", "add", "--name", "Drill", "--price", "cheap")
	require.Error(t, err, "unparseable price is rejected")

	out, err = runCLI(t, env, "product", "by-category", "Tools")
	require.NoError(t, err)
	assert.Contains(t, out, "Hammer")

	out, err = runCLI(t, env, "product", "by-category", "Nope")
	require.NoError(t, err)
	assert.Contains(t, out, "No products found.")

	out, err = runCLI(t, env, "product", "by-max-quantity", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Hammer")

	out, err = runCLI(t, env, "product", "by-max-quantity", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No products found.", "threshold is strict less-than")

	out, err = runCLI(t, env, "product", "details", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No orders reference this product.")

	out, err = runCLI(t, env, "product", "most-ordered", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No products found.", "no orders yet")
}

func TestSupplierCommands(t *testing.T) {
	env, _ := cliEnv(t)

	out, err := runCLI(t, env, "supplier", "add",
		"--name", "Acme", "--contact-person", "Ana", "--email", "ana@acme.test")
	require.NoError(t, err)
	assert.Contains(t, out, "Created supplier 1")

	_, err = runCLI(t, env, "product", "add",
		"--name", "Hammer", "--price", "9.99", "--quantity", "20", "--supplier-id", "1")
	require.NoError(t, err)

	out, err = runCLI(t, env, "supplier", "with-min-quantity", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme")

	out, err = runCLI(t, env, "supplier", "with-min-quantity", "21")
	require.NoError(t, err)
	assert.Contains(t, out, "No suppliers found.")

	out, err = runCLI(t, env, "supplier", "update", "1", "--phone", "555-0100")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated supplier 1")

	out, err = runCLI(t, env, "supplier", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "555-0100")
	assert.Contains(t, out, "Ana", "contact survives a phone-only update")

	out, err = runCLI(t, env, "supplier", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted supplier 1")
}

func TestOrderCommands(t *testing.T) {
	env, _ := cliEnv(t)

	out, err := runCLI(t, env, "order", "add",
		"--product-id", "1", "--quantity", "2", "--date", "2024-03-01",
		"--supplier-id", "1", "--status", "Pending")
	require.NoError(t, err)
	assert.Contains(t, out, "Created order 1")

	_, err = runCLI(t, env, "order", "add",
		"--product-id", "1", "--date", "2024-03-02", "--status", "Misplaced")
	assert.ErrorIs(t, err, types.ErrInvalidStatus)

	out, err = runCLI(t, env, "order", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "2024-03-01")

	out, err = runCLI(t, env, "order", "by-supplier", "--supplier-id", "1", "--status", "Pending")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 1 order(s)")

	out, err = runCLI(t, env, "order", "by-supplier", "--supplier-id", "1", "--status", "Shipped")
	require.NoError(t, err)
	assert.Contains(t, out, "No orders found.")

	out, err = runCLI(t, env, "order", "by-date", "--start", "2024-03-01", "--end", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 1 order(s)", "range bounds are inclusive")

	out, err = runCLI(t, env, "order", "update", "1", "--status", "Shipped")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated order 1")

	out, err = runCLI(t, env, "order", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Shipped")

	out, err = runCLI(t, env, "order", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted order 1")
	_, err = runCLI(t, env, "order", "get", "1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestJSONOutput(t *testing.T) {
	env, _ := cliEnv(t)

	out, err := runCLI(t, env, "category", "add", "--name", "Tools", "--json")
	require.NoError(t, err)

	var created types.Category
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Tools", created.Name)

	out, err = runCLI(t, env, "category", "list", "--json")
	require.NoError(t, err)

	var listed []types.Category
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Tools", listed[0].Name)
}
