package menucmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runCommand runs the app with args and returns what it wrote
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	app := &cli.App{
		Name:     "pizzamenu",
		Writer:   &out,
		Action:   Show,
		Flags:    ShowCmd.Flags,
		Commands: []*cli.Command{ShowCmd, CheesesCmd, ToppingsCmd},
		// keep cli.Exit from calling os.Exit
		ExitErrHandler: func(_ *cli.Context, _ error) {},
	}
	err := app.Run(append([]string{"pizzamenu"}, args...))
	return out.String(), err
}

func TestShowHouseMenu(t *testing.T) {
	t.Setenv("MENU_FILE", "")

	for _, args := range [][]string{nil, {"show"}} {
		output, err := runCommand(t, args...)
		require.NoError(t, err)
		assert.Contains(t, output, "menu:")
		assert.Contains(t, output, "This pizza is made with Mozzarella cheese, and has Ham, Pineapple on it.")
		assert.Contains(t, output, "Meat Lovers' Pizza is made with Mozzarella, Parmesan cheese, and has Ham, Meatball, Pepperoni, Sausage, Bacon on it.")
	}
}

func TestShowMenuFile(t *testing.T) {
	t.Setenv("MENU_FILE", "")
	dir := t.TempDir()

	t.Run("should describe pizzas from file", func(t *testing.T) {
		path := filepath.Join(dir, "menu.toml")
		content := `
[[pizza]]
name = "Plain"
toppings = []
cheeses = []

[[pizza]]
toppings = ["Onion"]
cheeses = [{ name = "Feta", animal_origin = "sheep" }]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		output, err := runCommand(t, "show", "--menu", path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(output), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Plain is made with  cheese, and has no toppings on it.", strings.TrimSpace(lines[1]))
		assert.Equal(t, "This pizza is made with Feta cheese, and has Onion on it.", strings.TrimSpace(lines[2]))
	})

	t.Run("should report empty menu", func(t *testing.T) {
		path := filepath.Join(dir, "empty.toml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		output, err := runCommand(t, "show", "-m", path)
		require.NoError(t, err)
		assert.Contains(t, output, "No pizzas found.")
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		_, err := runCommand(t, "show", "--menu", filepath.Join(dir, "missing.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Error loading menu")
	})
}

func TestListCommands(t *testing.T) {
	output, err := runCommand(t, "cheeses")
	require.NoError(t, err)
	assert.Contains(t, output, "Mozzarella cheese is made from Italian buffalo milk and has 22.00% fat milk.")
	assert.Contains(t, output, "Parmesan cheese is made from cow milk and has 32.00% fat milk.")

	output, err = runCommand(t, "toppings")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Pepperoni", strings.TrimSpace(lines[1]))
	assert.Equal(t, "Bacon", strings.TrimSpace(lines[10]))
}
