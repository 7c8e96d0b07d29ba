package menucmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/menu"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	nameColor   = color.New(color.FgMagenta).SprintFunc()
	dimColor    = color.New(color.FgHiBlack).SprintFunc()
)

// ShowCmd prints the description of every pizza on a menu.
var ShowCmd = &cli.Command{
	Name:    "show",
	Aliases: []string{"ls"},
	Usage:   "Describes every pizza on the menu",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "menu",
			Aliases: []string{"m"},
			Usage:   "TOML menu file, the house menu when empty",
			EnvVars: []string{"MENU_FILE"},
		},
	},
	Action: Show,
}

// CheesesCmd prints the catalog cheeses.
var CheesesCmd = &cli.Command{
	Name:   "cheeses",
	Usage:  "Lists the catalog cheeses",
	Action: ListCheeses,
}

// ToppingsCmd prints every topping.
var ToppingsCmd = &cli.Command{
	Name:   "toppings",
	Usage:  "Lists the available toppings",
	Action: ListToppings,
}

// Show loads the menu named by --menu and writes one description per line
func Show(c *cli.Context) error {
	m := menu.Default()
	if path := c.String("menu"); path != "" {
		loaded, err := menu.Load(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error loading menu %s: %v", path, err), 1)
		}
		m = loaded
	}

	out := c.App.Writer
	fmt.Fprintln(out, headerColor("menu:"))
	if len(m.Items) == 0 {
		fmt.Fprintln(out, dimColor("No pizzas found."))
		return nil
	}
	for _, description := range m.Descriptions() {
		fmt.Fprintf(out, "  %s\n", description)
	}
	return nil
}

// ListCheeses writes each catalog cheese and its description
func ListCheeses(c *cli.Context) error {
	out := c.App.Writer
	fmt.Fprintln(out, headerColor("cheeses:"))
	for _, cheese := range models.CatalogCheeses() {
		writeEntry(out, cheese.Name(), cheese.Describe())
	}
	return nil
}

// ListToppings writes each topping name
func ListToppings(c *cli.Context) error {
	out := c.App.Writer
	fmt.Fprintln(out, headerColor("toppings:"))
	for _, topping := range models.Toppings() {
		fmt.Fprintf(out, "  %s\n", nameColor(topping.String()))
	}
	return nil
}

func writeEntry(out io.Writer, name, detail string) {
	fmt.Fprintf(out, "  %s %s\n", nameColor(name), dimColor(detail))
}
