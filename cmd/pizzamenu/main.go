package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/cli/menucmd"
)

func main() {
	app := &cli.App{
		Name:    "pizzamenu",
		Usage:   "Describes pizzas from the house menu or a TOML menu file",
		Version: "v1.0.0",
		// Without a command the menu is shown
		Flags:  menucmd.ShowCmd.Flags,
		Action: menucmd.Show,
		Commands: []*cli.Command{
			menucmd.ShowCmd,
			menucmd.CheesesCmd,
			menucmd.ToppingsCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
