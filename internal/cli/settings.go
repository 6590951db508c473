package cli

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/vlinks/planner/internal/config"
)

func (c *CLI) settingsCommand() cli.Command {
	return cli.Command{
		Name:  "settings",
		Usage: "view or change the planner defaults",
		Subcommands: []cli.Command{
			{
				Name:   "show",
				Usage:  "print the current settings",
				Action: c.settingsShow,
			},
			{
				Name:  "set",
				Usage: "change settings and write them back to settings.yaml",
				Flags: []cli.Flag{
					cli.IntFlag{Name: "first-hour", Usage: "first hour shown on the week grid"},
					cli.IntFlag{Name: "last-hour", Usage: "last hour shown on the week grid"},
					cli.StringFlag{Name: "color", Usage: "default entry color, e.g. #93c5fd"},
					cli.IntFlag{Name: "work", Usage: "default focus work minutes"},
					cli.IntFlag{Name: "break", Usage: "default focus break minutes"},
					cli.IntFlag{Name: "rounds", Usage: "default focus rounds"},
				},
				Action: c.settingsSet,
			},
		},
	}
}

func (c *CLI) settingsShow(*cli.Context) error {
	s := c.app.Settings
	fmt.Printf("Grid hours:      %02d:00-%02d:00\n", s.GridFirstHour, s.GridLastHour)
	fmt.Printf("Default color:   %s\n", s.DefaultColor)
	fmt.Printf("Focus defaults:  %d min work / %d min break × %d rounds\n", s.WorkMinutes, s.BreakMinutes, s.Rounds)
	fmt.Printf("Data directory:  %s\n", c.app.Config.DataDir)
	return nil
}

func (c *CLI) settingsSet(ctx *cli.Context) error {
	s := c.app.Settings
	if ctx.IsSet("first-hour") {
		s.GridFirstHour = ctx.Int("first-hour")
	}
	if ctx.IsSet("last-hour") {
		s.GridLastHour = ctx.Int("last-hour")
	}
	if ctx.IsSet("color") {
		s.DefaultColor = ctx.String("color")
	}
	if ctx.IsSet("work") {
		s.WorkMinutes = ctx.Int("work")
	}
	if ctx.IsSet("break") {
		s.BreakMinutes = ctx.Int("break")
	}
	if ctx.IsSet("rounds") {
		s.Rounds = ctx.Int("rounds")
	}
	if s.GridLastHour <= s.GridFirstHour || s.GridFirstHour < 0 || s.GridLastHour > 23 {
		return fmt.Errorf("grid hours %d..%d out of order", s.GridFirstHour, s.GridLastHour)
	}

	if err := config.SaveSettings(c.app.Fs, c.app.Config.DataDir, s); err != nil {
		return err
	}
	c.app.Settings = s
	fmt.Println("Settings saved.")
	return nil
}
