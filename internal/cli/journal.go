package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/store"
)

func (c *CLI) journalCommand() cli.Command {
	dayFlag := cli.StringFlag{Name: "day, d", Usage: "day as YYYY-MM-DD (default: today)"}

	return cli.Command{
		Name:    "journal",
		Aliases: []string{"j"},
		Usage:   "mood check-ins and gratitude notes",
		Subcommands: []cli.Command{
			{
				Name:      "mood",
				Usage:     "record today's mood: 1 (worst) .. 5 (best), or 0 to clear",
				ArgsUsage: "<1-5|0>",
				Flags:     []cli.Flag{dayFlag},
				Action:    c.journalMood,
			},
			{
				Name:      "note",
				Usage:     "add a gratitude note (up to five per day)",
				ArgsUsage: "<text...>",
				Flags:     []cli.Flag{dayFlag},
				Action:    c.journalNote,
			},
			{
				Name:   "show",
				Usage:  "show a day's mood and notes",
				Flags:  []cli.Flag{dayFlag},
				Action: c.journalShow,
			},
			{
				Name:   "insights",
				Usage:  "summarize the last seven days",
				Action: c.journalInsights,
			},
		},
	}
}

func journalDay(ctx *cli.Context) (string, error) {
	raw := ctx.String("day")
	if raw == "" {
		return store.DayKey(time.Now()), nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", fmt.Errorf("invalid day %q: want YYYY-MM-DD", raw)
	}
	return raw, nil
}

func (c *CLI) journalMood(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.ShowCommandHelp(ctx, "mood")
	}
	day, err := journalDay(ctx)
	if err != nil {
		return err
	}

	score, err := strconv.Atoi(ctx.Args().First())
	if err != nil || score < 0 || score > 5 {
		return fmt.Errorf("mood must be 0..5, got %q", ctx.Args().First())
	}

	mood := model.MoodNone
	if score > 0 {
		mood = model.Moods[5-score]
	}
	c.app.Journal.SetMood(day, mood)
	if mood == model.MoodNone {
		fmt.Printf("%s: mood cleared\n", day)
	} else {
		fmt.Printf("%s: %s\n", day, mood)
	}
	return nil
}

func (c *CLI) journalNote(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.ShowCommandHelp(ctx, "note")
	}
	day, err := journalDay(ctx)
	if err != nil {
		return err
	}
	c.app.Journal.AddGratitude(day, strings.Join(ctx.Args(), " "))
	fmt.Printf("%s: noted 🌱\n", day)
	return nil
}

func (c *CLI) journalShow(ctx *cli.Context) error {
	day, err := journalDay(ctx)
	if err != nil {
		return err
	}

	mood := c.app.Journal.Mood(day)
	if mood == model.MoodNone {
		fmt.Printf("%s  (no mood recorded)\n", day)
	} else {
		fmt.Printf("%s  %s\n", day, mood)
	}
	notes := c.app.Journal.Gratitude(day)
	if len(notes) == 0 {
		fmt.Println("No notes yet.")
	}
	for _, note := range notes {
		fmt.Printf("  - %s\n", note)
	}
	return nil
}

func (c *CLI) journalInsights(*cli.Context) error {
	in := c.app.Journal.Insights()
	avg := "-"
	if in.AvgMood > 0 {
		avg = strconv.FormatFloat(in.AvgMood, 'f', 1, 64)
	}
	fmt.Printf("Last 7 days · avg mood %s · missed %d days · streak %d days\n", avg, in.Blanks, in.Streak)
	for _, tip := range in.Tips {
		fmt.Printf("  - %s\n", tip)
	}
	return nil
}
