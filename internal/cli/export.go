package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/vlinks/planner/internal/export"
	"github.com/vlinks/planner/internal/model"
)

func (c *CLI) exportCommand() cli.Command {
	return cli.Command{
		Name:    "export",
		Aliases: []string{"x"},
		Usage:   "export schedule entries and tasks to calendars",
		Subcommands: []cli.Command{
			{
				Name:      "ics",
				Usage:     "write an .ics file for the next occurrence of a schedule entry",
				ArgsUsage: "<id-prefix>",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "out, o", Usage: "output file (default: <title>.ics)"},
				},
				Action: c.exportICS,
			},
			{
				Name:      "gcal",
				Usage:     "print a Google Calendar link for a schedule entry",
				ArgsUsage: "<id-prefix>",
				Action:    c.exportGCal,
			},
			{
				Name:      "task",
				Usage:     "write an .ics study block for a pending task",
				ArgsUsage: "<id-prefix>",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "out, o", Usage: "output file (default: <title>.ics)"},
				},
				Action: c.exportTask,
			},
		},
	}
}

func (c *CLI) entryEvent(ctx *cli.Context) (export.Event, error) {
	if ctx.NArg() < 1 {
		return export.Event{}, fmt.Errorf("schedule entry id required")
	}
	entry, err := c.app.Schedule.Find(ctx.Args().First())
	if err != nil {
		return export.Event{}, err
	}

	now := time.Now()
	start, err := export.NextOccurrence(entry.Day, entry.Start, now)
	if err != nil {
		return export.Event{}, err
	}
	end, err := export.NextOccurrence(entry.Day, entry.End, now)
	if err != nil || !end.After(start) {
		end = time.Time{}
	}

	desc := fmt.Sprintf("%s %s-%s", model.DayName(entry.Day), entry.Start, entry.End)
	if entry.Room != "" {
		desc += " · " + entry.Room
	}
	return export.Event{
		UID:         entry.ID,
		Title:       entry.Title,
		Description: desc,
		Start:       start,
		End:         end,
	}, nil
}

func (c *CLI) exportICS(ctx *cli.Context) error {
	event, err := c.entryEvent(ctx)
	if err != nil {
		return err
	}
	return writeICS(ctx.String("out"), event)
}

func (c *CLI) exportGCal(ctx *cli.Context) error {
	event, err := c.entryEvent(ctx)
	if err != nil {
		return err
	}
	fmt.Println(export.GoogleCalendarURL(event))
	return nil
}

// exportTask books a study block for a task at the next full hour,
// sized by its parsed estimate (30 minutes when the task has none).
func (c *CLI) exportTask(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("task id required")
	}
	task, err := c.app.Tasks.Find(ctx.Args().First())
	if err != nil {
		return err
	}

	start := time.Now().Truncate(time.Hour).Add(time.Hour)
	event := export.Event{
		UID:         task.ID,
		Title:       task.Title,
		Description: "Study block",
		Start:       start,
	}
	if task.EstimatedTime > 0 {
		event.End = start.Add(time.Duration(task.EstimatedTime) * time.Minute)
	}
	return writeICS(ctx.String("out"), event)
}

func writeICS(path string, event export.Event) error {
	if path == "" {
		path = event.Title + ".ics"
	}
	if err := os.WriteFile(path, []byte(export.BuildICS(event, time.Now())), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
