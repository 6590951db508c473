package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/vlinks/planner/internal/model"
)

func (c *CLI) taskCommand() cli.Command {
	return cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "manage the to-do list",
		Subcommands: []cli.Command{
			{
				Name:      "add",
				Usage:     "add a task; supports #tags and a duration like 45min or 2h",
				ArgsUsage: "<text...>",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "priority, p", Value: "medium", Usage: "high, medium or low"},
					cli.StringFlag{Name: "energy, e", Value: "medium", Usage: "high, medium or low"},
				},
				Action: c.taskAdd,
			},
			{
				Name:   "list",
				Usage:  "list open tasks and today's completions",
				Action: c.taskList,
			},
			{
				Name:      "done",
				Usage:     "toggle a task's done state",
				ArgsUsage: "<id>",
				Action:    c.taskDone,
			},
			{
				Name:      "rm",
				Usage:     "delete a task",
				ArgsUsage: "<id>",
				Action:    c.taskRemove,
			},
			{
				Name:   "stats",
				Usage:  "show today's completion analytics",
				Action: c.taskStats,
			},
		},
	}
}

func (c *CLI) taskAdd(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.ShowCommandHelp(ctx, "add")
	}
	input := strings.Join(ctx.Args(), " ")

	task, err := c.app.Tasks.Add(input, parsePriority(ctx.String("priority")), parseEnergy(ctx.String("energy")))
	if err != nil {
		return err
	}
	fmt.Printf("Added %s  %s%s\n", shortID(task.ID), task.Title, taskBadges(task))
	return nil
}

func (c *CLI) taskList(*cli.Context) error {
	pending := c.app.Tasks.Pending()
	if len(pending) == 0 {
		fmt.Println("All clear — add something with: planner task add \"Read chapter 3 #math 30min\"")
	}
	for _, t := range pending {
		fmt.Printf("  [ ] %s  %s%s\n", shortID(t.ID), t.Title, taskBadges(t))
	}

	completed := c.app.Tasks.CompletedToday()
	if len(completed) > 0 {
		fmt.Println("Completed today:")
		for _, t := range completed {
			fmt.Printf("  [x] %s  %s\n", shortID(t.ID), t.Title)
		}
	}
	return nil
}

func (c *CLI) taskDone(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.ShowCommandHelp(ctx, "done")
	}
	t, err := c.app.Tasks.Find(ctx.Args().First())
	if err != nil {
		return err
	}
	if err := c.app.Tasks.Toggle(t.ID); err != nil {
		return err
	}
	if !t.Done {
		fmt.Printf("Done: %s\n", t.Title)
	} else {
		fmt.Printf("Reopened: %s\n", t.Title)
	}
	return nil
}

func (c *CLI) taskRemove(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.ShowCommandHelp(ctx, "rm")
	}
	t, err := c.app.Tasks.Find(ctx.Args().First())
	if err != nil {
		return err
	}
	c.app.Tasks.Delete(t.ID)
	fmt.Printf("Deleted %s\n", t.Title)
	return nil
}

func (c *CLI) taskStats(*cli.Context) error {
	st := c.app.Tasks.Stats()
	fmt.Printf("Tasks completed today: %d\n", st.CompletedCount)
	fmt.Printf("Estimated study minutes: %d\n", st.LearnedMinutes)

	printed := false
	for hour, minutes := range st.Hourly {
		if minutes == 0 {
			continue
		}
		if !printed {
			fmt.Println("Time distribution:")
			printed = true
		}
		fmt.Printf("  %02d:00  %s %dmin\n", hour, strings.Repeat("█", (minutes+14)/15), minutes)
	}

	if len(st.TopTags) > 0 {
		fmt.Println("Top tags:")
		for _, tc := range st.TopTags {
			fmt.Printf("  #%s  %d\n", tc.Tag, tc.Count)
		}
	}
	return nil
}

func taskBadges(t *model.Task) string {
	var b strings.Builder
	if t.EstimatedTime > 0 {
		fmt.Fprintf(&b, "  %dmin", t.EstimatedTime)
	}
	for _, tag := range t.Tags {
		b.WriteString("  #" + tag)
	}
	fmt.Fprintf(&b, "  P:%s E:%s", t.Priority, t.EnergyRequired)
	return b.String()
}

func parsePriority(s string) model.Priority {
	switch strings.ToLower(s) {
	case "high":
		return model.PriorityHigh
	case "low":
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

func parseEnergy(s string) model.EnergyLevel {
	switch strings.ToLower(s) {
	case "high":
		return model.EnergyHigh
	case "low":
		return model.EnergyLow
	default:
		return model.EnergyMedium
	}
}
