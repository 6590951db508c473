package cli

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/render"
	"github.com/vlinks/planner/internal/store"
	"github.com/vlinks/planner/internal/timegrid"
)

func (c *CLI) scheduleCommand() cli.Command {
	return cli.Command{
		Name:    "schedule",
		Aliases: []string{"s"},
		Usage:   "manage the weekly timetable",
		Subcommands: []cli.Command{
			{
				Name:   "add",
				Usage:  "add a class block",
				Flags:  scheduleFlags(),
				Action: c.scheduleAdd,
			},
			{
				Name:   "list",
				Usage:  "print the timetable day by day",
				Action: c.scheduleList,
			},
			{
				Name:      "edit",
				Usage:     "edit a class block by id (or id prefix)",
				ArgsUsage: "<id>",
				Flags:     scheduleFlags(),
				Action:    c.scheduleEdit,
			},
			{
				Name:      "rm",
				Usage:     "delete a class block",
				ArgsUsage: "<id>",
				Action:    c.scheduleRemove,
			},
			{
				Name:  "render",
				Usage: "render the week grid to a PNG",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "out, o", Value: "week.png", Usage: "output file"},
				},
				Action: c.scheduleRender,
			},
		},
	}
}

func scheduleFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "title, t", Usage: "class title"},
		cli.IntFlag{Name: "day, d", Value: 1, Usage: "weekday, Monday=1 .. Sunday=7"},
		cli.StringFlag{Name: "start, s", Value: store.DefaultEntryStart, Usage: "start time HH:MM"},
		cli.StringFlag{Name: "end, e", Usage: "end time HH:MM (default: start + 1h)"},
		cli.StringFlag{Name: "room, r", Usage: "room / location"},
		cli.StringFlag{Name: "color, c", Usage: "display color, e.g. #5eead4"},
	}
}

func (c *CLI) scheduleAdd(ctx *cli.Context) error {
	draft := store.NewEntryDraft(ctx.Int("day"), ctx.String("start"))
	if ctx.IsSet("title") {
		draft.Title = ctx.String("title")
	}
	if ctx.IsSet("end") {
		draft.End = ctx.String("end")
	}
	draft.Room = ctx.String("room")
	if ctx.IsSet("color") {
		draft.Color = ctx.String("color")
	} else {
		draft.Color = c.app.Settings.DefaultColor
	}

	if _, err := draft.Finalize(); err != nil {
		return err
	}
	e, err := c.app.Schedule.Create(draft)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s  %s %s–%s  %s\n", shortID(e.ID), model.DayName(e.Day), e.Start, e.End, e.Title)
	return nil
}

func (c *CLI) scheduleList(*cli.Context) error {
	entries := c.app.Schedule.All()
	if len(entries) == 0 {
		fmt.Println("Timetable is empty. Add a class with: planner schedule add -t \"Math\" -d 1 -s 08:00")
		return nil
	}

	byDay := make(map[int][]*model.ScheduleEntry)
	for _, e := range entries {
		byDay[e.Day] = append(byDay[e.Day], e)
	}
	for day := 1; day <= 7; day++ {
		list := byDay[day]
		if len(list) == 0 {
			continue
		}
		sort.Slice(list, func(i, j int) bool {
			return timegrid.MinutesOf(list[i].Start) < timegrid.MinutesOf(list[j].Start)
		})
		fmt.Println(model.DayName(day))
		for _, e := range list {
			line := fmt.Sprintf("  %s–%s  %-24s", e.Start, e.End, e.Title)
			if e.Room != "" {
				line += "  " + e.Room
			}
			fmt.Printf("%s  [%s]\n", line, shortID(e.ID))
		}
	}
	return nil
}

func (c *CLI) scheduleEdit(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.ShowCommandHelp(ctx, "edit")
	}
	e, err := c.app.Schedule.Find(ctx.Args().First())
	if err != nil {
		return err
	}

	draft := store.DraftOf(e)
	if ctx.IsSet("title") {
		draft.Title = ctx.String("title")
	}
	if ctx.IsSet("day") {
		draft.Day = ctx.Int("day")
	}
	if ctx.IsSet("start") {
		draft.Start = ctx.String("start")
	}
	if ctx.IsSet("end") {
		draft.End = ctx.String("end")
	}
	if ctx.IsSet("room") {
		draft.Room = ctx.String("room")
	}
	if ctx.IsSet("color") {
		draft.Color = ctx.String("color")
	}

	if _, err := draft.Finalize(); err != nil {
		return err
	}
	if err := c.app.Schedule.Update(e.ID, draft); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", shortID(e.ID))
	return nil
}

func (c *CLI) scheduleRemove(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.ShowCommandHelp(ctx, "rm")
	}
	e, err := c.app.Schedule.Find(ctx.Args().First())
	if err != nil {
		return err
	}
	c.app.Schedule.Delete(e.ID)
	fmt.Printf("Deleted %s  %s\n", shortID(e.ID), e.Title)
	return nil
}

func (c *CLI) scheduleRender(ctx *cli.Context) error {
	r := render.New(
		c.app.Settings.GridFirstHour,
		c.app.Settings.GridLastHour,
		c.app.Settings.DefaultColor,
		c.app.Config.FontPath,
	)
	png, err := r.Week(c.app.Schedule.All(), time.Now())
	if err != nil {
		return fmt.Errorf("render week: %w", err)
	}

	out := ctx.String("out")
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d entries)\n", out, c.app.Schedule.Len())
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
