package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/vlinks/planner/internal/focus"
	"github.com/vlinks/planner/internal/timegrid"
)

func (c *CLI) focusCommand() cli.Command {
	return cli.Command{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "run a work/break focus session in the terminal",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "work, w", Usage: "work phase length in minutes", Value: c.app.Settings.WorkMinutes},
			cli.IntFlag{Name: "break, b", Usage: "break phase length in minutes", Value: c.app.Settings.BreakMinutes},
			cli.IntFlag{Name: "rounds, r", Usage: "number of work rounds", Value: c.app.Settings.Rounds},
		},
		Action: c.focusRun,
	}
}

func (c *CLI) focusRun(ctx *cli.Context) error {
	cfg := focus.Config{
		WorkMinutes:  ctx.Int("work"),
		BreakMinutes: ctx.Int("break"),
		TotalRounds:  ctx.Int("rounds"),
	}
	session := focus.NewSession(cfg, c.app.Logger)

	runCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg = session.Timer().Config()
	fmt.Printf("Focus: %d min work / %d min break × %d rounds. Ctrl-C to stop.\n",
		cfg.WorkMinutes, cfg.BreakMinutes, cfg.TotalRounds)

	lastPhase := focus.PhaseWork
	final := session.Run(runCtx, time.Second, func(snap focus.Snapshot) {
		if snap.Phase != lastPhase {
			lastPhase = snap.Phase
			if snap.Phase == focus.PhaseBreak {
				fmt.Print("\nBreak time ☕\n")
			} else {
				fmt.Print("\nBack to work ✍️\n")
			}
		}
		fmt.Printf("\r%s  %s · %d round(s) left ", phaseLabel(snap.Phase), timegrid.FormatSeconds(snap.SecondsRemaining), snap.RoundsRemaining)
	})
	fmt.Println()

	if final.Done() {
		fmt.Println("Session complete — nice work! 🎉")
	} else {
		fmt.Printf("Paused at %s (%s).\n", timegrid.FormatSeconds(final.SecondsRemaining), phaseLabel(final.Phase))
	}
	return nil
}

func phaseLabel(p focus.Phase) string {
	if p == focus.PhaseBreak {
		return "Break"
	}
	return "Work"
}
