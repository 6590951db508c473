// Package cli is the planner's command surface: schedule CRUD and
// rendering, quick tasks, the mood journal, focus sessions and
// calendar export.
package cli

import (
	"github.com/urfave/cli"

	"github.com/vlinks/planner/internal/app"
)

// CLI binds the commands to one application instance.
type CLI struct {
	app *app.App
}

// New builds the urfave/cli application.
func New(a *app.App) *cli.App {
	c := &CLI{app: a}

	cliApp := cli.NewApp()
	cliApp.Name = "planner"
	cliApp.HelpName = "planner"
	cliApp.Usage = "student weekly planner: timetable, tasks, journal and focus timer"
	cliApp.Commands = []cli.Command{
		c.scheduleCommand(),
		c.taskCommand(),
		c.journalCommand(),
		c.focusCommand(),
		c.exportCommand(),
		c.settingsCommand(),
	}
	return cliApp
}
