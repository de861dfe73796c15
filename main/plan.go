package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	boshapp "github.com/archsan/archsan/app"
	"github.com/archsan/archsan/platform/disk"
)

var planCmd = &cobra.Command{
	Use:     "plan CONFIG",
	Args:    cobra.ExactArgs(1),
	Short:   "Show what provision would do to the partition tables in CONFIG.",
	Example: "archsan plan /etc/archsan/disks.yml",
	RunE:    planRunE,
}

func planRunE(_ *cobra.Command, args []string) error {
	// Questions asked while planning are answered with no unless told otherwise.
	opts := boshapp.Options{ConfigPath: args[0], AssumeNo: !global.AssumeYes}

	app, logger, err := newApp(opts)
	if err != nil {
		return err
	}
	defer logger.HandlePanic("Main")

	plans, err := app.Plan()
	if err != nil {
		logger.Error(mainLogTag, "Planning %s", err.Error())
		return err
	}

	printPlans(plans)
	return nil
}

func printPlans(plans []disk.Plan) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Partition plan")
	t.AppendHeader(table.Row{"Device", "#", "Action", "Existing", "Desired", "Detail"})

	for _, plan := range plans {
		if len(plan.Actions) == 0 {
			t.AppendRow(table.Row{plan.Device, "", "none", "", "", "partitioning skipped"})
			continue
		}

		for _, action := range plan.Actions {
			t.AppendRow(planRow(plan.Device, action))
		}
		t.AppendSeparator()
	}

	t.Render()
}

func planRow(device string, action disk.Action) table.Row {
	var existing, desired, number, detail string

	if action.Existing != nil {
		existing = action.Existing.String()
	}
	if action.Desired != nil {
		desired = action.Desired.String()
	}
	if n := action.Number(); n > 0 {
		number = fmt.Sprint(n)
	}
	if action.Err != nil {
		detail = action.Err.Error()
	}
	if action.Kind == disk.ActionRecreate && action.UseDefaultSize {
		detail = "default size"
	}

	return table.Row{device, number, string(action.Kind), existing, desired, detail}
}
