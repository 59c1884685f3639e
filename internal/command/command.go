package command

import (
	commandHandler "shiftwave/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewScheduleHandler)

type Command struct {
	scheduleCommandHandler *commandHandler.ScheduleHandler
}

// NewCommand .
func NewCommand(
	scheduleCommandHandler *commandHandler.ScheduleHandler,
) *Command {
	return &Command{
		scheduleCommandHandler: scheduleCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "generate a weekly schedule for one venue",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.scheduleCommandHandler.Generate(cmd, args)
		},
	}
	scheduleCmd.Flags().String("venue", "", "venue id (hex)")
	scheduleCmd.Flags().String("week-start", "", "week start date YYYY-MM-DD")
	scheduleCmd.Flags().Bool("save", true, "persist the generated schedule")
	rootCmd.AddCommand(scheduleCmd)
}
