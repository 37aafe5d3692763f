package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/hrygo/laddoo/plugin/speech"
	"github.com/hrygo/laddoo/server/assistant"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			instanceProfile, storeInstance, reminders, err := openReminders()
			if err != nil {
				return err
			}
			defer storeInstance.Close()

			engine, err := speech.NewConsole(speech.ConsoleConfig{
				Retries:     instanceProfile.ListenRetries,
				HistoryFile: instanceProfile.HistoryFile,
				Stdin:       cmd.InOrStdin(),
				Stdout:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			defer engine.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return assistant.New(engine, reminders,
				assistant.WithMaxAttempts(instanceProfile.MaxAttempts),
			).Run(ctx)
		},
	}
}
