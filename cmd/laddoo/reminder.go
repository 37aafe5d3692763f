package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/plugin/aitime"
	"github.com/hrygo/laddoo/plugin/schedule"
	"github.com/hrygo/laddoo/server/service/reminder"
)

func newAddCommand() *cobra.Command {
	var datePhrase, timePhrase, repeat string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a reminder",
		Example: `  laddoo add --date "june 2nd" --time "3 30 pm" --repeat weekly call mom`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, storeInstance, reminders, err := openReminders()
			if err != nil {
				return err
			}
			defer storeInstance.Close()

			ctx := cmd.Context()
			key, err := reminders.Resolve(ctx, datePhrase, timePhrase)
			if err != nil {
				return err
			}

			created, err := reminders.Add(ctx, &reminder.AddRequest{
				Key:        key,
				Content:    strings.Join(args, " "),
				Recurrence: schedule.MatchRule(repeat),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s, repeating %s\n",
				color.GreenString("Saved"), created.Content, created.Key, created.Recurrence)
			return nil
		},
	}

	cmd.Flags().StringVar(&datePhrase, "date", "", `spoken date, e.g. "june 2nd"`)
	cmd.Flags().StringVar(&timePhrase, "time", "", `spoken time, e.g. "3 30 pm"`)
	cmd.Flags().StringVar(&repeat, "repeat", "once", "daily, weekly, monthly, yearly or once")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newListCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, storeInstance, reminders, err := openReminders()
			if err != nil {
				return err
			}
			defer storeInstance.Close()

			out := cmd.OutOrStdout()
			if all {
				list, err := reminders.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, r := range list {
					fmt.Fprintf(out, "%s  %-8s %s\n", color.CyanString(r.Key), r.Recurrence, r.Content)
				}
				return nil
			}

			upcoming, err := reminders.Upcoming(cmd.Context())
			if err != nil {
				return err
			}
			if len(upcoming) == 0 {
				fmt.Fprintln(out, "No upcoming reminders.")
				return nil
			}
			for _, o := range upcoming {
				fmt.Fprintln(out, o.Describe())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list stored reminders, including past ones")
	return cmd
}

func newRemoveCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "remove [query]",
		Short: "Remove the reminder at --key, or the only reminder matching query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, storeInstance, reminders, err := openReminders()
			if err != nil {
				return err
			}
			defer storeInstance.Close()

			ctx := cmd.Context()
			target := key
			if target == "" {
				matches, err := reminders.Find(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				switch len(matches) {
				case 0:
					return rerrors.NotFound(strings.Join(args, " "))
				case 1:
					target = matches[0].Key
				default:
					for _, m := range matches {
						fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", color.CyanString(m.Key), m.Content)
					}
					return errors.Errorf("%d reminders match, pick one with --key", len(matches))
				}
			}

			if err := reminders.Remove(ctx, target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Removed"), target)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", `reminder key, e.g. "2026-06-02 15:30"`)
	return cmd
}

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse spoken dates and times",
	}

	times := aitime.NewService()
	cmd.AddCommand(
		&cobra.Command{
			Use:   "time <phrase>",
			Short: "Parse a spoken time of day",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				parsed, err := times.ParseTime(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%02d:%02d\n", parsed.Hour, parsed.Minute)
				return nil
			},
		},
		&cobra.Command{
			Use:   "date <phrase>",
			Short: "Parse a spoken calendar date",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				parsed, err := times.ParseDate(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", parsed.Month, parsed.Day)
				return nil
			},
		},
	)
	return cmd
}
