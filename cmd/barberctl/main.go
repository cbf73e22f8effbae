package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hackgods/barbershop-booking/internal/appointment"
	"github.com/hackgods/barbershop-booking/internal/calendar"
	"github.com/hackgods/barbershop-booking/internal/contact"
	"github.com/hackgods/barbershop-booking/internal/schedule"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "barberctl",
		Short:        "Offline helpers for the barber shop booking rules",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(slotsCmd())
	rootCmd.AddCommand(endTimeCmd())
	rootCmd.AddCommand(mockCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(navigateCmd())
	rootCmd.AddCommand(formatCmd())
	rootCmd.AddCommand(phoneCmd())
	rootCmd.AddCommand(initialsCmd())
	rootCmd.AddCommand(badgeCmd())

	return rootCmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// dateFlag parses a YYYY-MM-DD flag value, defaulting to today.
func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return calendar.StartOfDay(time.Now()), nil
	}
	t, err := calendar.ParseDate(raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}

func slotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List slot start times between opening and closing",
		RunE: func(cmd *cobra.Command, args []string) error {
			open, _ := cmd.Flags().GetString("open")
			closing, _ := cmd.Flags().GetString("close")
			interval, _ := cmd.Flags().GetInt("interval")

			slots, err := schedule.GenerateTimeSlots(open, closing, interval)
			if err != nil {
				return err
			}
			return printJSON(cmd, slots)
		},
	}
	cmd.Flags().String("open", "09:00", "Opening time (HH:MM)")
	cmd.Flags().String("close", "19:00", "Closing time (HH:MM)")
	cmd.Flags().Int("interval", schedule.DefaultInterval, "Minutes between slots")
	return cmd
}

func endTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "end-time",
		Short: "Compute when a service starting at --start ends",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			duration, _ := cmd.Flags().GetInt("duration")

			end, err := schedule.CalculateEndTime(start, duration)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"start": start, "duration": duration, "end": end})
		},
	}
	cmd.Flags().String("start", "", "Start time (HH:MM)")
	cmd.Flags().Int("duration", 0, "Duration in minutes")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func mockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Print the demo appointment set around --base",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := dateFlag(cmd, "base")
			if err != nil {
				return err
			}
			return printJSON(cmd, appointment.GenerateMockAppointments(base))
		},
	}
	cmd.Flags().String("base", "", "Base date (YYYY-MM-DD), defaults to today")
	return cmd
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute statistics over the demo appointment set",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, _ := cmd.Flags().GetString("period")
			ref, err := dateFlag(cmd, "ref")
			if err != nil {
				return err
			}

			stats, err := appointment.CalculateStats(appointment.GenerateMockAppointments(ref), period, ref)
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
	cmd.Flags().String("period", appointment.PeriodWeek, "today, week, month or year")
	cmd.Flags().String("ref", "", "Reference date (YYYY-MM-DD), defaults to today")
	return cmd
}

func navigateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navigate",
		Short: "Move a date by --step days, weeks or months",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := dateFlag(cmd, "date")
			if err != nil {
				return err
			}
			mode, _ := cmd.Flags().GetString("mode")
			step, _ := cmd.Flags().GetInt("step")

			target := calendar.NavigateDate(current, calendar.ViewMode(mode), step)
			return printJSON(cmd, map[string]any{
				"from": calendar.ISODate(current),
				"to":   calendar.ISODate(target),
				"mode": mode,
				"past": calendar.IsPast(target.Day(), target, time.Now()),
			})
		},
	}
	cmd.Flags().String("date", "", "Current date (YYYY-MM-DD), defaults to today")
	cmd.Flags().String("mode", string(calendar.ViewDay), "day, week or month")
	cmd.Flags().Int("step", 1, "Number of units to move, may be negative")
	return cmd
}

func formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render the Hebrew labels of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("date")
			if raw == "" {
				return printJSON(cmd, map[string]any{"display": calendar.FormatDateDisplay(nil)})
			}
			t, err := calendar.ParseDate(raw, time.Local)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			return printJSON(cmd, map[string]any{
				"label":   calendar.FormatDate(t),
				"long":    calendar.FormatDateLong(t),
				"display": calendar.FormatDateDisplay(&t),
			})
		},
	}
	cmd.Flags().String("date", "", "Date (YYYY-MM-DD); empty prints the placeholder")
	return cmd
}

func phoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <number>",
		Short: "Check an Israeli mobile number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, map[string]any{
				"phone": args[0],
				"valid": contact.IsValidPhone(args[0]),
			})
		},
	}
}

func initialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initials <name>",
		Short: "Print the avatar initials of a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, map[string]any{
				"name":     args[0],
				"initials": contact.Initials(args[0]),
			})
		},
	}
}

func badgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badge <status>",
		Short: "Print the badge style and label of a status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := appointment.StatusBadge(args[0])
			return printJSON(cmd, map[string]any{
				"status": args[0],
				"style":  b.Style,
				"label":  b.Label,
			})
		},
	}
}
