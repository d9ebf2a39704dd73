package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/habithero/habitctl/internal/store"
)

type StatsCmd struct{}

func (cmd *StatsCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.loadStore(ctx); err != nil {
		return err
	}
	stats, err := appCtx.Client.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Out, "Habits:         %d\n", stats.TotalHabits)
	fmt.Fprintf(appCtx.Out, "Check-ins:      %d\n", stats.TotalCheckins)
	fmt.Fprintf(appCtx.Out, "Longest streak: %d\n", stats.LongestStreak)
	for _, h := range appCtx.Store.Habits() {
		fmt.Fprintf(appCtx.Out, "  %-30s streak %d\n", h.Name, stats.Streaks[h.ID])
	}
	return nil
}

type SuggestCmd struct {
	Apply []int `help:"Indices of suggestions to add as habits (1-based)." sep:","`
}

func (cmd *SuggestCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.requireSession(ctx); err != nil {
		return err
	}
	suggestions, err := appCtx.Client.SuggestHabits(ctx)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(appCtx.Out, "No suggestions right now")
		return nil
	}
	for i, sg := range suggestions {
		fmt.Fprintf(appCtx.Out, "%d. %s (%s, %s)\n   %s\n", i+1, sg.Name, sg.Category, sg.Frequency, sg.Description)
	}
	if len(cmd.Apply) == 0 {
		return nil
	}
	// Applying a suggestion creates the habit only; check-ins stay manual.
	startDate := appCtx.Store.Today()
	for _, idx := range cmd.Apply {
		if idx < 1 || idx > len(suggestions) {
			return fmt.Errorf("no suggestion %d", idx)
		}
		sg := suggestions[idx-1]
		habit, err := appCtx.Store.AddHabit(ctx, &store.AddHabitRequest{
			Name:        sg.Name,
			Description: sg.Description,
			Frequency:   sg.Frequency,
			Category:    sg.Category,
			StartDate:   startDate,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(appCtx.Out, "Added habit %d: %s\n", habit.ID, habit.Name)
	}
	return nil
}

type ReportCmd struct {
	Out string `help:"Output path. Defaults to the server-proposed filename." short:"o"`
}

func (cmd *ReportCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.requireSession(ctx); err != nil {
		return err
	}
	tmp, err := os.CreateTemp("", "habitctl-report-*.pdf")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	filename, err := appCtx.Client.ExportReport(ctx, tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	target := cmd.Out
	if target == "" {
		target = filename
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		// Cross-device rename fallback
		data, readErr := os.ReadFile(tmp.Name())
		if readErr != nil {
			return readErr
		}
		if writeErr := os.WriteFile(target, data, 0o644); writeErr != nil {
			return writeErr
		}
	}
	fmt.Fprintf(appCtx.Out, "Report saved to %s\n", target)
	return nil
}
