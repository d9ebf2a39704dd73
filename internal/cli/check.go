package cli

import (
	"context"
	"fmt"
	"time"
)

type CheckCmd struct {
	HabitID int64 `arg:"" help:"Habit id to toggle today's check-in for."`
}

func (cmd *CheckCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.loadStore(ctx); err != nil {
		return err
	}
	if err := appCtx.Store.ToggleCheckin(ctx, cmd.HabitID); err != nil {
		return err
	}
	for _, h := range appCtx.Store.HabitsWithCheckins() {
		if h.ID == cmd.HabitID {
			if h.CompletedToday {
				fmt.Fprintf(appCtx.Out, "Checked in %q, streak %d\n", h.Name, h.Streak)
			} else {
				fmt.Fprintf(appCtx.Out, "Unchecked %q, streak %d\n", h.Name, h.Streak)
			}
			return nil
		}
	}
	fmt.Fprintf(appCtx.Out, "Toggled habit %d\n", cmd.HabitID)
	return nil
}

type TodayCmd struct{}

func (cmd *TodayCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.loadStore(ctx); err != nil {
		return err
	}
	habits := appCtx.Store.HabitsWithCheckins()
	if len(habits) == 0 {
		fmt.Fprintln(appCtx.Out, "No habits yet, add one with 'habitctl habit add'")
		return nil
	}
	fmt.Fprintf(appCtx.Out, "%s\n", time.Now().Format("Monday, 2 January 2006"))
	done := 0
	for _, h := range habits {
		printHabitRow(appCtx.Out, h)
		if h.CompletedToday {
			done++
		}
	}
	fmt.Fprintf(appCtx.Out, "%d/%d done today\n", done, len(habits))
	return nil
}
