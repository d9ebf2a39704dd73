package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/habithero/habitctl/internal/client"
	"github.com/habithero/habitctl/internal/store"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." short:"d"`
	Frequency   string `help:"daily, weekly or monthly." default:"daily"`
	Category    string `help:"health, work, learning or other." default:"other"`
	StartDate   string `help:"Start date (YYYY-MM-DD), defaults to today."`
}

func (cmd *HabitAddCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.requireSession(ctx); err != nil {
		return err
	}
	startDate := cmd.StartDate
	if startDate == "" {
		startDate = time.Now().Format(time.DateOnly)
	}
	habit, err := appCtx.Store.AddHabit(ctx, &store.AddHabitRequest{
		Name:        cmd.Name,
		Description: cmd.Description,
		Frequency:   cmd.Frequency,
		Category:    cmd.Category,
		StartDate:   startDate,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Out, "Added habit %d: %s\n", habit.ID, habit.Name)
	return nil
}

type HabitListCmd struct{}

func (cmd *HabitListCmd) Run(appCtx *Context) error {
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
	for _, h := range habits {
		printHabitRow(appCtx.Out, h)
	}
	return nil
}

type HabitRmCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (cmd *HabitRmCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.loadStore(ctx); err != nil {
		return err
	}
	if err := appCtx.Store.DeleteHabit(ctx, cmd.ID); err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Out, "Deleted habit %d\n", cmd.ID)
	return nil
}

type HabitEditCmd struct {
	ID          int64   `arg:"" help:"Habit id."`
	Name        *string `help:"New name."`
	Description *string `help:"New description."`
	Frequency   *string `help:"New frequency."`
	Category    *string `help:"New category."`
	StartDate   *string `help:"New start date (YYYY-MM-DD)."`
}

func (cmd *HabitEditCmd) Run(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := appCtx.loadStore(ctx); err != nil {
		return err
	}
	habit, err := appCtx.Store.UpdateHabit(ctx, cmd.ID, &client.UpdateHabitRequest{
		Name:        cmd.Name,
		Description: cmd.Description,
		Frequency:   cmd.Frequency,
		Category:    cmd.Category,
		StartDate:   cmd.StartDate,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Out, "Updated habit %d: %s\n", habit.ID, habit.Name)
	return nil
}
