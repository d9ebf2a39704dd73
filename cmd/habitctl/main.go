package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/habithero/habitctl/internal/cli"
	"github.com/habithero/habitctl/internal/client"
	"github.com/habithero/habitctl/internal/session"
	"github.com/habithero/habitctl/internal/store"
	"github.com/habithero/habitctl/pkg/cleanup"
	"github.com/habithero/habitctl/pkg/config"
)

func init() {
	store.InitValidator()
}

var CLI struct {
	Version  kong.VersionFlag
	API      string `help:"Base URL of the habit-tracker API." env:"HABITCTL_API_URL"`
	StateDir string `help:"Directory for local state." env:"HABITCTL_STATE_DIR" type:"path"`
	Queue    bool   `help:"Queue rapid toggles on the same habit instead of rejecting them."`
	Debug    bool   `help:"Verbose logging."`

	Register cli.RegisterCmd `cmd:"" help:"Create an account."`
	Login    cli.LoginCmd    `cmd:"" help:"Log in and store the session."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Drop the stored session."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the logged-in user."`
	Habit    struct {
		Add  cli.HabitAddCmd  `cmd:"" help:"Add a habit."`
		List cli.HabitListCmd `cmd:"" help:"List habits with streaks."`
		Rm   cli.HabitRmCmd   `cmd:"" help:"Delete a habit and its check-ins."`
		Edit cli.HabitEditCmd `cmd:"" help:"Edit a habit."`
	} `cmd:"" help:"Manage habits."`
	Check   cli.CheckCmd   `cmd:"" help:"Toggle today's check-in for a habit."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's progress." default:"1"`
	Stats   cli.StatsCmd   `cmd:"" help:"Show aggregate stats."`
	Suggest cli.SuggestCmd `cmd:"" help:"Get AI habit suggestions."`
	Report  cli.ReportCmd  `cmd:"" help:"Download the PDF progress report."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Habit tracker client: check in daily, keep your streaks alive"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	level := slog.LevelWarn
	if CLI.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.New()
	apiURL := CLI.API
	if apiURL == "" {
		apiURL = cfg.APIBaseURL()
	}
	stateDir := CLI.StateDir
	if stateDir == "" {
		stateDir = cfg.StateDir()
	}

	sess, err := session.Open(filepath.Join(stateDir, "session.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cleanup.Register(&cleanup.Job{Name: "closing session db", F: sess.Close})

	apiClient := client.New(apiURL, sess, cfg.RequestTimeout())
	cleanup.Register(&cleanup.Job{Name: "closing idle connections", F: func() error {
		apiClient.CloseIdleConnections()
		return nil
	}})

	policy := store.PendingReject
	if CLI.Queue {
		policy = store.PendingQueue
	}

	appCtx := &cli.Context{
		Cfg:     cfg,
		Session: sess,
		Client:  apiClient,
		Store:   store.New(apiClient, apiClient, policy),
		Out:     os.Stdout,
	}

	err = ctx.Run(appCtx)
	cleanup.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
