package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/phonebook/internal/birthday"
	"github.com/smileynet/phonebook/internal/command"
	"github.com/smileynet/phonebook/internal/config"
	"github.com/smileynet/phonebook/internal/directory"
	"github.com/smileynet/phonebook/internal/logging"
	"github.com/smileynet/phonebook/internal/shell"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for phonebook.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version." short:"V"`
	Shell     ShellCmd         `cmd:"" default:"1" help:"Start the interactive assistant (default)."`
	Birthdays BirthdaysCmd     `cmd:"" help:"Show birthdays in the coming week."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/phonebook/config.yaml"),
		".phonebook.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ShellCmd runs the interactive contact assistant.
type ShellCmd struct {
	Plain bool `help:"Force plain line input even if the terminal supports the TUI." default:"false"`
}

// Run executes the shell command.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if s.Plain {
		cfg.Shell.Plain = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return s.run(ctx, os.Stdin, os.Stdout, cfg, logger)
}

// run wires a fresh directory to a session, enabling testable wiring.
func (s *ShellCmd) run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	dir := directory.New()
	disp := command.New(dir, command.WithLogger(logger))

	sh := shell.New(shell.Options{
		In:         in,
		Out:        out,
		ForcePlain: cfg.Shell.Plain,
		Prompt:     cfg.Shell.Prompt,
		Greeting:   cfg.Shell.Greeting,
		Farewell:   cfg.Shell.Farewell,
		History:    cfg.Shell.History,
		Executor:   disp,
	})

	logger.Info("session started", zap.Strings("commands", disp.Commands()))
	err := sh.Run(ctx)
	logger.Info("session ended", zap.Int("records", dir.Len()), zap.Error(err))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// BirthdaysCmd prints the weekly birthday report for a YAML list of users.
type BirthdaysCmd struct {
	File  string `arg:"" type:"existingfile" help:"YAML file with name/birthday entries."`
	Today string `help:"Report as of this date (YYYY-MM-DD) instead of today."`
}

// Run executes the birthdays command.
func (b *BirthdaysCmd) Run() error {
	today := time.Now()
	if b.Today != "" {
		d, err := time.Parse(time.DateOnly, b.Today)
		if err != nil {
			return fmt.Errorf("birthdays: invalid --today %q: %w", b.Today, err)
		}
		today = d
	}
	return b.run(os.Stdout, today)
}

// run loads users and prints the report, enabling testable wiring.
func (b *BirthdaysCmd) run(w io.Writer, today time.Time) error {
	users, err := birthday.LoadUsers(b.File)
	if err != nil {
		return fmt.Errorf("birthdays: %w", err)
	}

	report := birthday.WeekReport(users, today)
	if report.Empty() {
		_, _ = fmt.Fprintln(w, "No birthdays in the coming week.")
		return nil
	}
	_, _ = fmt.Fprintln(w, report)
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitInput   = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var pe *birthday.ParseError
	var te *time.ParseError
	if errors.As(err, &pe) || errors.As(err, &te) {
		return exitInput
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("An in-memory contact assistant."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
