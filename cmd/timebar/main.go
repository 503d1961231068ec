// timebar: day, week, year, time-block and deadline progress in the terminal.
//
// Usage:
//
//	timebar [--config config.toml] [--verbose|--quiet] [--no-chime]
//	timebar snapshot [--view main|limits|blocks] [--remaining] [--at HH:MM]
//	timebar watch [--view ...] [--remaining]
//	timebar check
package main

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/timebar/internal/chime"
	"github.com/hammamikhairi/timebar/internal/config"
	"github.com/hammamikhairi/timebar/internal/display"
	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/logger"
	"github.com/hammamikhairi/timebar/internal/registry"
	"github.com/hammamikhairi/timebar/internal/render"
	"github.com/hammamikhairi/timebar/internal/view"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "timebar:", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	quiet      bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	var noChime bool
	var startView string

	root := &cobra.Command{
		Use:           "timebar",
		Short:         "Terminal dashboard of day, week, year and deadline progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !display.IsTerminal(os.Stdout) {
				return errors.New("stdout is not a terminal; use `timebar snapshot` or `timebar watch`")
			}
			a, err := load(g)
			if err != nil {
				return err
			}
			defer a.close()

			state, err := parseState(startView, false)
			if err != nil {
				return err
			}

			notifier := a.notifier(noChime)
			dash := display.New(a.reg, a.settings.RefreshInterval, a.log,
				display.WithNotifier(notifier),
				display.WithInitialState(state),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()
			return dash.Run(ctx)
		},
	}

	def := config.DefaultPath
	if env := os.Getenv(config.EnvConfigPath); env != "" {
		def = env
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", def, "settings file (.toml or .yaml), env "+config.EnvConfigPath)
	root.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "enable verbose/debug logging")
	root.PersistentFlags().BoolVar(&g.quiet, "quiet", false, "disable all logging")
	root.Flags().BoolVar(&noChime, "no-chime", false, "don't play a sound when a timer completes")
	root.Flags().StringVar(&startView, "view", "main", "view to start on: main|limits|blocks")

	root.AddCommand(newSnapshotCmd(&g))
	root.AddCommand(newWatchCmd(&g))
	root.AddCommand(newCheckCmd(&g))
	return root
}

func newSnapshotCmd(g *globalFlags) *cobra.Command {
	var viewName, at, color string
	var remaining bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print one frame and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := load(*g)
			if err != nil {
				return err
			}
			defer a.close()

			state, err := parseState(viewName, remaining)
			if err != nil {
				return err
			}
			if err := setColorProfile(color); err != nil {
				return err
			}

			now := time.Now()
			if at != "" {
				tod, err := domain.ParseTimeOfDay(at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				now = time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, now.Location())
			}
			return display.Snapshot(a.reg, state, now, cmd.OutOrStdout(), render.NewStyler(), a.log)
		},
	}
	cmd.Flags().StringVar(&viewName, "view", "main", "view to print: main|limits|blocks")
	cmd.Flags().BoolVar(&remaining, "remaining", false, "show time left instead of elapsed")
	cmd.Flags().StringVar(&at, "at", "", "pretend the clock reads HH:MM today")
	cmd.Flags().StringVar(&color, "color", "auto", "color output: auto|always|never")
	return cmd
}

func newWatchCmd(g *globalFlags) *cobra.Command {
	var viewName, color string
	var remaining, noChime bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Redraw one view in place without the interactive screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := load(*g)
			if err != nil {
				return err
			}
			defer a.close()

			state, err := parseState(viewName, remaining)
			if err != nil {
				return err
			}
			if err := setColorProfile(color); err != nil {
				return err
			}

			dash := display.New(a.reg, a.settings.RefreshInterval, a.log,
				display.WithNotifier(a.notifier(noChime)),
				display.WithInitialState(state),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return dash.RunPlain(ctx, cmd.OutOrStdout(), render.NewStyler())
		},
	}
	cmd.Flags().StringVar(&viewName, "view", "main", "view to show: main|limits|blocks")
	cmd.Flags().BoolVar(&remaining, "remaining", false, "show time left instead of elapsed")
	cmd.Flags().BoolVar(&noChime, "no-chime", false, "don't play a sound when a timer completes")
	cmd.Flags().StringVar(&color, "color", "auto", "color output: auto|always|never")
	return cmd
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and list what was loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(g.configPath)
			if err != nil {
				return err
			}
			sched, err := config.LoadSchedule(settings.TimerConfigPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "settings   %s\n", g.configPath)
			_, _ = fmt.Fprintf(out, "schedule   %s\n", settings.TimerConfigPath)
			_, _ = fmt.Fprintf(out, "refresh    %s\n", settings.RefreshInterval)
			_, _ = fmt.Fprintf(out, "chime      %t\n\n", settings.Chime)

			_, _ = fmt.Fprintf(out, "%d timers\n", len(sched.Timers))
			for _, t := range sched.Timers {
				_, _ = fmt.Fprintf(out, "  %s  %-20s %s (%s)\n", t.Target, t.Name, t.Message, t.Repeat)
			}
			_, _ = fmt.Fprintf(out, "%d time blocks\n", len(sched.TimeBlocks))
			for _, b := range sched.TimeBlocks {
				_, _ = fmt.Fprintf(out, "  %s-%s  %s\n", b.Start, b.End, b.Name)
			}
			return nil
		},
	}
}

// app holds what every command needs once configuration is loaded.
type app struct {
	settings domain.Settings
	reg      *registry.Registry
	log      *logger.Logger
	closeLog func() error
}

// load reads settings and schedule and opens the log. Any configuration
// error is returned before anything touches the terminal.
func load(g globalFlags) (*app, error) {
	settings, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	sched, err := config.LoadSchedule(settings.TimerConfigPath)
	if err != nil {
		return nil, err
	}

	levelName := settings.LogLevel
	if env := os.Getenv(config.EnvLogLevel); env != "" {
		levelName = env
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	if g.verbose {
		level = logger.LevelVerbose
	}
	if g.quiet {
		level = logger.LevelOff
	}

	// Direct logs to a file by default so the dashboard stays clean.
	out, closeLog, err := logger.OpenFile(settings.LogFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		out, closeLog = os.Stderr, func() error { return nil }
	}
	stdlog.SetOutput(out)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(level, out)
	log.Info("loaded %s: %d timers, %d time blocks", settings.TimerConfigPath, len(sched.Timers), len(sched.TimeBlocks))

	return &app{
		settings: settings,
		reg:      registry.New(sched, log),
		log:      log,
		closeLog: closeLog,
	}, nil
}

func (a *app) close() {
	_ = a.closeLog()
}

// notifier opens the audio device when chimes are enabled, falling back
// to a silent notifier.
func (a *app) notifier(disabled bool) domain.Notifier {
	if disabled || !a.settings.Chime {
		a.log.Info("chime disabled")
		return chime.NewNoOp(a.log)
	}
	player, err := chime.NewPlayer(a.log)
	if err != nil {
		a.log.Warn("audio unavailable, chime disabled: %v", err)
		return chime.NewNoOp(a.log)
	}
	return chime.NewNotifier(player, a.log)
}

func parseState(name string, remaining bool) (view.State, error) {
	v, ok := view.Parse(name)
	if !ok {
		return view.State{}, fmt.Errorf("unknown view %q (want main, limits or blocks)", name)
	}
	return view.State{Current: v, ShowRemaining: remaining}, nil
}

func setColorProfile(mode string) error {
	switch mode {
	case "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown --color %q (want auto, always or never)", mode)
	}
	return nil
}
