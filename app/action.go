package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/intervals/internal/apperr"
	"github.com/ayoisaiah/intervals/internal/config"
	"github.com/ayoisaiah/intervals/internal/engine"
	"github.com/ayoisaiah/intervals/internal/osutil"
	"github.com/ayoisaiah/intervals/internal/pathutil"
	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/internal/static"
	"github.com/ayoisaiah/intervals/internal/ui"
	"github.com/ayoisaiah/intervals/report"
	"github.com/ayoisaiah/intervals/store"
	"github.com/ayoisaiah/intervals/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envIntervalsNoColor = "INTERVALS_NO_COLOR"
	envDebug            = "INTERVALS_DEBUG"
)

var (
	errNoRoutines = &apperr.Error{
		Message: "no routines found: create one with 'intervals new'",
	}

	errUnknownRoutine = &apperr.Error{
		Message: "no routine matches %q: run 'intervals list' to see saved routines",
	}

	errRoutineArg = &apperr.Error{
		Message: "specify a routine by its id or name",
	}
)

// openStore connects to the database and seeds the preset routines if no
// routine exists.
func openStore() (*store.Client, error) {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, err
	}

	presets, err := static.Presets()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	seeded, err := db.SeedRoutines(presets)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if seeded {
		slog.Info("seeded preset routines", slog.Int("count", len(presets)))
	}

	return db, nil
}

// loadConfig reads the config file and applies command-line overrides. The
// first-run prompt is shown only when prompt is set.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// findRoutine resolves a routine by id or name.
func findRoutine(db store.DB, ref string) (*routine.Routine, error) {
	if ref == "" {
		return nil, errRoutineArg
	}

	routines, err := db.ListRoutines()
	if err != nil {
		return nil, err
	}

	r, ok := routine.Lookup(routines, ref)
	if !ok {
		return nil, errUnknownRoutine.Fmt(ref)
	}

	return r, nil
}

// pickRoutine asks the user to choose one of the saved routines.
func pickRoutine(db store.DB) (*routine.Routine, error) {
	routines, err := db.ListRoutines()
	if err != nil {
		return nil, err
	}

	if len(routines) == 0 {
		return nil, errNoRoutines
	}

	sortRoutines(routines)

	options := make([]huh.Option[int], len(routines))

	for i := range routines {
		label := fmt.Sprintf(
			"%s (%s)",
			routines[i].Name,
			routineDuration(&routines[i]),
		)

		options[i] = huh.NewOption(label, i)
	}

	var selected int

	err = huh.NewSelect[int]().
		Title("Choose a routine").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, err
	}

	return &routines[selected], nil
}

// startAction runs the routine named in the first argument, or one picked
// interactively.
func startAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	var r *routine.Routine

	if ref := ctx.Args().First(); ref != "" {
		r, err = findRoutine(db, ref)
	} else {
		r, err = pickRoutine(db)
	}

	if isAbort(err) {
		return nil
	}

	if err != nil {
		return err
	}

	logger := slog.Default().With(slog.String("routine_id", r.ID))

	t := timer.New(
		db,
		r,
		cfg,
		timer.WithStatusFile(pathutil.StatusFilePath()),
		timer.WithEngineOptions(engine.WithLogger(logger)),
	)

	return t.Run()
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// ensures the file exists before it is opened
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	cmd := exec.Command(osutil.Editor(), cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		os.Stdout,
	)
}

// resetSettingsAction restores the default app settings.
func resetSettingsAction(_ *cli.Context) error {
	err := config.ResetSettings(pathutil.ConfigFilePath())
	if err != nil {
		return err
	}

	report.SettingsReset()

	return nil
}

// setupLogging sends structured logs to a rotating file in the data
// directory.
func setupLogging() {
	level := slog.LevelInfo
	if _, exists := os.LookupEnv(envDebug); exists {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func beforeAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return fmt.Errorf("locating app directories: %w", err)
	}

	setupLogging()

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/intervals/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if INTERVALS_NO_COLOR is set
	if _, exists := os.LookupEnv(envIntervalsNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting intervals")

	return nil
}

// isAbort reports whether err came from the user dismissing a form.
func isAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
