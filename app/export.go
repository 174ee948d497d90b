package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/intervals/internal/apperr"
	"github.com/ayoisaiah/intervals/internal/config"
	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/pathutil"
	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/report"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	errUnknownFormat = &apperr.Error{
		Message: "unknown export format %q: use json or yaml",
	}

	errDecodeBackup = &apperr.Error{
		Message: "unable to read export file",
	}

	errEmptyBackup = &apperr.Error{
		Message: "the export file contains neither routines nor settings",
	}

	errImportArg = &apperr.Error{
		Message: "specify the file to import",
	}
)

// newBackup builds the export envelope.
func newBackup(
	routines []routine.Routine,
	settings config.SettingsConfig,
	exportedAt time.Time,
) *models.Backup {
	if routines == nil {
		routines = []routine.Routine{}
	}

	return &models.Backup{
		Routines:   routines,
		Settings:   &settings,
		ExportedAt: exportedAt.UTC(),
		Version:    models.BackupVersion,
	}
}

// writeBackup encodes b in the given format.
func writeBackup(w io.Writer, b *models.Backup, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(b)
	case formatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(b); err != nil {
			return err
		}

		return enc.Close()
	default:
		return errUnknownFormat.Fmt(format)
	}
}

// readBackup decodes an export file. YAML is assumed for .yml and .yaml
// files, JSON for everything else.
func readBackup(data []byte, fileName string) (*models.Backup, error) {
	var (
		b   models.Backup
		err error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &b)
	default:
		err = json.Unmarshal(data, &b)
	}

	if err != nil {
		return nil, errDecodeBackup.Wrap(err)
	}

	if b.Routines == nil && b.Settings == nil {
		return nil, errEmptyBackup
	}

	for i := range b.Routines {
		if b.Routines[i].ID == "" {
			b.Routines[i].ID = routine.NewID()
		}
	}

	return &b, nil
}

// exportAction writes all routines and the app settings to stdout or a file.
func exportAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	routines, err := db.ListRoutines()
	if err != nil {
		return err
	}

	sortRoutines(routines)

	b := newBackup(routines, cfg.Settings, time.Now())

	output := ctx.String("output")
	if output == "" {
		return writeBackup(os.Stdout, b, ctx.String("format"))
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	defer f.Close()

	if err := writeBackup(f, b, ctx.String("format")); err != nil {
		return err
	}

	report.Exported(len(b.Routines), output)

	return nil
}

// importAction replaces the saved routines and settings with those in an
// export file. Sections missing from the file are left alone.
func importAction(ctx *cli.Context) error {
	fileName := ctx.Args().First()
	if fileName == "" {
		return errImportArg
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	b, err := readBackup(data, fileName)
	if err != nil {
		return err
	}

	if b.Settings != nil {
		if err := b.Settings.Validate(); err != nil {
			return err
		}
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	if b.Routines != nil {
		ok, err := confirm(
			fmt.Sprintf(
				"All saved routines will be replaced by the %d in %s. Proceed?",
				len(b.Routines),
				fileName,
			),
			ctx.Bool("yes"),
		)
		if err != nil || !ok {
			return err
		}

		if err := db.ReplaceRoutines(b.Routines); err != nil {
			return err
		}

		report.RoutinesImported(len(b.Routines))
	}

	if b.Settings != nil {
		if err := config.SaveSettings(pathutil.ConfigFilePath(), *b.Settings); err != nil {
			return err
		}

		report.SettingsImported()
	}

	return nil
}
