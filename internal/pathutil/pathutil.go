// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envVar = "INTERVALS_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths(os.Getenv(envVar))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:      "intervals",
		configFileName: "config.yml",
		dbFileName:     "intervals.db",
		statusFileName: "status.json",
		logFileName:    "intervals.log",
	}

	// e.g. INTERVALS_ENV=dev uses config_dev.yml and intervals_dev.db
	env = strings.TrimSpace(env)
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("intervals_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("intervals_%s.log", env)
	}

	return p
}

func Dir() string {
	return paths.configDir
}

func ConfigFilePath() string {
	return paths.configFilePath
}

func DBFilePath() string {
	return paths.dbFilePath
}

func StatusFilePath() string {
	return paths.statusFilePath
}

func LogFilePath() string {
	return paths.logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.configDir, p.dbFileName))
	if err != nil {
		return err
	}

	p.statusFilePath = filepath.Join(filepath.Dir(p.dbFilePath), p.statusFileName)

	p.logFilePath, err = xdg.DataFile(
		filepath.Join(p.configDir, "log", p.logFileName),
	)
	if err != nil {
		return err
	}

	return nil
}
