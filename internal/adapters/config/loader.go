// Package config loads the run configuration from the environment and an optional
// YAML file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "CARRY"

// Configuration keys. Each is read from CARRY_<KEY> or the config file.
const (
	KeyConfigFile = "config"
	KeyDir        = "dir"
	KeyTimeout    = "timeout"
	KeyOS         = "os"
	KeyDetector   = "detector"
	KeyArchiver   = "archiver"
	KeyLogFormat  = "log_format"
)

const (
	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

// Loader implements ports.ConfigLoader on viper.
type Loader struct {
	homeDir func() (string, error)
}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{homeDir: os.UserHomeDir}
}

// Load builds a domain.Config from defaults, the optional config file named by
// CARRY_CONFIG and CARRY_* environment variables, in increasing precedence.
func (l *Loader) Load() (*domain.Config, error) {
	home, _ := l.homeDir()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaultDir := domain.DefaultStateDirName
	if home != "" {
		defaultDir = filepath.Join(home, domain.DefaultStateDirName)
	}
	v.SetDefault(KeyDir, defaultDir)
	v.SetDefault(KeyTimeout, domain.DefaultTimeoutSeconds)
	v.SetDefault(KeyOS, runtime.GOOS)
	v.SetDefault(KeyDetector, string(domain.DetectorAuto))
	v.SetDefault(KeyArchiver, string(domain.ArchiverAuto))
	v.SetDefault(KeyLogFormat, logFormatPretty)

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(domain.ExpandHome(path, home))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
	}

	dir, err := filepath.Abs(domain.ExpandHome(v.GetString(KeyDir), home))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", v.GetString(KeyDir))
	}

	timeout := v.GetInt(KeyTimeout)
	if timeout <= 0 {
		return nil, invalid(KeyTimeout, v.GetString(KeyTimeout))
	}

	detector := domain.DetectorMode(strings.ToLower(v.GetString(KeyDetector)))
	if !slices.Contains([]domain.DetectorMode{domain.DetectorAuto, domain.DetectorContent, domain.DetectorMtime}, detector) {
		return nil, invalid(KeyDetector, string(detector))
	}

	archiver := domain.ArchiverMode(strings.ToLower(v.GetString(KeyArchiver)))
	if !slices.Contains([]domain.ArchiverMode{domain.ArchiverAuto, domain.ArchiverTar, domain.ArchiverNative}, archiver) {
		return nil, invalid(KeyArchiver, string(archiver))
	}

	format := strings.ToLower(v.GetString(KeyLogFormat))
	if format != logFormatPretty && format != logFormatJSON {
		return nil, invalid(KeyLogFormat, format)
	}

	return &domain.Config{
		StateDir: dir,
		Timeout:  time.Duration(timeout) * time.Second,
		OSHint:   v.GetString(KeyOS),
		Detector: detector,
		Archiver: archiver,
		JSONLogs: format == logFormatJSON,
	}, nil
}

func invalid(key, value string) error {
	err := zerr.Wrap(domain.ErrInvalidConfig, "invalid configuration value")
	err = zerr.With(err, "key", key)
	return zerr.With(err, "value", value)
}
