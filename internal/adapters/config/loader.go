// Package config provides the configuration loader for aospbuild.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file and a dotenv file.
type FileConfigLoader struct {
	logger ports.Logger

	// Home and CacheHome root the default build and compiler cache directories.
	Home      string
	CacheHome string
	// EnvFile is the dotenv file name, resolved against the working directory.
	EnvFile string
	// LookupEnv reads the process environment.
	LookupEnv func(key string) (string, bool)
}

// NewLoader creates a loader rooted at the XDG base directories of the current user.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		logger:    logger,
		Home:      xdg.Home,
		CacheHome: xdg.CacheHome,
		EnvFile:   DefaultEnvFile,
		LookupEnv: os.LookupEnv,
	}
}

// Load resolves the configuration for a run started in cwd.
func (l *FileConfigLoader) Load(cwd, file string) (domain.BuildConfig, error) {
	cfg := domain.DefaultBuildConfig(l.Home, l.CacheHome)

	explicit := file != ""
	if !explicit {
		file = DefaultFilename
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(cwd, file)
	}

	cf, err := Load(file)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cf = &Configfile{}
	case err != nil:
		return domain.BuildConfig{}, err
	default:
		l.info("loaded configuration from " + file)
	}

	cf.apply(&cfg, filepath.Dir(file), cwd)

	env, err := l.environment(cwd)
	if err != nil {
		return domain.BuildConfig{}, err
	}
	if v, _ := env.Lookup(domain.ForceCleanEnv); isTruthy(v) {
		cfg.Clean = true
	}
	if cfg.CI.MarkerEnv != "" {
		_, cfg.CI.Enabled = env.Lookup(cfg.CI.MarkerEnv)
	}

	return cfg, nil
}

// Load reads a configuration file from the given path.
// An empty file yields an empty configuration; unknown keys are rejected.
func Load(path string) (*Configfile, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}
	defer func() { _ = f.Close() }()

	var cf Configfile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return &cf, nil
}

func (cf *Configfile) apply(cfg *domain.BuildConfig, configDir, cwd string) {
	if cf.Branch != "" {
		cfg.Branch = cf.Branch
	}
	if cf.Target != "" {
		cfg.Target = cf.Target
	}
	if cf.Jobs > 0 {
		cfg.SyncJobs = cf.Jobs
	}
	if cf.BuildDir != "" {
		cfg.BuildDir = resolvePath(cf.BuildDir, cwd)
	}
	if cf.RBE != nil {
		cfg.RemoteExecution = *cf.RBE
	}
	if cf.ManifestURL != "" {
		cfg.ManifestURL = cf.ManifestURL
	}
	if len(cf.FallbackTargets) > 0 {
		cfg.FallbackTargets = append([]string(nil), cf.FallbackTargets...)
	}
	if cf.HelperScript != "" {
		cfg.HelperScript = cf.HelperScript
	}
	cfg.HelperScript = resolvePath(cfg.HelperScript, configDir)
	if cf.LogDir != "" {
		cfg.LogDir = cf.LogDir
	}
	cfg.LogDir = resolvePath(cfg.LogDir, cwd)
	if cf.RBEDir != "" {
		cfg.RBEDir = cf.RBEDir
	}

	if cf.CCache.Enabled != nil {
		cfg.CCache.Enabled = *cf.CCache.Enabled
	}
	if cf.CCache.Exec != "" {
		cfg.CCache.Exec = cf.CCache.Exec
	}
	if cf.CCache.Dir != "" {
		cfg.CCache.Dir = resolvePath(cf.CCache.Dir, cwd)
	}
	if cf.CCache.MaxSize != "" {
		cfg.CCache.MaxSize = cf.CCache.MaxSize
	}

	if cf.CI.MarkerEnv != "" {
		cfg.CI.MarkerEnv = cf.CI.MarkerEnv
	}
	if cf.CI.Agent != "" {
		cfg.CI.Agent = cf.CI.Agent
	}
	if cf.CI.LogSubdir != "" {
		cfg.CI.LogSubdir = cf.CI.LogSubdir
	}
}

// envLayer resolves variables from the process environment first and the dotenv file second.
type envLayer struct {
	file      map[string]string
	lookupEnv func(string) (string, bool)
}

// Lookup returns the value of key and whether it is set in either layer.
func (e envLayer) Lookup(key string) (string, bool) {
	if v, ok := e.lookupEnv(key); ok {
		return v, true
	}
	v, ok := e.file[key]
	return v, ok
}

// environment reads the dotenv file of cwd without touching the process environment.
func (l *FileConfigLoader) environment(cwd string) (envLayer, error) {
	layer := envLayer{lookupEnv: l.LookupEnv}
	if layer.lookupEnv == nil {
		layer.lookupEnv = os.LookupEnv
	}
	if l.EnvFile == "" {
		return layer, nil
	}

	path := resolvePath(l.EnvFile, cwd)
	values, err := godotenv.Read(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return layer, nil
	case err != nil:
		return envLayer{}, zerr.With(zerr.Wrap(err, "failed to parse env file"), "path", path)
	}
	layer.file = values
	return layer, nil
}

// isTruthy accepts the usual spellings of an enabled flag.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "on":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func resolvePath(path, base string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func (l *FileConfigLoader) info(msg string) {
	if l.logger != nil {
		l.logger.Info(msg)
	}
}
