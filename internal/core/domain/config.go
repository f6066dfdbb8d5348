package domain

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultBranch is the manifest branch used when none is configured.
	DefaultBranch = "android-14.0.0_r1"
	// DefaultTarget is the lunch target used when none is configured.
	DefaultTarget = "aosp_cf_x86_64_phone-userdebug"
	// DefaultSyncJobs is the requested sync parallelism before clamping.
	DefaultSyncJobs = 4
	// DefaultManifestURL is the upstream AOSP manifest repository.
	DefaultManifestURL = "https://android.googlesource.com/platform/manifest"
	// DefaultHelperScript is the source location of the helper script, relative to the config directory.
	DefaultHelperScript = "scripts/build_helper.sh"
	// DefaultLogDir is the directory, relative to the working directory, holding build logs.
	DefaultLogDir = "logs"
	// DefaultCCacheExec is the compiler cache executable handed to the build.
	DefaultCCacheExec = "/usr/bin/ccache"
	// DefaultCCacheMaxSize is the compiler cache size ceiling.
	DefaultCCacheMaxSize = "50G"
	// DefaultRBEDir is the remote execution client location inside the source tree.
	DefaultRBEDir = "prebuilts/remoteexecution-client/live"
	// DefaultCIMarkerEnv is the environment variable whose presence enables artifact upload.
	DefaultCIMarkerEnv = "BUILDKITE"
	// DefaultCIAgent is the CI agent binary used for artifact upload.
	DefaultCIAgent = "buildkite-agent"
	// DefaultCILogSubdir is the build log directory, relative to the build directory, archived for CI.
	DefaultCILogSubdir = "out/logs"
	// ForceCleanEnv forces a clean build when set to a truthy value.
	ForceCleanEnv = "FORCE_CLEAN_BUILD"
	// ProductOutSubdir is where the build system places its products, relative to the build directory.
	ProductOutSubdir = "out/target/product"
)

// DefaultFallbackTargets are tried in order when the requested target cannot be selected.
var DefaultFallbackTargets = []string{
	"aosp_arm64-userdebug",
	"aosp_arm64-user",
	"aosp_x86_64-userdebug",
	"aosp_x86_64-user",
}

// CCacheConfig holds the compiler cache settings forwarded to the build.
type CCacheConfig struct {
	Enabled bool
	Exec    string
	Dir     string
	MaxSize string
}

// CIConfig holds the artifact upload settings.
type CIConfig struct {
	// Enabled is true when the CI marker variable is present in the environment.
	Enabled   bool
	MarkerEnv string
	Agent     string
	LogSubdir string
}

// BuildConfig is the resolved configuration of a single run.
// It is built once from defaults, the config file, the environment and flags,
// and passed by value to every phase afterwards.
type BuildConfig struct {
	Branch          string
	Target          string
	SyncJobs        int
	BuildDir        string
	RemoteExecution bool
	Clean           bool
	ListTargets     bool

	ManifestURL     string
	FallbackTargets []string
	HelperScript    string
	LogDir          string
	RBEDir          string

	CCache CCacheConfig
	CI     CIConfig
}

// DefaultBuildConfig returns the built-in defaults rooted at the given home and cache directories.
func DefaultBuildConfig(home, cacheHome string) BuildConfig {
	return BuildConfig{
		Branch:          DefaultBranch,
		Target:          DefaultTarget,
		SyncJobs:        DefaultSyncJobs,
		BuildDir:        filepath.Join(home, "aosp"),
		ManifestURL:     DefaultManifestURL,
		FallbackTargets: append([]string(nil), DefaultFallbackTargets...),
		HelperScript:    DefaultHelperScript,
		LogDir:          DefaultLogDir,
		RBEDir:          DefaultRBEDir,
		CCache: CCacheConfig{
			Enabled: true,
			Exec:    DefaultCCacheExec,
			Dir:     filepath.Join(cacheHome, "ccache"),
			MaxSize: DefaultCCacheMaxSize,
		},
		CI: CIConfig{
			MarkerEnv: DefaultCIMarkerEnv,
			Agent:     DefaultCIAgent,
			LogSubdir: DefaultCILogSubdir,
		},
	}
}

// Environ returns the variables the build toolchain expects, in KEY=VALUE form.
func (c BuildConfig) Environ() []string {
	var env []string
	if c.CCache.Enabled {
		env = append(env,
			"USE_CCACHE=1",
			"CCACHE_EXEC="+c.CCache.Exec,
			"CCACHE_DIR="+c.CCache.Dir,
			"CCACHE_MAXSIZE="+c.CCache.MaxSize,
		)
	} else {
		env = append(env, "USE_CCACHE=0")
	}
	if c.RemoteExecution {
		env = append(env,
			"USE_RBE=1",
			"RBE_DIR="+c.RBEDir,
		)
	}
	return env
}

// Fingerprint identifies the source tree and product a configuration produces.
func (c BuildConfig) Fingerprint() string {
	h := xxhash.New()
	for _, s := range []string{c.ManifestURL, c.Branch, c.Target, strconv.FormatBool(c.RemoteExecution)} {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// ConfigOverride mutates a configuration while it is being resolved.
type ConfigOverride func(*BuildConfig)

// Apply returns a copy of c with the overrides applied in order.
func (c BuildConfig) Apply(overrides ...ConfigOverride) BuildConfig {
	c.FallbackTargets = append([]string(nil), c.FallbackTargets...)
	for _, o := range overrides {
		o(&c)
	}
	return c
}

// WithBranch overrides the manifest branch.
func WithBranch(branch string) ConfigOverride {
	return func(c *BuildConfig) { c.Branch = branch }
}

// WithTarget overrides the requested lunch target.
func WithTarget(target string) ConfigOverride {
	return func(c *BuildConfig) { c.Target = target }
}

// WithSyncJobs overrides the requested sync parallelism.
func WithSyncJobs(jobs int) ConfigOverride {
	return func(c *BuildConfig) { c.SyncJobs = jobs }
}

// WithBuildDir overrides the build directory.
func WithBuildDir(dir string) ConfigOverride {
	return func(c *BuildConfig) { c.BuildDir = dir }
}

// WithRemoteExecution toggles remote build execution.
func WithRemoteExecution(enabled bool) ConfigOverride {
	return func(c *BuildConfig) { c.RemoteExecution = enabled }
}

// WithClean requests a clean build. A clean request from the environment is never cleared.
func WithClean(clean bool) ConfigOverride {
	return func(c *BuildConfig) { c.Clean = c.Clean || clean }
}

// WithListTargets switches the run to listing available targets.
func WithListTargets(list bool) ConfigOverride {
	return func(c *BuildConfig) { c.ListTargets = list }
}
