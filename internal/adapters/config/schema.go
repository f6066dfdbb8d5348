package config

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "aospbuild.yaml"

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Configfile represents the structure of the aospbuild.yaml configuration file.
// Zero values leave the built-in default in place.
type Configfile struct {
	Branch          string    `yaml:"branch"`
	Target          string    `yaml:"target"`
	Jobs            int       `yaml:"jobs"`
	BuildDir        string    `yaml:"build_dir"`
	RBE             *bool     `yaml:"rbe"`
	ManifestURL     string    `yaml:"manifest_url"`
	FallbackTargets []string  `yaml:"fallback_targets"`
	HelperScript    string    `yaml:"helper_script"`
	LogDir          string    `yaml:"log_dir"`
	RBEDir          string    `yaml:"rbe_dir"`
	CCache          CCacheDTO `yaml:"ccache"`
	CI              CIDTO     `yaml:"ci"`
}

// CCacheDTO represents the compiler cache section.
type CCacheDTO struct {
	Enabled *bool  `yaml:"enabled"`
	Exec    string `yaml:"exec"`
	Dir     string `yaml:"dir"`
	MaxSize string `yaml:"max_size"`
}

// CIDTO represents the artifact upload section.
type CIDTO struct {
	MarkerEnv string `yaml:"marker_env"`
	Agent     string `yaml:"agent"`
	LogSubdir string `yaml:"log_subdir"`
}
