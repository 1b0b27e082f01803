package bootstrap

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "GRASPROS"

// LinkConfig is one symlink mapping as it appears in the configuration
// file.
type LinkConfig struct {
	Target string `mapstructure:"target"`
	Alias  string `mapstructure:"alias"`
}

// Config holds the tunable parts of the provisioning plan. Every value has
// a default matching the CUDA 10.2 host layout; a YAML file and GRASPROS_*
// environment variables override them.
type Config struct {
	CudaLibDir   string       `mapstructure:"cuda_lib_dir"`
	SystemLibDir string       `mapstructure:"system_lib_dir"`
	Profile      string       `mapstructure:"profile"`
	Links        []LinkConfig `mapstructure:"links"`
}

// LoadConfig reads the bootstrapper configuration. path may be empty, in
// which case only defaults and environment overrides apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("cuda_lib_dir", "/usr/local/cuda-10.2/lib64")
	v.SetDefault("system_lib_dir", "/usr/lib/x86_64-linux-gnu")
	v.SetDefault("profile", defaultProfile())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

// DefaultPlan is the six-link CUDA 10.2 plan with the stock directories and
// the current user's .bashrc.
func DefaultPlan() Plan {
	cfg := Config{
		CudaLibDir:   "/usr/local/cuda-10.2/lib64",
		SystemLibDir: "/usr/lib/x86_64-linux-gnu",
		Profile:      defaultProfile(),
	}
	return cfg.Plan()
}

func defaultProfile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bashrc"
	}
	return filepath.Join(home, ".bashrc")
}

// Plan builds the provisioning plan from the configuration. Without an
// explicit link table it returns the six-link CUDA 10.2 plan: the cudart,
// cublas, cufft, curand and cusolver 10.0 sonames aliased to the installed
// 10.2 libraries, plus the cuDNN 7 soname in the system library directory.
func (c *Config) Plan() Plan {
	plan := Plan{
		SearchDirs: []string{c.CudaLibDir, c.SystemLibDir},
		Profile:    c.Profile,
	}

	if len(c.Links) > 0 {
		for _, l := range c.Links {
			plan.Links = append(plan.Links, Link{Target: l.Target, Alias: l.Alias})
		}
		return plan
	}

	for _, lib := range []string{"libcudart", "libcublas", "libcufft", "libcurand", "libcusolver"} {
		plan.Links = append(plan.Links, Link{
			Target: filepath.Join(c.CudaLibDir, lib+".so.10.2"),
			Alias:  filepath.Join(c.CudaLibDir, lib+".so.10.0"),
		})
	}
	plan.Links = append(plan.Links, Link{
		Target: filepath.Join(c.SystemLibDir, "libcudnn.so.7.6.5"),
		Alias:  filepath.Join(c.SystemLibDir, "libcudnn.so.7"),
	})
	return plan
}
