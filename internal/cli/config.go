package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoimport/pkg/errors"
	"github.com/matzehuels/cargoimport/pkg/index"
	pkgio "github.com/matzehuels/cargoimport/pkg/io"
	"github.com/matzehuels/cargoimport/pkg/pipeline"
	"github.com/matzehuels/cargoimport/pkg/registry"
)

// =============================================================================
// Config File
// =============================================================================

// fileConfig mirrors config.toml. Empty fields leave the default in place.
type fileConfig struct {
	IndexDir  string `toml:"index_dir"`
	Pattern   string `toml:"pattern"`
	Namespace string `toml:"namespace"`
	Merge     string `toml:"merge"`
	Format    string `toml:"format"`
}

// configPath returns the default config file location using the XDG
// standard (~/.config/cargoimport/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path, or at [configPath] when path is
// empty. A missing default file is not an error; a missing explicit one is.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// apply copies the set fields of cfg onto opts.
func (cfg fileConfig) apply(opts *pipeline.Options) error {
	if cfg.IndexDir != "" {
		opts.IndexDir = expandHome(cfg.IndexDir)
	}
	if cfg.Pattern != "" {
		opts.Pattern = cfg.Pattern
	}
	if cfg.Namespace != "" {
		opts.Namespace = cfg.Namespace
	}
	if cfg.Merge != "" {
		s, err := registry.ParseStrategy(cfg.Merge)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config merge")
		}
		opts.Merge = s
	}
	if cfg.Format != "" {
		f, err := pkgio.ParseFormat(cfg.Format)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config format")
		}
		opts.Format = f
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// =============================================================================
// Import Flags
// =============================================================================

// importFlags are the flags shared by every command that runs an import.
// Only the root command registers json.
type importFlags struct {
	config    string
	indexDir  string
	pattern   string
	namespace string
	merge     string
	json      bool
}

func (f *importFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/cargoimport/config.toml)")
	fl.StringVar(&f.indexDir, "index", "", "index root (default ~/.cargo/registry/index)")
	fl.StringVar(&f.pattern, "pattern", index.DefaultPattern, "glob selecting index files below the index root")
	fl.StringVar(&f.namespace, "namespace", registry.DefaultNamespace, "namespace prefixed to package names")
	fl.StringVar(&f.merge, "merge", registry.StrategyReplace.String(), "how packages found in several registries combine: replace or union")
}

// options resolves defaults, then the config file, then explicitly set flags.
func (f *importFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.Options{
		IndexDir:  pipeline.DefaultIndexDir(),
		Pattern:   index.DefaultPattern,
		Namespace: registry.DefaultNamespace,
		Merge:     registry.StrategyReplace,
		Format:    pkgio.FormatBinary,
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		return opts, err
	}
	if err := cfg.apply(&opts); err != nil {
		return opts, err
	}

	fl := cmd.Flags()
	if fl.Changed("index") {
		opts.IndexDir = f.indexDir
	}
	if fl.Changed("pattern") {
		opts.Pattern = f.pattern
	}
	if fl.Changed("namespace") {
		opts.Namespace = f.namespace
	}
	if fl.Changed("merge") {
		s, err := registry.ParseStrategy(f.merge)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "--merge")
		}
		opts.Merge = s
	}
	if fl.Changed("json") {
		opts.Format = pkgio.FormatBinary
		if f.json {
			opts.Format = pkgio.FormatText
		}
	}
	return opts, nil
}
