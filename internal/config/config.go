// Package config binds bptreectl's flags and BPTREE_* environment
// variables into a single resolved configuration, the way the
// tuannm99-novasql corpus wires viper ahead of its command tree.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved set of knobs a bptreectl invocation runs with.
type Config struct {
	// Path is the backing file for the tree.
	Path string

	// Degree is the branching factor d (minimum 3) passed to bptree.New.
	Degree int

	// Truncate discards any existing contents of Path on open.
	Truncate bool

	// MetricsListen is the address the bench command's Prometheus handler
	// listens on. Empty disables it.
	MetricsListen string
}

// Bind registers the flags shared by bptreectl's subcommands onto fs and
// returns a Resolver that produces a Config once flags are parsed.
func Bind(fs *pflag.FlagSet) *Resolver {
	fs.String("path", "bptree.db", "path to the backing store file")
	fs.Int("degree", 64, "b+tree branching degree")
	fs.Bool("truncate", false, "truncate the backing store file on open")
	fs.String("metrics-listen", "", "address for the Prometheus metrics endpoint (bench only)")

	v := viper.New()
	v.SetEnvPrefix("BPTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		panic(errors.Wrap(err, "config: bind flags"))
	}
	return &Resolver{v: v}
}

// Resolver produces a Config after the owning command's flags are parsed.
type Resolver struct {
	v *viper.Viper
}

// Resolve reads the bound flags and BPTREE_* environment overrides into a
// Config, validating the invariants the core engine assumes.
func (r *Resolver) Resolve() (Config, error) {
	cfg := Config{
		Path:          r.v.GetString("path"),
		Degree:        r.v.GetInt("degree"),
		Truncate:      r.v.GetBool("truncate"),
		MetricsListen: r.v.GetString("metrics-listen"),
	}
	if cfg.Degree < 3 {
		return Config{}, errors.Newf("config: degree must be >= 3, got %d", cfg.Degree)
	}
	if cfg.Path == "" {
		return Config{}, errors.New("config: path must not be empty")
	}
	return cfg, nil
}
