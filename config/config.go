// Package config loads the orbital element table and run settings.
//
// Values come from, in increasing priority: built-in defaults, an optional
// TOML file, SOLARSYSTEM_* environment variables and bound command line flags.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"git.c3pb.de/farhaven/solarsystem/kepler"
	"git.c3pb.de/farhaven/solarsystem/orrery"
)

const EnvPrefix = "SOLARSYSTEM"

type Physics struct {
	G           float64 `mapstructure:"g"`
	CentralMass float64 `mapstructure:"central_mass"`
	BaseStep    float64 `mapstructure:"base_step"`
	ScaleStep   float64 `mapstructure:"scale_step"`
	TimeScale   float64 `mapstructure:"time_scale"`
}

// Mu is the gravitational parameter G*M of the central mass.
func (p Physics) Mu() float64 {
	return p.G * p.CentralMass
}

type Kepler struct {
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
}

type Trail struct {
	Length     int     `mapstructure:"length"`
	MinSpacing float64 `mapstructure:"min_spacing"`
}

type Sun struct {
	Radius  float64 `mapstructure:"radius"`
	Texture string  `mapstructure:"texture"`
}

type UI struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	FPS    float64 `mapstructure:"fps"`
	Assets string  `mapstructure:"assets"`
	Font   string  `mapstructure:"font"`
}

// Body is one row of the orbital element table.
type Body struct {
	Mass          float64 `mapstructure:"mass"`
	SemiMajorAxis float64 `mapstructure:"semi_major_axis"`
	Eccentricity  float64 `mapstructure:"eccentricity"`
	Radius        float64 `mapstructure:"radius"`
	RotationSpeed float64 `mapstructure:"rotation_speed"`
	Texture       string  `mapstructure:"texture"`
}

type Config struct {
	Physics Physics         `mapstructure:"physics"`
	Kepler  Kepler          `mapstructure:"kepler"`
	Trail   Trail           `mapstructure:"trail"`
	Sun     Sun             `mapstructure:"sun"`
	UI      UI              `mapstructure:"ui"`
	Bodies  map[string]Body `mapstructure:"bodies"`
}

// DefaultBodies is the eight planet table in simulation units.
func DefaultBodies() map[string]Body {
	return map[string]Body{
		"mercury": {Mass: 0.0553, SemiMajorAxis: 45, Radius: 1.383, Eccentricity: 0.2056, RotationSpeed: 0.3},
		"venus":   {Mass: 0.815, SemiMajorAxis: 65, Radius: 1.949, Eccentricity: 0.0068, RotationSpeed: 0.2},
		"earth":   {Mass: 1.0, SemiMajorAxis: 85, Radius: 2.0, Eccentricity: 0.0167, RotationSpeed: 1},
		"mars":    {Mass: 0.107, SemiMajorAxis: 125, Radius: 1.532, Eccentricity: 0.0934, RotationSpeed: 0.96},
		"jupiter": {Mass: 317.8, SemiMajorAxis: 175, Radius: 11.209, Eccentricity: 0.0489, RotationSpeed: 2.1},
		"saturn":  {Mass: 95.2, SemiMajorAxis: 235, Radius: 9.449, Eccentricity: 0.0565, RotationSpeed: 2.7},
		"uranus":  {Mass: 14.5, SemiMajorAxis: 275, Radius: 4.007, Eccentricity: 0.0463, RotationSpeed: 1.4},
		"neptune": {Mass: 17.1, SemiMajorAxis: 335, Radius: 3.883, Eccentricity: 0.0100, RotationSpeed: 0.4},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("physics.g", 0.1)
	v.SetDefault("physics.central_mass", 1000)
	v.SetDefault("physics.base_step", orrery.DefaultBaseStep)
	v.SetDefault("physics.scale_step", orrery.DefaultScaleStep)
	v.SetDefault("physics.time_scale", 1)

	v.SetDefault("kepler.tolerance", kepler.DefaultTolerance)
	v.SetDefault("kepler.max_iterations", kepler.DefaultMaxIterations)

	v.SetDefault("trail.length", 8192)
	v.SetDefault("trail.min_spacing", 0.5)

	v.SetDefault("sun.radius", orrery.DefaultSunRadius)
	v.SetDefault("sun.texture", "sun.jpg")

	v.SetDefault("ui.width", 1200)
	v.SetDefault("ui.height", 800)
	v.SetDefault("ui.fps", 60)
	v.SetDefault("ui.assets", "assets")
	v.SetDefault("ui.font", "")
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"time-scale":   "physics.time_scale",
	"trail-length": "trail.length",
	"width":        "ui.width",
	"height":       "ui.height",
	"fps":          "ui.fps",
	"assets":       "ui.assets",
}

// Load reads the configuration. path may be empty; flags may be nil. Only the
// flags listed in flagKeys that exist in the set are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf(`can't bind flag %s: %w`, name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf(`can't read config %s: %w`, path, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf(`can't decode config: %w`, err)
	}
	if len(c.Bodies) == 0 {
		c.Bodies = DefaultBodies()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the run settings. Orbital elements are checked by the orrery.
func (c *Config) Validate() error {
	var errs []error
	if mu := c.Physics.Mu(); !(mu > 0) {
		errs = append(errs, fmt.Errorf(`physics: G*M must be positive, got %v`, mu))
	}
	if !(c.Physics.BaseStep > 0) {
		errs = append(errs, fmt.Errorf(`physics: base_step must be positive, got %v`, c.Physics.BaseStep))
	}
	if c.Trail.Length < 0 {
		errs = append(errs, fmt.Errorf(`trail: length must not be negative, got %d`, c.Trail.Length))
	}
	if c.Trail.MinSpacing < 0 {
		errs = append(errs, fmt.Errorf(`trail: min_spacing must not be negative, got %v`, c.Trail.MinSpacing))
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf(`ui: invalid window size %dx%d`, c.UI.Width, c.UI.Height))
	}
	if !(c.UI.FPS > 0) {
		errs = append(errs, fmt.Errorf(`ui: fps must be positive, got %v`, c.UI.FPS))
	}
	return errors.Join(errs...)
}

// Elements returns the body table sorted by identifier. Bodies without a
// texture use "<id>.jpg".
func (c *Config) Elements() []orrery.Elements {
	ids := make([]string, 0, len(c.Bodies))
	for id := range c.Bodies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	r := make([]orrery.Elements, 0, len(ids))
	for _, id := range ids {
		b := c.Bodies[id]
		tex := b.Texture
		if tex == "" {
			tex = id + ".jpg"
		}
		r = append(r, orrery.Elements{
			ID:            id,
			Mass:          b.Mass,
			SemiMajorAxis: b.SemiMajorAxis,
			Eccentricity:  b.Eccentricity,
			Radius:        b.Radius,
			RotationSpeed: b.RotationSpeed,
			Texture:       tex,
		})
	}
	return r
}

func (c *Config) Solver() kepler.Solver {
	return kepler.Solver{Tolerance: c.Kepler.Tolerance, MaxIterations: c.Kepler.MaxIterations}
}

func (c *Config) Clock() *orrery.Clock {
	return orrery.NewClock(c.Physics.BaseStep, c.Physics.ScaleStep, c.Physics.TimeScale)
}

// OrreryOptions assembles the orrery settings. Logger and metrics are left to the caller.
func (c *Config) OrreryOptions() orrery.Options {
	return orrery.Options{
		Mu:     c.Physics.Mu(),
		Solver: c.Solver(),
		Clock:  c.Clock(),
		Trail:  orrery.TrailPolicy{Length: c.Trail.Length, MinSpacing: c.Trail.MinSpacing},
		Sun:    orrery.Sun{Radius: c.Sun.Radius, Texture: c.Sun.Texture},
		Bodies: c.Elements(),
	}
}
