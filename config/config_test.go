package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"

	"git.c3pb.de/farhaven/solarsystem/orrery"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "solarsystem.toml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf(`can't write config: %s`, err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("", nil)
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	if mu := c.Physics.Mu(); mu != 100 {
		t.Errorf(`expected mu=100, got %f`, mu)
	}
	if c.Physics.BaseStep != 0.1 || c.Physics.ScaleStep != 0.4 || c.Physics.TimeScale != 1 {
		t.Errorf(`unexpected physics %+v`, c.Physics)
	}
	if c.Kepler.Tolerance != 1e-6 || c.Kepler.MaxIterations != 100 {
		t.Errorf(`unexpected kepler settings %+v`, c.Kepler)
	}
	if len(c.Bodies) != 8 {
		t.Errorf(`expected 8 default bodies, got %d`, len(c.Bodies))
	}

	els := c.Elements()
	if els[0].ID != "earth" || els[0].Texture != "earth.jpg" {
		t.Errorf(`expected elements sorted by id with default textures, got %+v`, els[0])
	}

	o, err := orrery.New(c.OrreryOptions())
	if err != nil {
		t.Fatalf(`default table rejected: %s`, err)
	}
	if ids := o.IDs(); ids[0] != "mercury" || ids[len(ids)-1] != "neptune" {
		t.Errorf(`unexpected body order %v`, ids)
	}
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
[physics]
g = 1
central_mass = 50
time_scale = -2

[kepler]
max_iterations = 20

[trail]
length = 0
min_spacing = 0

[bodies.vulcan]
mass = 0.5
semi_major_axis = 20
eccentricity = 0.3
radius = 1.5
rotation_speed = 4
texture = "lava.png"

[bodies.ceres]
semi_major_axis = 150
radius = 0.5
`)

	c, err := Load(p, nil)
	if err != nil {
		t.Fatalf(`%s`, err)
	}
	if c.Physics.Mu() != 50 || c.Physics.TimeScale != -2 {
		t.Errorf(`unexpected physics %+v`, c.Physics)
	}
	if c.Kepler.MaxIterations != 20 || c.Kepler.Tolerance != 1e-6 {
		t.Errorf(`unexpected kepler settings %+v`, c.Kepler)
	}
	if c.Trail.Length != 0 || c.Trail.MinSpacing != 0 {
		t.Errorf(`unexpected trail settings %+v`, c.Trail)
	}

	els := c.Elements()
	if len(els) != 2 {
		t.Fatalf(`expected only the configured bodies, got %d`, len(els))
	}
	if els[0].ID != "ceres" || els[0].Texture != "ceres.jpg" {
		t.Errorf(`unexpected ceres %+v`, els[0])
	}
	v := els[1]
	if v.ID != "vulcan" || v.SemiMajorAxis != 20 || v.Eccentricity != 0.3 || v.Radius != 1.5 || v.RotationSpeed != 4 || v.Texture != "lava.png" {
		t.Errorf(`unexpected vulcan %+v`, v)
	}

	if c.Clock().TimeScale() != -2 {
		t.Errorf(`clock does not carry the configured time scale`)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, content := range []string{
		"[physics]\ng = 0\n",
		"[physics]\nbase_step = -1\n",
		"[ui]\nwidth = 0\n",
		"[trail]\nlength = -5\n",
		"[ui]\nfps = 0\n",
	} {
		if _, err := Load(writeConfig(t, content), nil); err == nil {
			t.Errorf(`expected error for %q`, content)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil); err == nil {
		t.Errorf(`expected error for missing file`)
	}
}

func TestLoadInvalidElementsReachOrrery(t *testing.T) {
	c, err := Load(writeConfig(t, "[bodies.comet]\nsemi_major_axis = 10\neccentricity = 1.1\nradius = 1\n"), nil)
	if err != nil {
		t.Fatalf(`%s`, err)
	}
	if _, err := orrery.New(c.OrreryOptions()); err == nil {
		t.Errorf(`expected the orrery to reject e=1.1`)
	}
}

func TestLoadFlagsAndEnv(t *testing.T) {
	t.Setenv("SOLARSYSTEM_UI_HEIGHT", "600")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("width", 1200, "")
	fs.Float64("time-scale", 1, "")
	if err := fs.Parse([]string{"--width=640", "--time-scale=0.5"}); err != nil {
		t.Fatalf(`%s`, err)
	}

	c, err := Load("", fs)
	if err != nil {
		t.Fatalf(`%s`, err)
	}
	if c.UI.Width != 640 || c.UI.Height != 600 {
		t.Errorf(`expected 640x600, got %dx%d`, c.UI.Width, c.UI.Height)
	}
	if c.Physics.TimeScale != 0.5 {
		t.Errorf(`expected time scale 0.5, got %f`, c.Physics.TimeScale)
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	def, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	ex, err := Load(filepath.Join("..", "solarsystem.toml"), nil)
	if err != nil {
		t.Fatalf(`can't load example config: %s`, err)
	}

	if !reflect.DeepEqual(def, ex) {
		t.Errorf(`example config differs from defaults:\n%+v\n%+v`, def, ex)
	}
}
