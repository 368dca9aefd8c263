package orrery

const (
	DefaultBaseStep  = 0.1
	DefaultScaleStep = 0.4
)

// Clock is the simulation time and the user controlled time scale. It is
// owned by a single goroutine: the input handler adjusts the scale between
// ticks and the orrery reads it once per tick.
type Clock struct {
	simTime   float64
	timeScale float64
	baseStep  float64
	scaleStep float64
}

// NewClock returns a clock at simulated time 0. Non-positive steps fall back
// to DefaultBaseStep and DefaultScaleStep.
func NewClock(baseStep, scaleStep, timeScale float64) *Clock {
	if baseStep <= 0 {
		baseStep = DefaultBaseStep
	}
	if scaleStep <= 0 {
		scaleStep = DefaultScaleStep
	}
	return &Clock{timeScale: timeScale, baseStep: baseStep, scaleStep: scaleStep}
}

func (c *Clock) SimTime() float64   { return c.simTime }
func (c *Clock) TimeScale() float64 { return c.timeScale }
func (c *Clock) BaseStep() float64  { return c.baseStep }

// Advance moves simulated time by baseStep*scale and returns the new time.
// A negative scale runs time backwards.
func (c *Clock) Advance(scale float64) float64 {
	c.simTime += c.baseStep * scale
	return c.simTime
}

func (c *Clock) Faster() { c.timeScale += c.scaleStep }
func (c *Clock) Slower() { c.timeScale -= c.scaleStep }

func (c *Clock) SetTimeScale(s float64) { c.timeScale = s }

// Reset sets the simulated time to t without touching the time scale.
func (c *Clock) Reset(t float64) { c.simTime = t }
