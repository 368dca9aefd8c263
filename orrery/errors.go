package orrery

import "fmt"

// ConfigError reports orbital elements that cannot describe a bound ellipse.
// It is fatal for the affected body.
type ConfigError struct {
	Body   string
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf(`invalid %s %v: %s`, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf(`body %s: invalid %s %v: %s`, e.Body, e.Field, e.Value, e.Reason)
}
