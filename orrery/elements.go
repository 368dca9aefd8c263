package orrery

import (
	"errors"
	"fmt"
	"math"
)

// Elements are the immutable parameters of one orbiting body.
type Elements struct {
	ID string

	Mass          float64 // relative mass, informational only
	SemiMajorAxis float64
	Eccentricity  float64
	Radius        float64 // display radius
	RotationSpeed float64 // degrees per tick
	Texture       string
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate checks the invariants 0 <= e < 1, a > 0 and Radius > 0.
func (el Elements) Validate() error {
	bad := func(field string, v float64, reason string) error {
		return &ConfigError{Body: el.ID, Field: field, Value: v, Reason: reason}
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{`mass`, el.Mass},
		{`semi-major axis`, el.SemiMajorAxis},
		{`eccentricity`, el.Eccentricity},
		{`radius`, el.Radius},
		{`rotation speed`, el.RotationSpeed},
	} {
		if !finite(f.v) {
			return bad(f.name, f.v, `not a finite number`)
		}
	}

	switch {
	case el.SemiMajorAxis <= 0:
		return bad(`semi-major axis`, el.SemiMajorAxis, `must be positive`)
	case el.Eccentricity < 0 || el.Eccentricity >= 1:
		return bad(`eccentricity`, el.Eccentricity, `must be in [0, 1)`)
	case el.Radius <= 0:
		return bad(`radius`, el.Radius, `must be positive`)
	case el.Mass < 0:
		return bad(`mass`, el.Mass, `must not be negative`)
	}

	return nil
}

// validateAll checks every element set and rejects missing or duplicate IDs.
func validateAll(els []Elements) error {
	seen := make(map[string]bool, len(els))
	var errs []error
	for _, el := range els {
		if el.ID == "" {
			errs = append(errs, errors.New(`body without identifier`))
			continue
		}
		if seen[el.ID] {
			errs = append(errs, fmt.Errorf(`duplicate body %s`, el.ID))
			continue
		}
		seen[el.ID] = true

		if err := el.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
