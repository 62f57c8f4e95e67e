// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// validate.go — membership check for a single shape.

package shape

// Validate reports whether s satisfies the bounds, product and GCD targets
// configured by opts. The dimension count is len(s). Randomness options are
// ignored.
//
// Malformed options yield ErrInvalidArgument; a violated constraint yields
// an error matching ErrInfeasible.
func Validate(s Shape, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := validateRequest(MethodValidate, len(s), cfg); err != nil {
		return err
	}
	if len(s) == 0 {
		return checkZeroDimensions(MethodValidate, cfg)
	}

	hit := false
	for i, d := range s {
		if d < cfg.minSize || d > cfg.maxSize {
			return shapeErrorf(MethodValidate, ErrInfeasible, "axis %d = %d outside [%d,%d]", i, d, cfg.minSize, cfg.maxSize)
		}
		if cfg.hasGCD && d == cfg.gcd {
			hit = true
		}
	}
	if cfg.hasTotal {
		if p := productSat(s); p != cfg.totalElements {
			return shapeErrorf(MethodValidate, ErrInfeasible, "product of %v is not %d", s, cfg.totalElements)
		}
	}
	if cfg.hasGCD {
		if g := s.GCD(); g != cfg.gcd || !hit {
			return shapeErrorf(MethodValidate, ErrInfeasible, "gcd of %v is %d, want %d with an axis equal to it", s, g, cfg.gcd)
		}
	}

	return nil
}

// productSat multiplies positive entries with saturation.
func productSat(s Shape) int {
	p := 1
	for _, d := range s {
		p = mulSat(p, d)
	}
	return p
}
