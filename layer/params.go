// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"math"
	"sort"
)

// Param keys understood by the standard kinds.
const (
	KeyHasParams   = "has_params"
	KeyTrainable   = "trainable"
	KeyWireReverse = "wire_reverse"
	KeyCircular    = "circular"
	KeyJump        = "jump"
)

// DefaultJump is the Pairwise wire offset when "jump" is absent.
const DefaultJump = 1

// Params carries extra construction arguments for a layer kind.
// Values are opaque to the composition engine; the standard kinds accept
// bool and integer values only.
type Params map[string]any

// Clone returns an independent copy. A nil receiver yields an empty, non-nil map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Merge returns a fresh map holding p overlaid with overrides; keys present
// in overrides win. Neither input is modified.
func (p Params) Merge(overrides Params) Params {
	out := p.Clone()
	for k, v := range overrides {
		out[k] = v
	}

	return out
}

// Keys returns the keys in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Bool reads a boolean param; an absent key reads as false.
func (p Params) Bool(key string) (bool, error) {
	v, ok := p[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s=%v (%T): want bool: %w", key, v, v, ErrParamType)
	}

	return b, nil
}

// Int reads an integer param, returning def when the key is absent.
// Integral floats are accepted since JSON decodes every number as float64.
// Integers that do not fit in an int are ErrInvalidParam.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
		return 0, fmt.Errorf("%s=%d: out of int range: %w", key, n, ErrInvalidParam)
	case uint:
		if n <= math.MaxInt {
			return int(n), nil
		}
		return 0, fmt.Errorf("%s=%d: out of int range: %w", key, n, ErrInvalidParam)
	case uint64:
		if n <= math.MaxInt {
			return int(n), nil
		}
		return 0, fmt.Errorf("%s=%d: out of int range: %w", key, n, ErrInvalidParam)
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			break
		}
		// -MinInt as a float is 2^63 (or 2^31), the first value past MaxInt.
		if n >= float64(math.MinInt) && n < -float64(math.MinInt) {
			return int(n), nil
		}
		return 0, fmt.Errorf("%s=%g: out of int range: %w", key, n, ErrInvalidParam)
	}

	return 0, fmt.Errorf("%s=%v (%T): want integer: %w", key, v, v, ErrParamType)
}

// checkKeys rejects any key not in allowed.
func (p Params) checkKeys(allowed ...string) error {
	for _, k := range p.Keys() {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%q: %w", k, ErrUnknownParam)
		}
	}

	return nil
}
