package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Infinity sentinel spellings accepted in numeric positions. Matching is
// case-sensitive, mirroring the input format definition.
var infinitySentinels = map[string]float64{
	"inf":       math.Inf(1),
	"infinity":  math.Inf(1),
	"-inf":      math.Inf(-1),
	"-infinity": math.Inf(-1),
	"ninf":      math.Inf(-1),
}

// coerceNumeric converts a JSON leaf into a float64.
//
// Numbers pass through unchanged. Strings are matched against the infinity
// sentinels, then parsed as decimal literals; an unparseable literal returns
// 0.0 together with ErrNumericParse carrying the offending text, so the
// caller decides whether that is fatal. Any other leaf type (bool, null,
// nested array/object) coerces to 0.0 without error.
func coerceNumeric(leaf json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(leaf, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(leaf, &s); err == nil {
		if v, ok := infinitySentinels[s]; ok {
			return v, nil
		}
		// ParseFloat accepts "Inf", "Infinity" and "NaN" in any case; only
		// the sentinel spellings above may produce non-finite values, and
		// NaN must never reach the bound checks.
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%q: %w", s, ErrNumericParse)
		}
		return v, nil
	}

	return 0, nil
}

// coerceSlice applies coerceNumeric element-wise into a freshly allocated
// slice. onFallback is invoked for each ErrNumericParse; returning a non-nil
// error aborts the conversion (strict mode), returning nil keeps the 0.0
// substitute (lenient mode).
func coerceSlice(leaves []json.RawMessage, onFallback func(index int, err error) error) ([]float64, error) {
	out := make([]float64, len(leaves))
	for i, leaf := range leaves {
		v, err := coerceNumeric(leaf)
		if err != nil {
			if ferr := onFallback(i, err); ferr != nil {
				return nil, ferr
			}
		}
		out[i] = v
	}
	return out, nil
}
