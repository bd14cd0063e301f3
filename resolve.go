package strfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// resolve narrows v through the selector chain, left to right.
func resolve(v Value, selectors []Selector) (Value, error) {
	if len(selectors) == 0 {
		return v, nil
	}
	next, err := selectOne(v, selectors[0])
	if err != nil {
		return Value{}, err
	}
	return resolve(next, selectors[1:])
}

func selectOne(v Value, s Selector) (Value, error) {
	if v.sel != nil {
		x, err := v.sel.Select(s.Name)
		if err != nil {
			return Value{}, &ResolutionError{Pos: s.Pos, Msg: fmt.Sprintf("cannot select %s", s), Err: err}
		}
		return ValueOf(x), nil
	}

	switch v.kind {
	case KindSeq:
		i, ok := ordinal(s.Name)
		if !ok {
			return Value{}, resolveErrorf(s.Pos, "sequence index %q is not a number", s.Name)
		}
		if i >= len(v.elems) {
			return Value{}, resolveErrorf(s.Pos, "index %d out of range for sequence of length %d", i, len(v.elems))
		}
		return v.elems[i], nil
	case KindMap:
		val, ok := v.Lookup(s.Name)
		if !ok {
			return Value{}, resolveErrorf(s.Pos, "key %q not found", s.Name)
		}
		return val, nil
	case KindPair:
		switch s.Name {
		case "first", "0":
			return v.elems[0], nil
		case "second", "1":
			return v.elems[1], nil
		}
		return Value{}, resolveErrorf(s.Pos, "pair has no element %q", s.Name)
	case KindInt:
		return intTransform(v.num, s)
	case KindFloat:
		return floatTransform(v.flt, s)
	}
	return Value{}, resolveErrorf(s.Pos, "cannot apply %s to %s value", s, v.kind)
}

func resolveErrorf(pos int, format string, args ...any) *ResolutionError {
	return &ResolutionError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func ordinal(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if !isDigit(name[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	return n, true
}

// intTransform applies a numeric transform to an integer. Results stay integral,
// except sqrt which yields a float.
func intTransform(n int64, s Selector) (Value, error) {
	switch s.Name {
	case "abs":
		if n == math.MinInt64 {
			return Value{}, resolveErrorf(s.Pos, "abs overflows int64")
		}
		if n < 0 {
			n = -n
		}
		return IntValue(n), nil
	case "sign":
		if n < 0 {
			return IntValue(-1), nil
		}
		return IntValue(1), nil
	case "inc":
		if n == math.MaxInt64 {
			return Value{}, resolveErrorf(s.Pos, "inc overflows int64")
		}
		return IntValue(n + 1), nil
	case "dec":
		if n == math.MinInt64 {
			return Value{}, resolveErrorf(s.Pos, "dec overflows int64")
		}
		return IntValue(n - 1), nil
	case "sqrt":
		if n < 0 {
			return Value{}, resolveErrorf(s.Pos, "sqrt of negative value %d", n)
		}
		return FloatValue(math.Sqrt(float64(n))), nil
	}
	return Value{}, resolveErrorf(s.Pos, "unknown transform %q for int value", s.Name)
}

func floatTransform(f float64, s Selector) (Value, error) {
	switch s.Name {
	case "abs":
		return FloatValue(math.Abs(f)), nil
	case "sign":
		if f < 0 {
			return FloatValue(-1), nil
		}
		return FloatValue(1), nil
	case "inc":
		return FloatValue(f + 1), nil
	case "dec":
		return FloatValue(f - 1), nil
	case "sqrt":
		if f < 0 {
			return Value{}, resolveErrorf(s.Pos, "sqrt of negative value %v", f)
		}
		return FloatValue(math.Sqrt(f)), nil
	}
	return Value{}, resolveErrorf(s.Pos, "unknown transform %q for float value", s.Name)
}

// toInt implements the "!i" coercion: floats truncate toward zero, strings are
// parsed, booleans become 0 or 1.
func toInt(v Value) (int64, error) {
	switch v.kind {
	case KindInt, KindBool:
		return v.num, nil
	case KindFloat:
		return truncate(v.flt)
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return 0, nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &ResolutionError{Msg: fmt.Sprintf("cannot convert %q to int", v.str), Err: err}
		}
		return truncate(f)
	}
	return 0, &ResolutionError{Msg: fmt.Sprintf("cannot convert %s value to int", v.kind)}
}

func truncate(f float64) (int64, error) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, &ResolutionError{Msg: fmt.Sprintf("%v out of int64 range", f)}
	}
	return int64(t), nil
}

// toFloat implements the "!d" coercion.
func toFloat(v Value) (float64, error) {
	switch v.kind {
	case KindInt, KindBool:
		return float64(v.num), nil
	case KindFloat:
		return v.flt, nil
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &ResolutionError{Msg: fmt.Sprintf("cannot convert %q to decimal", v.str), Err: err}
		}
		return f, nil
	}
	return 0, &ResolutionError{Msg: fmt.Sprintf("cannot convert %s value to decimal", v.kind)}
}
