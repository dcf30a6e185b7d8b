package input

import (
	"encoding"
	"reflect"
	"strconv"
)

// String accepts any line unchanged, including the empty string.
func String(s string) (string, error) {
	return s, nil
}

// Bool parses the forms accepted by strconv.ParseBool
// (1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False).
func Bool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floating interface {
	~float32 | ~float64
}

// Int parses a base-10 signed integer sized to T. Surrounding whitespace
// is rejected, matching strconv.
//
// Example:
//
//	n, err := input.Prompt(input.Int[int32], "Pick a number: ")
func Int[T signed](s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, reflect.TypeOf((*T)(nil)).Elem().Bits())
	return T(n), err
}

// Uint parses a base-10 unsigned integer sized to T.
func Uint[T unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, reflect.TypeOf((*T)(nil)).Elem().Bits())
	return T(n), err
}

// Float parses a decimal floating-point number sized to T.
func Float[T floating](s string) (T, error) {
	n, err := strconv.ParseFloat(s, reflect.TypeOf((*T)(nil)).Elem().Bits())
	return T(n), err
}

// Unmarshal parses into any type whose pointer implements
// encoding.TextUnmarshaler.
//
// Example:
//
//	addr, err := input.Prompt(input.Unmarshal[netip.Addr], "Host address: ")
func Unmarshal[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
