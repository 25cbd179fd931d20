package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fraction digits floats are written with.
const DefaultPrecision = 6

var (
	ErrNotFinite   = errors.New("number is not finite")
	ErrUnsupported = errors.New("unsupported scalar type")
)

// FormatFloat writes f in fixed-point notation with at most precision
// fraction digits. Trailing zeros and a trailing dot are dropped and negative
// zero is written as 0, so 1.500000 becomes 1.5 and -0.0000001 becomes 0.
// Exponent notation is never produced.
func FormatFloat(f float64, precision int) string {
	s := strconv.FormatFloat(f, 'f', precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if s == "-0" {
		return "0"
	}

	return s
}

// FormatBool writes true or false.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// FormatYesNo writes yes or no.
func FormatYesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// ParseBool accepts true, false, yes and no.
func ParseBool(text string) (bool, error) {
	switch text {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	}

	return false, fmt.Errorf("%q is not a boolean, expected one of true, false, yes, no", text)
}

// ParseYesNo accepts only yes and no.
func ParseYesNo(text string) (bool, error) {
	switch text {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}

	return false, fmt.Errorf("%q is not yes or no", text)
}

// ParseFloat accepts plain decimal notation with an optional exponent.
// Hexadecimal floats, infinities and NaN are rejected.
func ParseFloat(text string, bits int) (float64, error) {
	if !isDecimal(text) {
		return 0, fmt.Errorf("%q is not a number", text)
	}

	f, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", text, unwrapNum(err))
	}

	return f, nil
}

func isDecimal(text string) bool {
	digits := false
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '+', c == '-', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}

	return digits
}

func unwrapNum(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}

	return err
}

// Format writes a scalar value as atom text.
func Format(v reflect.Value, precision int) (string, error) {
	switch kind := FromReflectType(v.Type()); {
	case kind.IsFloat():
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%v: %w", f, ErrNotFinite)
		}

		return FormatFloat(f, precision), nil
	case kind.IsSigned():
		return strconv.FormatInt(v.Int(), 10), nil
	case kind.IsUnsigned():
		return strconv.FormatUint(v.Uint(), 10), nil
	case kind == KindBool:
		return FormatBool(v.Bool()), nil
	case kind == KindString:
		return v.String(), nil
	case kind == KindPrimitiveEnum:
		if err := checkEnum(v.Type(), v.String()); err != nil {
			return "", err
		}

		return v.String(), nil
	default:
		return "", fmt.Errorf("%s: %w", v.Type(), ErrUnsupported)
	}
}

// Parse converts atom text to a value of the scalar type rtype.
func Parse(text string, rtype reflect.Type) (reflect.Value, error) {
	out := reflect.New(rtype).Elem()

	switch kind := FromReflectType(rtype); {
	case kind.IsFloat():
		f, err := ParseFloat(text, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetFloat(f)
	case kind.IsSigned():
		i, err := strconv.ParseInt(text, 10, kind.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%q is not an integer: %w", text, unwrapNum(err))
		}

		out.SetInt(i)
	case kind.IsUnsigned():
		u, err := strconv.ParseUint(text, 10, kind.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%q is not an unsigned integer: %w", text, unwrapNum(err))
		}

		out.SetUint(u)
	case kind == KindBool:
		b, err := ParseBool(text)
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetBool(b)
	case kind == KindString:
		out.SetString(text)
	case kind == KindPrimitiveEnum:
		if err := checkEnum(rtype, text); err != nil {
			return reflect.Value{}, err
		}

		out.SetString(text)
	default:
		return reflect.Value{}, fmt.Errorf("%s: %w", rtype, ErrUnsupported)
	}

	return out, nil
}

func checkEnum(rtype reflect.Type, text string) error {
	values := EnumValues(rtype)
	if slices.Contains(values, text) {
		return nil
	}

	return fmt.Errorf("%q is not a valid %s, expected one of %s", text, rtype.Name(), strings.Join(quoteAll(values), ", "))
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Quote(v)
	}

	return out
}
