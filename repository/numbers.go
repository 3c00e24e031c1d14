package repository

import (
	"math"

	"github.com/hasbyte1/go-underscore/objects"
)

// Number methods return float64 except between, which reports whether the
// subject lies in the closed interval [min, max].
var numberMethods = table{
	"abs": func(s any, _ ...any) (any, error) {
		return unary(s, math.Abs)
	},
	"ceil": func(s any, _ ...any) (any, error) {
		return unary(s, math.Ceil)
	},
	"floor": func(s any, _ ...any) (any, error) {
		return unary(s, math.Floor)
	},
	"round": func(s any, args ...any) (any, error) {
		precision, err := optInt("round", args, 0, 0)
		if err != nil {
			return nil, err
		}
		scale := math.Pow(10, float64(precision))
		return unary(s, func(f float64) float64 { return math.Round(f*scale) / scale })
	},
	"between": func(s any, args ...any) (any, error) {
		lo, err := floatArg("between", args, 0)
		if err != nil {
			return nil, err
		}
		hi, err := floatArg("between", args, 1)
		if err != nil {
			return nil, err
		}
		f, err := number(s)
		if err != nil {
			return nil, err
		}
		return f >= lo && f <= hi, nil
	},
}

func number(s any) (float64, error) {
	f, ok := objects.Float(s)
	if !ok {
		return 0, argError("number", 0, "a numeric subject", s)
	}
	return f, nil
}

func unary(s any, fn func(float64) float64) (any, error) {
	f, err := number(s)
	if err != nil {
		return nil, err
	}
	return fn(f), nil
}
