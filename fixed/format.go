package fixed

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// maxDecimals distinguishes every pair of neighbouring values (ulp ~2.3e-10)
const maxDecimals = 10

var (
	ErrSyntax = errors.New("fixed: invalid syntax")
	ErrRange  = errors.New("fixed: value out of range")
)

// bigFloat returns the exact value of a
func (a Q64) bigFloat() *big.Float {
	f := new(big.Float).SetPrec(64).SetInt64(int64(a))
	return f.SetMantExp(f, -FracBits)
}

// String returns the shortest decimal that parses back to the same value
func (a Q64) String() string {
	f := a.bigFloat()
	for d := 0; d < maxDecimals; d++ {
		s := f.Text('f', d)
		if back, err := Parse(s); err == nil && back == a {
			return s
		}
	}
	return trimZeros(f.Text('f', maxDecimals))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Parse converts a decimal string, rounding to the nearest representable value
// (half away from zero)
func Parse(s string) (Q64, error) {
	f, ok := new(big.Float).SetPrec(256).SetString(strings.TrimSpace(s))
	if !ok {
		return 0, errors.Wrapf(ErrSyntax, "parse %q", s)
	}
	if f.IsInf() {
		return 0, errors.Wrapf(ErrRange, "parse %q", s)
	}

	f.SetMantExp(f, FracBits)
	if f.Sign() >= 0 {
		f.Add(f, big.NewFloat(0.5))
	} else {
		f.Sub(f, big.NewFloat(0.5))
	}

	i, _ := f.Int(nil)
	if !i.IsInt64() {
		return 0, errors.Wrapf(ErrRange, "parse %q", s)
	}
	return Q64(i.Int64()), nil
}

// MustParse is Parse for constants known to be valid
func MustParse(s string) Q64 {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (a Q64) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Q64) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
