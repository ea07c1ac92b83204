package regex

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Divisor scaling can fail in three ways; everything else in the engine is
// total. The sentinels are comparable with errors.Is through the wrapping
// added by FractionalRemainder.
var (
	// ErrNoDecimalPart means a value that looked fractional produced no
	// parseable decimal digits. Reachable only for non-numbers such as NaN.
	ErrNoDecimalPart = errors.New("fractional divisor has no decimal part")

	// ErrTooManyDecimalPlaces means the divisor needs more than nine decimal
	// places, which would overflow 32-bit remainder accumulation while
	// stepping through digits.
	ErrTooManyDecimalPlaces = errors.New("too many decimal places in divisor")

	// ErrDivisorOverflow means the divisor does not fit uint32 once scaled
	// to an integer (or as given, when it already is one).
	ErrDivisorOverflow = errors.New("scaled divisor overflows uint32")
)

// maxDecimalPlaces bounds the fractional precision of a scaled divisor.
// One digit more and 10^scale no longer fits the 32-bit weight range used
// by the stepping arithmetic.
const maxDecimalPlaces = 9

// remainder recognizes decimal numerals, with at most one '.', whose value
// modulo divisor equals target. current is the remainder of the digits read
// so far and always stays below divisor. For divisors scaled up from a
// fractional value, scale holds the remaining fractional digit budget and
// every quantity is expressed in the scaled integer units. fractional flips
// to true when the point has been read and never reverts.
type remainder struct {
	divisor    uint32
	current    uint32
	target     uint32
	scale      uint32
	fractional bool
}

// Remainder returns a tree accepting the decimal numerals congruent to
// target modulo divisor: Remainder(3, 1) accepts "1", "4", "100", and so
// on. The divisor must be at least 1. Only ASCII digits are recognized; any
// other character derives the tree to Empty.
func Remainder(divisor, target uint32) Regex {
	return &remainder{divisor: divisor, target: target}
}

// FractionalRemainder is Remainder for a possibly fractional divisor. The
// divisor is scaled to an integer by shifting its decimal places out:
// 2.5 becomes 25 with one fractional digit of precision, 0.125 becomes 125
// with three. Numerals may then carry up to that many digits after their
// decimal point; further digits make the tree reject. The target is
// expressed in the same scaled units, so target 5 against divisor 2.5
// selects values congruent to 0.5.
//
// The divisor must be at least 1 after scaling. Scaling fails with
// ErrNoDecimalPart, ErrTooManyDecimalPlaces or ErrDivisorOverflow.
func FractionalRemainder(divisor float32, target uint32) (Regex, error) {
	div, scale, err := scaleDivisor(divisor)
	if err != nil {
		return nil, fmt.Errorf("fractional divisor %v: %w", divisor, err)
	}
	return &remainder{divisor: div, target: target, scale: scale}, nil
}

// step advances the digit automaton by one character and returns the
// residual tree. The point is special exactly once; afterwards it falls
// through to the non-digit branch and rejects like any other stray
// character. Arithmetic runs in uint64 so a divisor near the top of the
// uint32 range cannot overflow mid-step.
func (n *remainder) step(c rune) Regex {
	if c == '.' && !n.fractional {
		// The point consumes no numeric weight.
		return &remainder{
			divisor:    n.divisor,
			current:    n.current,
			target:     n.target,
			scale:      n.scale,
			fractional: true,
		}
	}
	if c < '0' || c > '9' {
		return Empty()
	}
	d := uint64(c - '0')
	div := uint64(n.divisor)

	if n.fractional {
		if n.scale == 0 {
			// Precision budget exhausted; no further fractional digits.
			return Empty()
		}
		cur := (uint64(n.current) + d*pow10(n.scale-1)) % div
		return &remainder{
			divisor:    n.divisor,
			current:    uint32(cur),
			target:     n.target,
			scale:      n.scale - 1,
			fractional: true,
		}
	}

	// Integer digits carry the full 10^scale weight so that a scaled
	// divisor sees the numeral in its own units.
	cur := (uint64(n.current)*10 + d*pow10(n.scale)) % div
	return &remainder{
		divisor:    n.divisor,
		current:    uint32(cur),
		target:     n.target,
		scale:      n.scale,
		fractional: false,
	}
}

// scaleDivisor turns a possibly fractional divisor into an integer divisor
// plus the number of decimal places that were shifted out. Integral values
// pass through with scale zero. The decimal place count comes from the
// shortest decimal form that round-trips the float32, so 2.5 yields (25, 1)
// and 0.05 yields (5, 2).
func scaleDivisor(x float32) (uint32, uint32, error) {
	ax := math.Abs(float64(x))
	if ax == math.Trunc(ax) {
		if ax > math.MaxUint32 {
			return 0, 0, ErrDivisorOverflow
		}
		return uint32(math.Round(ax)), 0, nil
	}

	text := strconv.FormatFloat(ax, 'f', -1, 32)
	dot := strings.IndexByte(text, '.')
	if dot < 0 || dot == len(text)-1 {
		return 0, 0, ErrNoDecimalPart
	}
	places := len(text) - dot - 1
	if places > maxDecimalPlaces {
		return 0, 0, ErrTooManyDecimalPlaces
	}

	scaled := math.Round(ax * math.Pow10(places))
	if scaled > math.MaxUint32 {
		return 0, 0, ErrDivisorOverflow
	}
	return uint32(scaled), uint32(places), nil
}

// pow10 returns 10^e. Exponents never exceed maxDecimalPlaces, so the
// result fits comfortably in uint64.
func pow10(e uint32) uint64 {
	p := uint64(1)
	for ; e > 0; e-- {
		p *= 10
	}
	return p
}
