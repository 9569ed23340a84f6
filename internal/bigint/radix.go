package bigint

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// digitAlphabet maps remainders 0-35 to their digit characters.
const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Text renders x in the given radix, which must lie in [2, 36]. Base 10 uses
// the cached decimal string when one is attached and otherwise joins the
// digit groups directly; other bases divide repeatedly by the radix and map
// the remainders through 0-9A-Z. Fails with apperrors.BaseError outside the
// range.
func (x Int) Text(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", apperrors.BaseError{Base: base}
	}
	if base == 10 {
		return x.decimalString(), nil
	}
	if x.IsZero() {
		return "0", nil
	}
	var out []byte
	mag := x.mag
	for len(mag) > 0 {
		q, rem := shortDivMag(mag, uint64(base))
		out = append(out, digitAlphabet[rem])
		mag = q
	}
	if x.neg {
		out = append(out, '-')
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// Parse constructs a value from its textual form in the given radix, the
// inverse of Text. Digits are read case-insensitively by Horner's method.
// Fails with apperrors.BaseError outside [2, 36] and apperrors.ParseError on
// an empty numeral or a character outside the radix alphabet.
func Parse(s string, base int) (Int, error) {
	if base < 2 || base > 36 {
		return Int{}, apperrors.BaseError{Base: base}
	}
	if base == 10 {
		return parseDecimal(s)
	}
	body := s
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	}
	if body == "" {
		return Int{}, apperrors.NewParseError(s, base)
	}
	var mag []uint64
	for i := 0; i < len(body); i++ {
		v := digitValue(body[i])
		if v < 0 || v >= base {
			return Int{}, apperrors.NewParseError(s, base)
		}
		mag = addMag(mulDigit(mag, uint64(base), 0), []uint64{uint64(v)})
	}
	return makeInt(neg, mag), nil
}

// digitValue returns the numeric value of a radix digit character, or -1 for
// characters outside 0-9, A-Z, a-z.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// parseDecimal parses an optionally signed decimal numeral into base-Base
// digit groups, chunking BaseDigits characters at a time from the least
// significant end; the most significant chunk may be shorter. The input text
// is attached as the cached rendering when it is already canonical.
func parseDecimal(s string) (Int, error) {
	body := s
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	}
	if body == "" {
		return Int{}, apperrors.NewParseError(s, 10)
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return Int{}, apperrors.NewParseError(s, 10)
		}
	}
	mag := make([]uint64, 0, (len(body)+BaseDigits-1)/BaseDigits)
	for end := len(body); end > 0; end -= BaseDigits {
		start := max(0, end-BaseDigits)
		var g uint64
		for _, c := range []byte(body[start:end]) {
			g = g*10 + uint64(c-'0')
		}
		mag = append(mag, g)
	}
	n := makeInt(neg, mag)
	if isCanonicalDecimal(s, n.neg) {
		n.str = s
	}
	return n, nil
}

// isCanonicalDecimal reports whether s is exactly the rendering Text(10)
// would produce for a value with the given sign: no leading zero unless the
// numeral is "0", and a minus sign only on genuinely negative values.
func isCanonicalDecimal(s string, neg bool) bool {
	body, signed := strings.CutPrefix(s, "-")
	if signed != neg {
		return false
	}
	if len(body) > 1 && body[0] == '0' {
		return false
	}
	return true
}

// decimalString joins the digit groups into decimal text: the most
// significant group unpadded, every lower group zero-padded to BaseDigits.
func (x Int) decimalString() string {
	if x.str != "" {
		return x.str
	}
	if len(x.mag) == 0 {
		return "0"
	}
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	top := len(x.mag) - 1
	b.WriteString(strconv.FormatUint(x.mag[top], 10))
	for i := top - 1; i >= 0; i-- {
		g := strconv.FormatUint(x.mag[i], 10)
		for pad := BaseDigits - len(g); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(g)
	}
	return b.String()
}
