package swiftdemangle

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	punycodeBase        = 36
	punycodeTmin        = 1
	punycodeTmax        = 26
	punycodeSkew        = 38
	punycodeDamp        = 700
	punycodeInitialBias = 72
	punycodeInitialN    = 128
	punycodeDelimiter   = '_'
)

// decodeSwiftPunycode undoes Swift's punycode variant: '_' is the delimiter
// and the encoded tail spells digits 26..35 as 'A'..'J'. The basic prefix is
// copied as is.
func decodeSwiftPunycode(encoded string) (string, error) {
	if encoded == "" {
		return "", errors.New("empty punycode payload")
	}
	var output []rune
	tail := encoded
	if idx := strings.LastIndexByte(encoded, punycodeDelimiter); idx >= 0 {
		for _, r := range encoded[:idx] {
			if r >= 0x80 {
				return "", errors.Errorf("non-basic code point %q in punycode prefix", r)
			}
			output = append(output, r)
		}
		tail = encoded[idx+1:]
	}
	return decodePunycode(output, tail)
}

func decodePunycode(output []rune, input string) (string, error) {
	n := punycodeInitialN
	i := 0
	bias := punycodeInitialBias
	pos := 0
	for pos < len(input) {
		oldi := i
		w := 1
		for k := punycodeBase; ; k += punycodeBase {
			if pos >= len(input) {
				return "", errors.New("truncated punycode input")
			}
			digit, ok := decodePunycodeDigit(input[pos])
			if !ok {
				return "", errors.Errorf("invalid punycode digit %q", input[pos])
			}
			pos++
			i += digit * w
			t := k - bias
			switch {
			case k <= bias+punycodeTmin:
				t = punycodeTmin
			case k >= bias+punycodeTmax:
				t = punycodeTmax
			}
			if digit < t {
				break
			}
			w *= punycodeBase - t
		}
		bias = adaptPunycodeBias(i-oldi, len(output)+1, oldi == 0)
		n += i / (len(output) + 1)
		i %= len(output) + 1
		if n > 0x10FFFF {
			return "", errors.New("punycode rune overflow")
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}
	return string(output), nil
}

func decodePunycodeDigit(b byte) (int, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a'), true
	case b >= 'A' && b <= 'J':
		return int(b-'A') + 26, true
	default:
		return 0, false
	}
}

func adaptPunycodeBias(delta, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= punycodeDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((punycodeBase-punycodeTmin)*punycodeTmax)/2 {
		delta /= punycodeBase - punycodeTmin
		k += punycodeBase
	}
	return k + (punycodeBase-punycodeTmin+1)*delta/(delta+punycodeSkew)
}
