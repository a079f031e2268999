// Package format converts Ethereum hex-encoded quantities into forms that
// are convenient for callers.
package format

import "math/big"

// HexToDecimal converts a 0x-prefixed hexadecimal string of arbitrary size
// to its base-10 string representation. The second return value is false
// for anything that is not a well-formed 0x-prefixed hex quantity. Pure and
// total: it never fails, it just reports non-convertible input.
func HexToDecimal(value string) (string, bool) {
	if len(value) < 3 || value[0] != '0' || value[1] != 'x' {
		return "", false
	}
	digits := value[2:]
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return "", false
		}
	}
	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return "", false
	}
	return n.String(), true
}
