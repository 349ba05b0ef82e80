package utils

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// ToInt converts a decoded msgpack number or a decimal string to an int.
// msgpack picks the narrowest integer type on the wire, so every width has
// to be accepted.
func ToInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, errors.Newf("integer %d overflows int", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid integer %q", n)
		}
		return i, nil
	default:
		return 0, errors.Newf("invalid integer type %T", v)
	}
}
