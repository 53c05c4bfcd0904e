package data

import (
	"fmt"
	"strconv"
)

// Key is the canonical comparison form of a scalar cell value.
// Two cells match when their Keys are equal: numbers collapse to plain
// decimal text at every magnitude, never exponent form (int64 1, float64
// 1.0 and string "1" all become "1"; float64 1000000.0 becomes "1000000"),
// booleans to "true"/"false", strings stay verbatim. Null only ever
// matches null.
// This is the loose equality the recoder applies between codebook old
// values and dataset cells.
type Key struct {
	Null bool
	Text string
}

// Canon reduces a scalar cell value to its canonical Key.
// Values that cannot take part in equality matching (slices, maps,
// structs, ...) return an error; callers turn that into a type mismatch.
func Canon(v any) (Key, error) {
	if v == nil {
		return Key{Null: true}, nil
	}

	switch x := v.(type) {
	case string:
		return Key{Text: x}, nil
	case []byte:
		return Key{Text: string(x)}, nil
	case bool:
		return Key{Text: strconv.FormatBool(x)}, nil
	case int:
		return Key{Text: strconv.FormatInt(int64(x), 10)}, nil
	case int8:
		return Key{Text: strconv.FormatInt(int64(x), 10)}, nil
	case int16:
		return Key{Text: strconv.FormatInt(int64(x), 10)}, nil
	case int32:
		return Key{Text: strconv.FormatInt(int64(x), 10)}, nil
	case int64:
		return Key{Text: strconv.FormatInt(x, 10)}, nil
	case uint:
		return Key{Text: strconv.FormatUint(uint64(x), 10)}, nil
	case uint8:
		return Key{Text: strconv.FormatUint(uint64(x), 10)}, nil
	case uint16:
		return Key{Text: strconv.FormatUint(uint64(x), 10)}, nil
	case uint32:
		return Key{Text: strconv.FormatUint(uint64(x), 10)}, nil
	case uint64:
		return Key{Text: strconv.FormatUint(x, 10)}, nil
	case float32:
		return Key{Text: strconv.FormatFloat(float64(x), 'f', -1, 32)}, nil
	case float64:
		return Key{Text: strconv.FormatFloat(x, 'f', -1, 64)}, nil
	}

	return Key{}, fmt.Errorf("value of type %T is not a comparable scalar", v)
}

// Format renders a cell value as canonical text for display and file
// output. Null renders as the empty string.
func Format(v any) (string, error) {
	k, err := Canon(v)
	if err != nil {
		return "", err
	}
	if k.Null {
		return "", nil
	}
	return k.Text, nil
}
