package keys

import (
	"errors"
	"fmt"
)

// ErrEmptyKeyList is returned when a key list is constructed without keys.
var ErrEmptyKeyList = errors.New("key list must contain at least one key")

// FormatError reports a string field that fails its expected encoding.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidKeyError reports a key-list element that is not a non-empty string.
type InvalidKeyError struct {
	Index int
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("key at index %d must be a non-empty string", e.Index)
}

// ThresholdRangeError reports a signature threshold outside [1, Max].
type ThresholdRangeError struct {
	Threshold int
	Max       int
}

func (e *ThresholdRangeError) Error() string {
	return fmt.Sprintf("threshold %d outside valid range [1, %d]", e.Threshold, e.Max)
}

// UnsupportedKeyTypeError reports an algorithm tag outside the closed set.
type UnsupportedKeyTypeError struct {
	Type string
}

func (e *UnsupportedKeyTypeError) Error() string {
	return fmt.Sprintf("unsupported key type %q", e.Type)
}
