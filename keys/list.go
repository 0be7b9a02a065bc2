package keys

import (
	"encoding/json"
	"fmt"
)

// KeyList is an M-of-N authorization policy: an ordered list of hex-encoded
// public keys and a threshold of how many must co-sign. The order of keys is
// significant for signature-slot matching but does not affect the
// authorization decision.
//
// A KeyList is validated at construction and immutable afterwards, so
// instances may be queried concurrently without synchronization.
type KeyList struct {
	keys      []string
	threshold int
}

// NewKeyList validates and builds an M-of-N policy over the given keys.
// Validation short-circuits on the first failure: empty list, then empty
// elements (by index), then threshold range.
func NewKeyList(keyStrings []string, threshold int) (*KeyList, error) {
	if len(keyStrings) == 0 {
		return nil, ErrEmptyKeyList
	}
	for i, k := range keyStrings {
		if k == "" {
			return nil, &InvalidKeyError{Index: i}
		}
	}
	if threshold < 1 || threshold > len(keyStrings) {
		return nil, &ThresholdRangeError{Threshold: threshold, Max: len(keyStrings)}
	}

	return &KeyList{
		keys:      append([]string(nil), keyStrings...),
		threshold: threshold,
	}, nil
}

// ParseKeyList decodes and validates a {key: string[], threshold: number}
// JSON object. A fractional threshold is rejected rather than truncated.
func ParseKeyList(data []byte) (*KeyList, error) {
	var raw struct {
		Key       []string    `json:"key"`
		Threshold json.Number `json:"threshold"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal key list: %w", err)
	}

	if len(raw.Key) == 0 {
		return nil, ErrEmptyKeyList
	}
	for i, k := range raw.Key {
		if k == "" {
			return nil, &InvalidKeyError{Index: i}
		}
	}

	threshold := 0
	if raw.Threshold != "" {
		v, err := raw.Threshold.Int64()
		if err != nil {
			return nil, &FormatError{Field: "threshold", Reason: "must be an integer"}
		}
		threshold = int(v)
	}

	return NewKeyList(raw.Key, threshold)
}

// Keys returns a copy of the ordered public key strings.
func (l *KeyList) Keys() []string {
	return append([]string(nil), l.keys...)
}

// Threshold returns how many distinct signers are required.
func (l *KeyList) Threshold() int {
	return l.threshold
}

// Len returns the number of keys in the list.
func (l *KeyList) Len() int {
	return len(l.keys)
}

// IsAuthorized reports whether the signers identified by the given key
// indices satisfy the threshold. Duplicate indices count once and indices
// outside [0, Len()) are ignored, so the predicate operates on the set of
// distinct valid signers.
func (l *KeyList) IsAuthorized(signed []int) bool {
	seen := make(map[int]struct{}, len(signed))
	for _, idx := range signed {
		if idx >= 0 && idx < len(l.keys) {
			seen[idx] = struct{}{}
		}
	}

	return len(seen) >= l.threshold
}

// MarshalJSON serializes the policy as {key: string[], threshold: number}.
func (l *KeyList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key       []string `json:"key"`
		Threshold int      `json:"threshold"`
	}{Key: l.keys, Threshold: l.threshold})
}

// UnmarshalJSON decodes and validates the policy in place.
func (l *KeyList) UnmarshalJSON(data []byte) error {
	parsed, err := ParseKeyList(data)
	if err != nil {
		return err
	}
	*l = *parsed

	return nil
}
