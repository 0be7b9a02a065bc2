// Package jsoncanonicalizer produces the RFC 8785 canonical form of a JSON
// document: object members sorted by UTF-16 code units, minimal string
// escaping, and no insignificant whitespace. Hashing the canonical form
// gives the same digest regardless of how the source JSON was ordered.
package jsoncanonicalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Transform converts a JSON document to its canonical form.
func Transform(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing content after JSON document")
	}

	var buf bytes.Buffer
	if err := serialize(&buf, value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func serialize(buf *bytes.Buffer, value interface{}) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		return writeNumber(buf, v)
	case string:
		writeString(buf, v)
	case []interface{}:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := serialize(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]interface{}:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		// Member names sort by their UTF-16 code units, not by bytes.
		sort.Slice(names, func(i, j int) bool {
			return lessUTF16(names[i], names[j])
		})

		buf.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, name)
			buf.WriteByte(':')
			if err := serialize(buf, v[name]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported JSON value of type %T", value)
	}

	return nil
}

func lessUTF16(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}

	return len(ua) < len(ub)
}

func writeNumber(buf *bytes.Buffer, n json.Number) error {
	if i, err := n.Int64(); err == nil {
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}

	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("invalid JSON number %q", string(n))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("number %q is not representable in canonical JSON", string(n))
	}

	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}

	formatted := strconv.FormatFloat(f, 'g', -1, 64)
	// ES6 exponents carry no leading zero: 1.5e-07 serializes as 1.5e-7.
	if idx := strings.IndexAny(formatted, "eE"); idx >= 0 {
		mantissa, exp := formatted[:idx], formatted[idx+1:]
		sign := ""
		if exp[0] == '+' || exp[0] == '-' {
			sign, exp = string(exp[0]), exp[1:]
		}
		exp = strings.TrimLeft(exp, "0")
		if exp == "" {
			exp = "0"
		}
		formatted = mantissa + "e" + sign + exp
	}
	buf.WriteString(formatted)

	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\f':
			buf.WriteString(`\f`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
