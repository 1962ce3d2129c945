package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProvinceCode is the join key between the user and usage datasets. A code
// keeps the JSON type it arrived with: number codes compare by numeric value
// (12 equals 12.0), string codes compare byte for byte, and a number never
// equals a string. The zero value is the absent code.
type ProvinceCode struct {
	text    string
	numeric bool
}

// StringCode builds a code that arrived as a string.
func StringCode(s string) ProvinceCode {
	return ProvinceCode{text: s}
}

// NumberCode builds a code that arrived as a number. text must be a valid
// decimal literal.
func NumberCode(text string) (ProvinceCode, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return ProvinceCode{}, fmt.Errorf("invalid numeric province code %q: %w", text, err)
	}
	return ProvinceCode{text: d.String(), numeric: true}, nil
}

// IsNumber reports whether the code arrived as a number.
func (c ProvinceCode) IsNumber() bool {
	return c.numeric
}

// IsZero reports whether no code was given.
func (c ProvinceCode) IsZero() bool {
	return c == ProvinceCode{}
}

// UnmarshalJSON aceita o código como string ou número, preservando o tipo.
func (c *ProvinceCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ProvinceCode{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid province code %s: %w", data, err)
		}
		*c = StringCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid province code %s: %w", data, err)
	}
	code, err := NumberCode(n.String())
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// MarshalJSON writes number codes as numbers and string codes as strings.
func (c ProvinceCode) MarshalJSON() ([]byte, error) {
	switch {
	case c.IsZero():
		return []byte("null"), nil
	case c.numeric:
		return []byte(c.text), nil
	default:
		return json.Marshal(c.text)
	}
}

func (c ProvinceCode) String() string {
	return c.text
}
