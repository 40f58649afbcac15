package dto

import (
	"bytes"
	"encoding/json"

	"cloud.google.com/go/civil"

	"github.com/iho/goloan/internal/domain"
)

// Date is a YYYY-MM-DD calendar date. Null and "" decode to the zero date,
// and the zero date encodes as null.
type Date civil.Date

// NewDate wraps d.
func NewDate(d civil.Date) Date {
	return Date(d)
}

// Civil returns the wrapped date.
func (d Date) Civil() civil.Date {
	return civil.Date(d)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if domain.IsZeroDate(d.Civil()) {
		return []byte("null"), nil
	}
	return json.Marshal(d.Civil().String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.ErrInvalidDate
	}

	parsed, err := domain.ParseOptionalDate(s)
	if err != nil {
		return err
	}
	*d = Date(parsed)
	return nil
}
