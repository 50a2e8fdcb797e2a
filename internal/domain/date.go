package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals as
// "YYYY-MM-DD" and scans from the DATE columns the schema uses.
type Date time.Time

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

func Today() Date {
	y, m, d := time.Now().Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func (d Date) String() string { return time.Time(d).Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(v any) error {
	switch t := v.(type) {
	case time.Time:
		*d = Date(t)
		return nil
	case []byte:
		parsed, err := ParseDate(string(t))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(t)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", v)
	}
}

func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}
