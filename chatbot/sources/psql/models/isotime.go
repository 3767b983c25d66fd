package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// isoLayout is fixed-width UTC so the stored text sorts lexicographically
// in timestamp order on both postgres and sqlite.
const isoLayout = "2006-01-02T15:04:05.000000Z"

// ISOTime is a time.Time persisted as canonical ISO-8601 text. The gateway
// owns the conversion; everything above it works with native times.
type ISOTime struct {
	time.Time
}

func NewISOTime(t time.Time) ISOTime {
	return ISOTime{t.UTC().Truncate(time.Microsecond)}
}

func Now() ISOTime {
	return NewISOTime(time.Now())
}

func (t ISOTime) Value() (driver.Value, error) {
	return t.UTC().Format(isoLayout), nil
}

func (t *ISOTime) Scan(v interface{}) error {
	switch src := v.(type) {
	case string:
		return t.parse(src)
	case []byte:
		return t.parse(string(src))
	case time.Time:
		*t = NewISOTime(src)
		return nil
	case nil:
		*t = ISOTime{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ISOTime", v)
	}
}

func (t *ISOTime) parse(s string) error {
	parsed, err := time.Parse(isoLayout, s)
	if err != nil {
		// rows written by other tools may carry offsets or fewer digits
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid ISO-8601 timestamp %q: %w", s, err)
		}
	}
	*t = NewISOTime(parsed)
	return nil
}

func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(isoLayout))
}

func (t *ISOTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
