package timex

import (
	"math"
	"strconv"
	"time"
)

// UnixTime is a point in time encoded in JSON as fractional unix seconds,
// e.g. 1718700000.123456. Precision is one microsecond.
type UnixTime struct {
	time.Time
}

func NewUnixTime(t time.Time) UnixTime {
	return UnixTime{Time: t.Round(time.Microsecond)}
}

func (u UnixTime) MarshalJSON() ([]byte, error) {
	secs := float64(u.UnixMicro()) / 1e6
	return []byte(strconv.FormatFloat(secs, 'f', -1, 64)), nil
}

func (u *UnixTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		u.Time = time.Time{}
		return nil
	}
	secs, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	whole, frac := math.Modf(secs)
	u.Time = time.Unix(int64(whole), int64(math.Round(frac*1e6))*int64(time.Microsecond))
	return nil
}
