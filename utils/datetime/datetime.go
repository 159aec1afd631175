package datetime

import (
	"strings"
	"sync"
	"time"

	"github.com/muhammadheryan/car-showroom/constant"
)

var (
	jakartaOnce sync.Once
	jakarta     *time.Location
)

// Jakarta returns the Asia/Jakarta location, or a fixed UTC+7 zone when the
// host has no tz database.
func Jakarta() *time.Location {
	jakartaOnce.Do(func() {
		loc, err := time.LoadLocation(constant.JakartaLocation)
		if err != nil {
			loc = time.FixedZone("WIB", 7*60*60)
		}
		jakarta = loc
	})
	return jakarta
}

func Now() time.Time {
	return time.Now().In(Jakarta())
}

// ParseForm parses an admin form date. Empty input yields the current time.
func ParseForm(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Now(), nil
	}
	return time.ParseInLocation(constant.FormDateTimeLayout, s, Jakarta())
}

func FormatForm(t time.Time) string {
	return t.In(Jakarta()).Format(constant.FormDateTimeLayout)
}

func FormatTable(t time.Time) string {
	return t.In(Jakarta()).Format(constant.TableDateTimeLayout)
}
