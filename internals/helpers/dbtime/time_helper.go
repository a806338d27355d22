// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DateLayout is the calendar-date format stored in every fecha column.
const DateLayout = "2006-01-02"

// LocPlantLoc is the locals key set by the request middleware.
const LocPlantLoc = "plant_loc"

const defaultPlantTimezone = "America/Mexico_City"

// GetPlantLocation resolves the plant *time.Location:
// 1) c.Locals("plant_loc") filled by the middleware
// 2) America/Mexico_City
// 3) UTC
func GetPlantLocation(c *fiber.Ctx) *time.Location {
	if c != nil {
		if loc, ok := c.Locals(LocPlantLoc).(*time.Location); ok && loc != nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(defaultPlantTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// NowInPlant is "now" on the shop-floor clock.
func NowInPlant(c *fiber.Ctx) time.Time {
	return time.Now().In(GetPlantLocation(c))
}

// ParseDate accepts exactly YYYY-MM-DD (surrounding spaces trimmed).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must use YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ISOWeek returns the ISO-8601 (week, week-year) pair. Early-January dates
// can belong to week 52/53 of the previous year and late-December dates to
// week 1 of the next one.
func ISOWeek(t time.Time) (week, year int) {
	year, week = t.ISOWeek()
	return week, year
}

// WeekOfDate parses a YYYY-MM-DD string and returns its ISO week and year.
func WeekOfDate(s string) (week, year int, err error) {
	t, err := ParseDate(s)
	if err != nil {
		return 0, 0, err
	}
	week, year = ISOWeek(t)
	return week, year, nil
}

// StartOfWeek returns Monday 00:00 on or before t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// ValidISOWeek reports whether week exists in the given ISO year.
func ValidISOWeek(year, week int) bool {
	if week < 1 || year < 1 {
		return false
	}
	// Dec 28 is always in the last ISO week of its year.
	_, lastWeek := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week <= lastWeek
}
