package caldate

import (
	"strings"
	"time"

	"roomstay/internal/pkg/errs"
)

var ErrInvalidWeekdayCode = errs.New("invalid weekday code")

var weekdayCodes = map[string]time.Weekday{
	"SUN": time.Sunday,
	"MON": time.Monday,
	"TUE": time.Tuesday,
	"WED": time.Wednesday,
	"THU": time.Thursday,
	"FRI": time.Friday,
	"SAT": time.Saturday,
}

// ParseWeekday maps a three-letter code ("MON") to a time.Weekday.
func ParseWeekday(code string) (time.Weekday, error) {
	wd, ok := weekdayCodes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, errs.Mark(errs.New("unknown weekday code "+code), ErrInvalidWeekdayCode)
	}
	return wd, nil
}

func WeekdayCode(wd time.Weekday) string {
	switch wd {
	case time.Sunday:
		return "SUN"
	case time.Monday:
		return "MON"
	case time.Tuesday:
		return "TUE"
	case time.Wednesday:
		return "WED"
	case time.Thursday:
		return "THU"
	case time.Friday:
		return "FRI"
	default:
		return "SAT"
	}
}
