package timesheet

import "strings"

// NormalizeHourType maps free-form input (UI labels, legacy imports,
// localized spellings) onto the canonical hour type tags.
func NormalizeHourType(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "-", "_")
	value = strings.ReplaceAll(value, " ", "_")

	switch value {
	case "", HourTypeRegular, "normal", "standard":
		return HourTypeRegular
	case HourTypeHoliday, "public_holiday":
		return HourTypeHoliday
	case HourTypeWeekend:
		return HourTypeWeekend
	case HourTypeOvertime, "ot", "over_time":
		return HourTypeOvertime
	case HourTypeBonus:
		return HourTypeBonus
	case HourTypeWFH, "work_from_home", "remote":
		return HourTypeWFH
	case HourTypeOnLeave, "leave", "paid_leave":
		return HourTypeOnLeave
	default:
		return HourTypeRegular
	}
}

// HourTypeLabel renders a tag for report output.
func HourTypeLabel(hourType string) string {
	switch hourType {
	case HourTypeRegular:
		return "Regular"
	case HourTypeHoliday:
		return "Holiday"
	case HourTypeWeekend:
		return "Weekend"
	case HourTypeOvertime:
		return "Overtime"
	case HourTypeBonus:
		return "Bonus"
	case HourTypeWFH:
		return "Work From Home"
	case HourTypeOnLeave:
		return "On Leave"
	default:
		words := strings.Fields(strings.ReplaceAll(hourType, "_", " "))
		for i, word := range words {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
		return strings.Join(words, " ")
	}
}
