package timesheet

const (
	HourTypeRegular  = "regular"
	HourTypeHoliday  = "holiday"
	HourTypeWeekend  = "weekend"
	HourTypeOvertime = "overtime"
	HourTypeBonus    = "bonus"
	HourTypeWFH      = "wfh"
	HourTypeOnLeave  = "on_leave"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func HourTypes() []string {
	return []string{
		HourTypeRegular,
		HourTypeHoliday,
		HourTypeWeekend,
		HourTypeOvertime,
		HourTypeBonus,
		HourTypeWFH,
		HourTypeOnLeave,
	}
}

func Statuses() []string {
	return []string{StatusPending, StatusApproved, StatusRejected}
}
