package timesheet

import "testing"

func TestNormalizeHourType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"regular", HourTypeRegular},
		{"Normal", HourTypeRegular},
		{"", HourTypeRegular},
		{"OT", HourTypeOvertime},
		{"over time", HourTypeOvertime},
		{"Work From Home", HourTypeWFH},
		{"remote", HourTypeWFH},
		{"on-leave", HourTypeOnLeave},
		{"paid leave", HourTypeOnLeave},
		{"public holiday", HourTypeHoliday},
		{"something-unknown", HourTypeRegular},
	}
	for _, tc := range cases {
		if got := NormalizeHourType(tc.in); got != tc.want {
			t.Fatalf("NormalizeHourType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHourTypeLabel(t *testing.T) {
	if got := HourTypeLabel(HourTypeWFH); got != "Work From Home" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := HourTypeLabel("night_shift"); got != "Night Shift" {
		t.Fatalf("unexpected fallback label: %q", got)
	}
}
