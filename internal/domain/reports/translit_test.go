package reports

import "testing"

func TestToASCIIVietnamese(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Nguyễn Văn Đức", "Nguyen Van Duc"},
		{"Trần Thị Hồng Nhung", "Tran Thi Hong Nhung"},
		{"Báo cáo chấm công", "Bao cao cham cong"},
	}
	for _, tc := range cases {
		if got := ToASCII(tc.in); got != tc.want {
			t.Fatalf("ToASCII(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToASCIIGermanAndRomance(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jürgen Größe", "Jurgen Grosse"},
		{"José Muñoz", "Jose Munoz"},
		{"Éléonore Façade", "Eleonore Facade"},
		{"Søren Ångström", "Soren Angstrom"},
	}
	for _, tc := range cases {
		if got := ToASCII(tc.in); got != tc.want {
			t.Fatalf("ToASCII(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToASCIIStripsAndCollapses(t *testing.T) {
	if got := ToASCII("a\tb  c  d"); got != "a b c d" {
		t.Fatalf("whitespace collapse got %q", got)
	}
	if got := ToASCII("emoji 😀 gone"); got != "emoji gone" {
		t.Fatalf("non-ascii strip got %q", got)
	}
	if got := ToASCII(""); got != "" {
		t.Fatalf("empty input got %q", got)
	}
}
