package strconvx

import "testing"

func TestAtoi(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"20", 20, false},
		{"-7", -7, false},
		{"+300", 300, false},
		{"", 0, true},
		{"-", 0, true},
		{"12x", 0, true},
		{"1 2", 0, true},
	}
	for _, c := range cases {
		got, err := Atoi(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("Atoi(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if err == nil && got != c.want {
			t.Errorf("Atoi(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestItoa(t *testing.T) {
	for _, c := range []struct {
		in   int
		want string
	}{{0, "0"}, {7, "7"}, {-42, "-42"}, {1000, "1000"}} {
		if got := Itoa(c.in); got != c.want {
			t.Errorf("Itoa(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
