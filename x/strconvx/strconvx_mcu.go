//go:build rp2040

package strconvx

// Minimal, allocation-aware base-10 helpers with strconv-compatible
// signatures for MCU builds.

type parseError struct{}

func (parseError) Error() string { return "invalid syntax" }

func Itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	u := uint(i)
	if neg {
		u = uint(-i)
	}
	var buf [24]byte
	b := len(buf)
	for u > 0 {
		b--
		buf[b] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		b--
		buf[b] = '-'
	}
	return string(buf[b:])
}

func Atoi(s string) (int, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, parseError{}
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, parseError{}
		}
		v = v*10 + int(c-'0')
	}
	if neg {
		return -v, nil
	}
	return v, nil
}
