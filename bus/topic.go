package bus

import "strings"

// Token wildcards, MQTT-style. "+" matches exactly one token, "#" matches
// any remaining tail and may only appear last in a pattern.
const (
	WildOne  = "+"
	WildTail = "#"
)

// Topic is a sequence of string tokens, e.g. T("indicator", "led", "state").
// Published topics must be concrete; subscription patterns may carry
// wildcards.
type Topic []string

// T builds a Topic from its tokens.
func T(tokens ...string) Topic { return Topic(tokens) }

func (t Topic) String() string { return strings.Join(t, "/") }

// Equal reports token-wise equality.
func (t Topic) Equal(o Topic) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}
