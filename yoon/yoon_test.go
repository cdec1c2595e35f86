package yoon

import "testing"

func TestEndsInYoon(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"きゃ", true},
		{"しゅ", true},
		{"ちょ", true},
		{"ぎゃ", true},
		{"かあ", false},
		{"ゃ", false},
		{"", false},
		{"あきゃ", true},
		{"たべる", false},
	}
	for _, c := range cases {
		if got := EndsInYoon(c.text); got != c.want {
			t.Errorf("EndsInYoon(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
