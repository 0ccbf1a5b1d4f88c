package auth

import "testing"

func TestValidPassword(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		want bool
	}{
		{"empty", "", false},
		{"too short", "a1!", false},
		{"exactly six", "abc12!", true},
		{"no digit", "abcdef!", false},
		{"no letter", "123456!", false},
		{"no special", "abc123", false},
		{"all three", "Abc123!", true},
		{"seed password", "pa$$w0rd", true},
		{"special only from set", "abc123 ", false},
		{"backtick counts", "abc123`", true},
		{"backslash counts", "abc123\\", true},
		{"unicode letter", "ññ123!x", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ValidPassword(c.pw); got != c.want {
				t.Fatalf("ValidPassword(%q) = %v, want %v", c.pw, got, c.want)
			}
		})
	}
}
