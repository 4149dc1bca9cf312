package helpers

import "testing"

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"short1!A", true},
		{"Ab1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoNumbers!!", false},
		{"NoSpecials123", false},
	}

	for _, tc := range cases {
		if got := IsPasswordStrong(tc.password); got != tc.want {
			t.Errorf("IsPasswordStrong(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestStringTrim(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  abc  ", "abc"},
		{`"abc"`, "abc"},
		{"'abc'", "abc"},
		{` "abc" `, "abc"},
		{"abc", "abc"},
	}

	for _, tc := range cases {
		if got := StringTrim(tc.in); got != tc.want {
			t.Errorf("StringTrim(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
