package model

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"name", "Name"},
		{"first_name", "First Name"},
		{"first-name", "First Name"},
		{"firstName", "First Name"},
		{"HTTPPort", "Httpport"},
		{"retryCount3", "Retry Count 3"},
		{"__internal", "Internal"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.in); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
