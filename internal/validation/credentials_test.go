package validation

import "testing"

func TestIsEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"test7@mail.com", true},
		{"first.last@sub.domain.org", true},
		{"invalid", false},
		{"missing@tld", false},
		{"@mail.com", false},
		{"spaces in@mail.com", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsEmail(c.email); got != c.want {
			t.Errorf("IsEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Test!234", true},
		{"weekpass", false},    // no upper, digit or symbol
		{"Short!1", false},     // under 8 chars
		{"alllower1!", false},  // no uppercase
		{"ALLUPPER1!", false},  // no lowercase
		{"NoDigits!!", false},  // no digit
		{"NoSymbols12", false}, // no symbol
		{"", false},
	}
	for _, c := range cases {
		if got := IsStrongPassword(c.password); got != c.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}
