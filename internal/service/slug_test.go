package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Travel", "travel"},
		{"Brand Identity", "brand-identity"},
		{"  Hello,  World!  ", "hello-world"},
		{"Already-Sluggy", "already-sluggy"},
		{"2024 Recap", "2024-recap"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
