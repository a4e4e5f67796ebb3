package utils

import "testing"

func TestFormatUAH(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 грн"},
		{450, "450 грн"},
		{1350, "1 350 грн"},
		{123456789, "123 456 789 грн"},
		{-900, "-900 грн"},
	}
	for _, tc := range cases {
		if got := FormatUAH(tc.in); got != tc.want {
			t.Fatalf("FormatUAH(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
