package netplan

import (
	"fmt"
	"testing"
)

func TestBoolVal(t *testing.T) {
	cases := []struct {
		name string
		b    *Bool
		e    bool
	}{
		{
			"nil",
			nil,
			false,
		},
		{
			"present",
			NewBool(true),
			true,
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			a := BoolVal(tc.b)
			if tc.e != a {
				t.Errorf("\nexp: %t\nact: %t", tc.e, a)
			}
		})
	}
}

func TestBoolGoString(t *testing.T) {
	cases := []struct {
		name string
		b    *Bool
		e    string
	}{
		{
			"nil",
			nil,
			"(*netplan.Bool)(nil)",
		},
		{
			"present",
			NewBool(true),
			"true",
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			a := BoolGoString(tc.b)
			if tc.e != a {
				t.Errorf("\nexp: %q\nact: %q", tc.e, a)
			}
		})
	}
}

func TestStringVal(t *testing.T) {
	cases := []struct {
		name string
		s    *string
		e    string
	}{
		{
			"nil",
			nil,
			"",
		},
		{
			"present",
			String("networkd"),
			"networkd",
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			a := StringVal(tc.s)
			if tc.e != a {
				t.Errorf("\nexp: %q\nact: %q", tc.e, a)
			}
		})
	}
}

func TestIntVal(t *testing.T) {
	cases := []struct {
		name string
		i    *int
		e    int
	}{
		{
			"nil",
			nil,
			0,
		},
		{
			"present",
			Int(1500),
			1500,
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			a := IntVal(tc.i)
			if tc.e != a {
				t.Errorf("\nexp: %d\nact: %d", tc.e, a)
			}
		})
	}
}
