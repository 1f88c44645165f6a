package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMidDate(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  time.Time
	}{
		{"single day", date(2012, 7, 13), date(2012, 7, 13), date(2012, 7, 13)},
		{"two days truncates down", date(2012, 7, 13), date(2012, 7, 14), date(2012, 7, 13)},
		{"three days", date(2012, 7, 13), date(2012, 7, 15), date(2012, 7, 14)},
		{"four days truncates down", date(2012, 7, 13), date(2012, 7, 16), date(2012, 7, 14)},
		{"week long", date(2012, 7, 1), date(2012, 7, 7), date(2012, 7, 4)},
		{"spans month boundary", date(2012, 7, 30), date(2012, 8, 3), date(2012, 8, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MidDate(tt.start, tt.end)
			if !got.Equal(tt.want) {
				t.Errorf("MidDate(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestUnitsByName(t *testing.T) {
	units := UnitsByName()

	if len(units) != 51 {
		t.Fatalf("len(units) = %d, want 51", len(units))
	}
	if units[0].Code != "AL" {
		t.Errorf("first unit = %s, want AL", units[0].Code)
	}
	if units[len(units)-1].Code != "WY" {
		t.Errorf("last unit = %s, want WY", units[len(units)-1].Code)
	}

	// "D.C." sorts between Connecticut and Delaware by full name,
	// even though "DC" would sort differently by code.
	for i, u := range units {
		if u.Code != "DC" {
			continue
		}
		if units[i-1].Code != "CT" || units[i+1].Code != "DE" {
			t.Errorf("DC neighbors = %s, %s, want CT, DE", units[i-1].Code, units[i+1].Code)
		}
	}

	for i := 1; i < len(units); i++ {
		if units[i-1].Name >= units[i].Name {
			t.Errorf("units out of order: %q before %q", units[i-1].Name, units[i].Name)
		}
	}
}

func TestIsUnit(t *testing.T) {
	if !IsUnit("NJ") {
		t.Error("IsUnit(NJ) = false, want true")
	}
	if !IsUnit("DC") {
		t.Error("IsUnit(DC) = false, want true")
	}
	if IsUnit("US") {
		t.Error("IsUnit(US) = true, want false (national polls are not a unit)")
	}
	if IsUnit("ZZ") {
		t.Error("IsUnit(ZZ) = true, want false")
	}
}
