package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-qpm/internal/testutil"
	"github.com/cwbudde/algo-qpm/nlo/core"
)

func TestLinspace(t *testing.T) {
	got, err := Linspace(0, 1, 5)
	if err != nil {
		t.Fatalf("Linspace: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.25, 0.5, 0.75, 1}, 1e-15)

	one, err := Linspace(3, 9, 1)
	if err != nil || len(one) != 1 || one[0] != 3 {
		t.Fatalf("single sample = %v, %v", one, err)
	}

	if _, err := Linspace(0, 1, 0); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("err = %v, want ErrInvalidCount", err)
	}
}

func TestFrequenciesExcludeStop(t *testing.T) {
	f, err := Frequencies(100, 110, 2.5)
	if err != nil {
		t.Fatalf("Frequencies: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, f, []float64{100, 102.5, 105, 107.5}, 1e-12)

	// partial last step still yields a channel
	f, err = Frequencies(100, 111, 2.5)
	if err != nil {
		t.Fatalf("Frequencies: %v", err)
	}
	if len(f) != 5 {
		t.Fatalf("len = %d, want ceil(11/2.5) = 5", len(f))
	}
}

func TestFrequenciesRejectBadRange(t *testing.T) {
	cases := [][3]float64{
		{100, 100, 1},
		{100, 90, 1},
		{100, 110, 0},
		{0, 110, 1},
		{100, 110, math.NaN()},
	}
	for _, c := range cases {
		if _, err := Frequencies(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("Frequencies(%v) err = %v, want ErrInvalidRange", c, err)
		}
	}
}

func TestITU50GHz(t *testing.T) {
	wl := ITU50GHz()

	wantLen := int(math.Ceil((ITUStopHz - ITUStartHz) / ITUSpacingHz))
	if len(wl) != wantLen || wantLen != 100 {
		t.Fatalf("len = %d, want %d (100)", len(wl), wantLen)
	}

	testutil.RequireStrictlyIncreasing(t, wl)

	lastHz := ITUStartHz + float64(wantLen-1)*ITUSpacingHz
	testutil.RequireNearlyEqual(t, wl[0], core.SpeedOfLight/lastHz, 1e-18, "first wavelength")
	testutil.RequireNearlyEqual(t, wl[len(wl)-1], core.SpeedOfLight/ITUStartHz, 1e-18, "last wavelength")

	// C band sanity
	if wl[0] < 1.52e-6 || wl[len(wl)-1] > 1.57e-6 {
		t.Fatalf("grid [%v, %v] outside C band", wl[0], wl[len(wl)-1])
	}
}
