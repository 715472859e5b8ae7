package mathx

import (
	"math"
	"testing"

	"github.com/Aureliona1/Helpers/internal/testutil"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 15, 0, 10, 10},
		{"at low edge", 0, 0, 10, 0},
		{"at high edge", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Clamp(tt.v, tt.lo, tt.hi), tt.want)
		})
	}

	testutil.AssertEqual(t, Clamp(2.5, 0.0, 1.0), 1.0)
	testutil.AssertEqual(t, Clamp01(-0.2), 0.0)
	testutil.AssertEqual(t, Clamp01(0.4), 0.4)
}

func TestLerp(t *testing.T) {
	testutil.AssertEqual(t, Lerp(0, 10, 0), 0.0)
	testutil.AssertEqual(t, Lerp(0, 10, 0.5), 5.0)
	testutil.AssertEqual(t, Lerp(0, 10, 1), 10.0)
	testutil.AssertEqual(t, Lerp(0, 10, 1.5), 15.0) // extrapolates
	testutil.AssertEqual(t, Lerp(10, 0, 0.25), 7.5)
}

func TestInverseLerp(t *testing.T) {
	testutil.AssertEqual(t, InverseLerp(0, 10, 5), 0.5)
	testutil.AssertEqual(t, InverseLerp(10, 20, 10), 0.0)
	testutil.AssertEqual(t, InverseLerp(10, 20, 20), 1.0)
	testutil.AssertEqual(t, InverseLerp(3, 3, 7), 0.0) // degenerate range
}

func TestRemap(t *testing.T) {
	testutil.AssertEqual(t, Remap(5, 0, 10, 0, 100), 50.0)
	testutil.AssertEqual(t, Remap(0, -1, 1, 0, 255), 127.5)
	testutil.AssertEqual(t, Remap(2, 0, 1, 0, 10), 20.0) // extrapolates
}

func TestSumMean(t *testing.T) {
	testutil.AssertEqual(t, Sum([]int{1, 2, 3, 4}), 10)
	testutil.AssertEqual(t, Sum([]float64{0.5, 0.25}), 0.75)
	testutil.AssertEqual(t, Sum([]int(nil)), 0)

	testutil.AssertEqual(t, Mean([]int{1, 2, 3, 4}), 2.5)
	testutil.AssertEqual(t, Mean([]float64(nil)), 0.0)
}

func TestMinMax(t *testing.T) {
	xs := []int{3, -1, 7, 0}

	minV, ok := Min(xs)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, minV, -1)

	maxV, ok := Max(xs)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, maxV, 7)

	lo, hi, ok := MinMax(xs)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, lo, -1)
	testutil.AssertEqual(t, hi, 7)

	if _, _, ok := MinMax([]int{}); ok {
		t.Fatal("MinMax on empty slice should report false")
	}

	f, ok := Max([]float64{math.Inf(-1), -2.5})
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, f, -2.5)
}
