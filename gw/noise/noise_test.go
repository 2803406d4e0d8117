package noise

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-gw/gw/curve"
	"github.com/cwbudde/algo-gw/internal/testutil"
)

func band(t *testing.T) []float64 {
	t.Helper()
	f, err := curve.LogSpace(1e-5, 1, 1000)
	if err != nil {
		t.Fatalf("LogSpace error: %v", err)
	}
	return f
}

func TestEvaluatePure(t *testing.T) {
	f := band(t)
	a := Evaluate(f, WithConfusion(FourYears))
	b := Evaluate(f, WithConfusion(FourYears))
	if len(a) != len(f) {
		t.Fatalf("length mismatch: got=%d want=%d", len(a), len(f))
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestEvaluateFiniteAcrossBand(t *testing.T) {
	f := band(t)
	for _, p := range []ObservationPeriod{NoConfusion, HalfYear, OneYear, TwoYears, FourYears} {
		testutil.RequirePositive(t, Evaluate(f, WithConfusion(p)))
	}
}

func TestInstrumentLevel(t *testing.T) {
	// Around the bucket the design curve sits at a few 1e-40 / Hz.
	s := New().PSD(3e-3)
	if s < 1e-40 || s > 1e-39 {
		t.Fatalf("PSD(3 mHz)=%v outside [1e-40, 1e-39]", s)
	}
}

func TestSegmentsRise(t *testing.T) {
	m := New()
	low := []float64{1e-5, 1e-4, 1e-3}
	for i := 1; i < len(low); i++ {
		if m.PSD(low[i-1]) <= m.PSD(low[i]) {
			t.Fatalf("acceleration segment not falling: S(%v)=%v S(%v)=%v",
				low[i-1], m.PSD(low[i-1]), low[i], m.PSD(low[i]))
		}
	}
	high := []float64{0.03, 0.1, 1}
	for i := 1; i < len(high); i++ {
		if m.PSD(high[i]) <= m.PSD(high[i-1]) {
			t.Fatalf("shot-noise segment not rising: S(%v)=%v S(%v)=%v",
				high[i-1], m.PSD(high[i-1]), high[i], m.PSD(high[i]))
		}
	}
}

func TestConfusionRaisesFloor(t *testing.T) {
	f := band(t)
	bare := Evaluate(f)
	fg := Evaluate(f, WithConfusion(FourYears))
	for i := range f {
		if fg[i] < bare[i] {
			t.Fatalf("f=%v: with confusion %v < without %v", f[i], fg[i], bare[i])
		}
	}
	m := New(WithConfusion(OneYear))
	if m.Confusion(1e-3) <= 0 {
		t.Fatalf("expected positive foreground at 1 mHz")
	}
	if New().Confusion(1e-3) != 0 {
		t.Fatalf("expected no foreground without WithConfusion")
	}
}

func TestOutOfContractInput(t *testing.T) {
	m := New(WithConfusion(OneYear))
	for _, f := range []float64{0, -1, math.NaN()} {
		if v := m.PSD(f); !math.IsNaN(v) {
			t.Fatalf("PSD(%v)=%v want NaN", f, v)
		}
	}
	for _, f := range []float64{1e-7, 10, 100} {
		if v := m.PSD(f); math.IsNaN(v) || v <= 0 {
			t.Fatalf("PSD(%v)=%v want positive", f, v)
		}
	}
}

func TestOptions(t *testing.T) {
	cfg := ApplyOptions(WithArmLength(-1), WithOMSNoise(0), WithConfusion(ObservationPeriod(42)), nil)
	if cfg != DefaultConfig() {
		t.Fatalf("invalid options changed config: %+v", cfg)
	}

	m := New(WithArmLength(5e9))
	if math.Abs(m.TransferFrequency()-speedOfLight/(2*math.Pi*5e9)) > 1e-15 {
		t.Fatalf("TransferFrequency=%v", m.TransferFrequency())
	}
	if New(WithOMSNoise(3e-11)).PSD(0.1) <= New().PSD(0.1) {
		t.Fatalf("larger OMS noise should raise high-frequency PSD")
	}
	if New(WithAccelerationNoise(6e-15)).PSD(1e-4) <= New().PSD(1e-4) {
		t.Fatalf("larger acceleration noise should raise low-frequency PSD")
	}
}

func TestCharacteristicStrain(t *testing.T) {
	f := []float64{1e-3, 1e-2}
	s := []float64{4e-40, 9e-40}
	hc := CharacteristicStrain(f, s)
	testutil.RequireSliceRelNear(t, hc, []float64{math.Sqrt(4e-43), math.Sqrt(9e-42)}, 1e-12)
	if CharacteristicStrain(nil, nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
