package simdvec

import "testing"

func TestCurrentWidth(t *testing.T) {
	w := CurrentWidth()
	if w < 16 {
		t.Errorf("CurrentWidth: got %d, want >= 16", w)
	}
	if w&(w-1) != 0 {
		t.Errorf("CurrentWidth: got %d, want a power of two", w)
	}
}

func TestLevelString(t *testing.T) {
	levels := []Level{LevelScalar, LevelSSE2, LevelAVX2, LevelAVX512, LevelNEON}
	for _, l := range levels {
		if l.String() == "unknown" {
			t.Errorf("Level(%d).String() = unknown", int(l))
		}
	}
	if Level(99).String() != "unknown" {
		t.Error("out-of-range level should stringify as unknown")
	}
	if CurrentLevel().String() == "unknown" {
		t.Error("detected level should have a name")
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("SIMDVEC_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("empty SIMDVEC_NO_SIMD should be false")
	}

	t.Setenv("SIMDVEC_NO_SIMD", "1")
	if !NoSimdEnv() {
		t.Error("SIMDVEC_NO_SIMD=1 should be true")
	}

	t.Setenv("SIMDVEC_NO_SIMD", "false")
	if NoSimdEnv() {
		t.Error("SIMDVEC_NO_SIMD=false should be false")
	}
}
