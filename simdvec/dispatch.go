package simdvec

import (
	"os"
	"strconv"
)

// Level represents the SIMD instruction set detected at startup.
type Level int

const (
	// LevelScalar indicates no SIMD; lane width defaults to 16 bytes.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the SIMD instruction set detected for this runtime.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the detected SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // keep a 16-byte lane even in scalar mode for consistency
}

// NoSimdEnv checks if the SIMDVEC_NO_SIMD environment variable is set.
// When set, the scalar lane width is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("SIMDVEC_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// DefaultLaneBytes returns the lane width used by New: the detected register
// width, or the value of the SIMDVEC_LANE_BYTES environment variable if it
// parses to a positive power of two.
func DefaultLaneBytes() int {
	if val := os.Getenv("SIMDVEC_LANE_BYTES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 && n&(n-1) == 0 {
			return n
		}
	}
	return currentWidth
}
