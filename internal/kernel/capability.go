package kernel

import (
	"os"
	"strings"
)

// Impl identifies a population count implementation.
type Impl uint8

const (
	// SWAR is the portable parallel bit-summing implementation.
	SWAR Impl = iota
	// Native uses math/bits, which compiles to POPCNT (amd64) or CNT (arm64).
	Native
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case SWAR:
		return "swar"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "swar":
		return SWAR, true
	case "native":
		return Native, true
	default:
		return SWAR, false
	}
}

// overrideEnv forces the popcount implementation when set.
const overrideEnv = "LABELSET_POPCOUNT"

var (
	activeImpl  Impl
	hasOverride bool

	// Set by platform-specific init before initCapabilities runs.
	hasPopcnt bool
)

func initCapabilities() {
	activeImpl, hasOverride = selectImpl(os.Getenv(overrideEnv), hasPopcnt)
	install(activeImpl)
}

// selectImpl resolves the override against CPU support. An unknown or
// unsupported override falls through to auto-detection.
func selectImpl(override string, native bool) (Impl, bool) {
	if impl, ok := ParseImpl(override); ok && (impl == SWAR || native) {
		return impl, true
	}
	if native {
		return Native, false
	}
	return SWAR, false
}

func install(impl Impl) {
	switch impl {
	case Native:
		kernelPopcountWords = popcountWordsNative
	default:
		kernelPopcountWords = popcountWordsSWAR
	}
}

// ActiveImpl returns the popcount implementation in use.
func ActiveImpl() Impl {
	return activeImpl
}

// IsOverridden returns true if LABELSET_POPCOUNT selected the implementation.
func IsOverridden() bool {
	return hasOverride
}

// HasNativePopcount reports whether the CPU advertises a popcount instruction.
func HasNativePopcount() bool {
	return hasPopcnt
}
