package monitor

import (
	"math/rand"
	"strconv"

	"github.com/zeebo/xxh3"
)

// runSeed keeps digests stable within one process run only, so rows
// stay visually consistent across ticks without being comparable
// between runs.
var runSeed = rand.Uint64()

// Anonymize obfuscates an identity field for display. The digest is
// deterministic for the lifetime of the process, rendered as a decimal
// numeral. This is an obfuscation, not a security control.
func Anonymize(value string, hide bool) string {
	if !hide {
		return value
	}
	return strconv.FormatUint(xxh3.HashStringSeed(value, runSeed), 10)
}
