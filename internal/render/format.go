package render

import (
	"fmt"
	"math"
)

// FormatTime converts seconds to HH:MM:SS,mmm.
func FormatTime(seconds float64) string {
	totalSec := math.Abs(seconds)
	hours := int(totalSec / 3600)
	remainder := math.Mod(totalSec, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Mod(secs, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, int(secs), millis)
}
