package fileseq

import (
	"fmt"
)

var sizeUnits = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}

// SizeLabel renders a byte count with binary prefixes, eg. 1536 -> "1.5KiB".
//
// Anything beyond Zi is written in Yi. A zero (or negative) count is an empty string.
func SizeLabel(num int64) string {
	if num <= 0 {
		return ""
	}
	val := float64(num)
	mag := 0
	for val >= 1024 && mag < len(sizeUnits)-1 {
		val /= 1024
		mag++
	}
	return fmt.Sprintf("%.1f%sB", val, sizeUnits[mag])
}
