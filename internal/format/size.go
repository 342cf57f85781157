// Package format renders counts and sizes for human-readable output.
package format

import "fmt"

var byteUnits = []string{"KB", "MB", "GB", "TB"}

// FormatBytes converts a byte count to a short human-readable string
// using binary units (1 KB = 1024 B), capped at TB.
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	v := float64(n) / 1024
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", v, byteUnits[unit])
}

// Lines renders a line count with the right noun, e.g. "1 line", "305 lines".
func Lines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}
