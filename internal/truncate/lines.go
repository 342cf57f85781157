package truncate

import "bytes"

// CountLines returns the number of lines in data. Each '\n' ends a line and
// a trailing fragment without one counts as a final line.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// cutOffset returns the byte offset just past the first n lines of data and
// the number of lines that offset covers (min(n, CountLines(data))).
func cutOffset(data []byte, n int) (int, int) {
	if n <= 0 {
		return 0, 0
	}

	off, kept := 0, 0
	for kept < n && off < len(data) {
		i := bytes.IndexByte(data[off:], '\n')
		if i < 0 {
			// Unterminated last line.
			return len(data), kept + 1
		}
		off += i + 1
		kept++
	}
	return off, kept
}
