package app

// defaultCharWidth is used for any rune not present in the width table,
// including non-Latin scripts.
const defaultCharWidth = 9.0

// defaultEllipsis marks the truncation point in rendered snippets.
const defaultEllipsis = "..."

// defaultCharWidths approximates per-character pixel widths of the SERP
// font at reference size. The values are empirical, tuned against observed
// search-result rendering; treat them as configuration, not ground truth.
func defaultCharWidths() map[rune]float64 {
	return map[rune]float64{
		'a': 8.5, 'b': 9, 'c': 8, 'd': 9, 'e': 8, 'f': 5, 'g': 9, 'h': 9, 'i': 4, 'j': 4,
		'k': 8, 'l': 4, 'm': 13, 'n': 9, 'o': 9, 'p': 9, 'q': 9, 'r': 6, 's': 8, 't': 5,
		'u': 9, 'v': 8, 'w': 12, 'x': 8, 'y': 8, 'z': 8,
		'A': 11, 'B': 10, 'C': 11, 'D': 11, 'E': 9, 'F': 9, 'G': 12, 'H': 11, 'I': 4, 'J': 7,
		'K': 10, 'L': 9, 'M': 13, 'N': 11, 'O': 12, 'P': 10, 'Q': 12, 'R': 10, 'S': 10, 'T': 9,
		'U': 11, 'V': 10, 'W': 15, 'X': 10, 'Y': 10, 'Z': 9,
		'0': 9, '1': 9, '2': 9, '3': 9, '4': 9, '5': 9, '6': 9, '7': 9, '8': 9, '9': 9,
		' ': 4, '.': 4, ',': 4, ':': 4, ';': 4, '!': 4, '?': 8, '-': 5, '_': 8, '(': 5, ')': 5,
		'[': 4, ']': 4, '{': 5, '}': 5, '/': 5, '\\': 5, '|': 4, '@': 16, '#': 9, '$': 9,
		'%': 14, '^': 8, '&': 11, '*': 6, '+': 9, '=': 9, '<': 9, '>': 9, '~': 9, '`': 5,
		'"': 5, '\'': 3,
	}
}
