package progress

import "github.com/muesli/reflow/ansi"

// stripped drops escape sequences, leaving only printable runes.
func stripped(s string) string {
	var b []rune
	inSeq := false
	for _, r := range s {
		switch {
		case r == ansi.Marker:
			inSeq = true
		case inSeq && ansi.IsTerminator(r):
			inSeq = false
		case !inSeq:
			b = append(b, r)
		}
	}
	return string(b)
}
