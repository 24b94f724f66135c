// Package dotpath splits dotted path expressions into lookup segments.
package dotpath

import "strings"

// Parse splits raw into segments separated by unescaped dots.
// A backslash marks the next dot as literal and is itself dropped from
// the output; the mark survives intervening non-dot characters until a
// dot consumes it. Empty segments produced by leading, trailing or
// consecutive separators are collapsed rather than rejected. Any input
// is accepted; the empty string yields no segments.
func Parse(raw string) []string {
	var (
		segments []string
		current  strings.Builder
		escape   bool
	)

	for _, r := range raw {
		if r == '\\' {
			escape = true
			continue
		}

		if r == '.' {
			if !escape {
				if current.Len() > 0 {
					segments = append(segments, current.String())
					current.Reset()
				}
				continue
			}
			escape = false
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}
