package codegen

import "strings"

// SegmentKind classifies a piece of split text.
type SegmentKind int

const (
	// SegCode is plain code text.
	SegCode SegmentKind = iota
	// SegBlockComment is a /* */ comment, terminator included.
	SegBlockComment
	// SegLineComment is a // comment, trailing newline included.
	SegLineComment
)

// Segment is one run of code or comment text.
type Segment struct {
	Kind SegmentKind
	Text string
}

// SplitSegments splits text into alternating code and comment
// segments. Concatenating the segment texts reproduces the input
// byte-for-byte. An unterminated block comment runs to the end of the
// input; a line comment runs to the newline inclusive, or to the end
// of input.
func SplitSegments(text string) []Segment {
	var segs []Segment
	start := 0
	flush := func(end int) {
		if end > start {
			segs = append(segs, Segment{SegCode, text[start:end]})
		}
	}

	i := 0
	for i < len(text) {
		switch {
		case strings.HasPrefix(text[i:], "/*"):
			flush(i)
			end := len(text)
			if t := strings.Index(text[i+2:], "*/"); t >= 0 {
				end = i + 2 + t + 2
			}
			segs = append(segs, Segment{SegBlockComment, text[i:end]})
			i, start = end, end
		case strings.HasPrefix(text[i:], "//"):
			flush(i)
			end := len(text)
			if t := strings.IndexByte(text[i:], '\n'); t >= 0 {
				end = i + t + 1
			}
			segs = append(segs, Segment{SegLineComment, text[i:end]})
			i, start = end, end
		default:
			i++
		}
	}
	flush(len(text))
	return segs
}
