// Package source owns the padded byte buffer that the lexer reads and
// mutates in place while normalizing escaped identifiers.
package source

// Offset is a byte offset into a Buffer's contents (or, after normalization,
// into the rewritten portion of it).
type Offset int

// Span is a half-open byte range [Begin, End) within a single Buffer. Spans
// from different Buffers must never be compared.
type Span struct {
	Begin Offset
	End   Offset
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool { return s.Begin == s.End }

// padding is the number of guaranteed trailing zero bytes past the last
// content byte. At and Slice may read Buffer.data[pos] for
// pos == len(contents) without going out of range; a single trailing zero is
// enough for that one-past-end read (the lexer itself detects end-of-file
// by position, not by the zero byte).
const padding = 1

// Buffer is an owned, padded copy of a source file's bytes. The lexer holds
// the only mutable reference to a Buffer for its lifetime and may rewrite
// identifier escape sequences in place (see lexer.Lexer).
type Buffer struct {
	data []byte // len(data) == contentLen + padding; data[contentLen:] is zero
	size Offset // contentLen, i.e. the logical end of the original content
}

// NewBuffer copies contents into an owned, padded buffer. The caller's slice
// is never retained or mutated.
func NewBuffer(contents []byte) *Buffer {
	b := &Buffer{
		data: make([]byte, len(contents)+padding),
		size: Offset(len(contents)),
	}
	copy(b.data, contents)
	return b
}

// NewBufferString is a convenience wrapper around NewBuffer for string
// input, used pervasively by tests.
func NewBufferString(contents string) *Buffer {
	return NewBuffer([]byte(contents))
}

// Begin returns the offset of the first content byte (always 0).
func (b *Buffer) Begin() Offset { return 0 }

// End returns the offset one past the last content byte. Bytes at and past
// End are guaranteed to be zero and may be read by the lexer's lookahead.
func (b *Buffer) End() Offset { return b.size }

// Len is the number of logical content bytes, excluding padding.
func (b *Buffer) Len() int { return int(b.size) }

// At returns the byte at pos. pos == Len() (the first padding byte) is a
// valid, zero-valued read; this is the one-past-end peek the lexer relies
// on. Reading further than that is a programming error.
func (b *Buffer) At(pos Offset) byte { return b.data[pos] }

// Slice returns the bytes in [from, to) as a string. Slicing into the
// padding region (to == Len()+1) is allowed and yields a NUL byte, mirroring
// At's one-past-end guarantee.
func (b *Buffer) Slice(from, to Offset) string { return string(b.data[from:to]) }

// View returns a Span covering the buffer's full original content.
func (b *Buffer) View() Span { return Span{Begin: 0, End: b.size} }

// RewriteIdentifier overwrites the bytes in [begin, begin+len(decoded)) with
// decoded, then pads the freed suffix (up to end) with spaces. This is the
// in-place identifier-escape normalization described in spec §4.1: the
// token's End stays at the original end, from which lexing continues, and
// begin+len(decoded) is reported separately as its NormalizedIdentifierEnd.
//
// Precondition: len(decoded) <= int(end-begin), i.e. decoding an escape
// sequence never produces more bytes than the escape itself occupied.
func (b *Buffer) RewriteIdentifier(begin, end Offset, decoded string) {
	n := copy(b.data[begin:end], decoded)
	for i := int(begin) + n; i < int(end); i++ {
		b.data[i] = ' '
	}
}
