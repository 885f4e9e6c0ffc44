package textbuf

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// applyIndent materializes the pending indentation if the next byte
// starts a line. Callers must already have reserved room for the
// indentation bytes.
func (b *Buffer) applyIndent() {
	if b.column != 0 || b.indent == 0 {
		return
	}
	for i := 0; i < b.indent; i++ {
		b.buf = append(b.buf, indentUnit)
	}
	b.column = b.indent
}

// WriteString appends text. Appending the empty string is a no-op, not
// an empty write. Every line started inside text gets the current
// indentation, and the column ends up consistent with the appended
// content.
func (b *Buffer) WriteString(text string) {
	if len(text) == 0 {
		return
	}

	// Worst case: indentation before the first segment and after every
	// line break.
	b.ensure(len(text) + b.indent*(strings.Count(text, "\n")+1))

	for {
		lineBreak := strings.IndexByte(text, '\n')
		if lineBreak < 0 {
			b.writeSegment(text)
			return
		}

		b.writeSegment(text[:lineBreak])
		b.buf = append(b.buf, '\n')
		b.column = 0

		text = text[lineBreak+1:]
		if len(text) == 0 {
			return
		}
	}
}

// writeSegment appends one line-break-free segment, indenting first if
// it starts a line. Capacity must already be reserved.
func (b *Buffer) writeSegment(segment string) {
	if len(segment) == 0 {
		return
	}
	b.applyIndent()
	b.buf = append(b.buf, segment...)
	b.column += utf8.RuneCountInString(segment)
}

// WriteLine appends text followed by a line break. Writing the empty
// string emits only the line break; blank lines carry no indentation
// and no trailing whitespace.
func (b *Buffer) WriteLine(text string) {
	b.WriteString(text)
	b.ensure(1)
	b.buf = append(b.buf, '\n')
	b.column = 0
}

// WriteByte appends one byte, indenting first if it starts a line. The
// returned error is always nil; the signature matches io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	if c == '\n' {
		b.ensure(1)
		b.buf = append(b.buf, c)
		b.column = 0
		return nil
	}

	b.ensure(1 + b.indent)
	b.applyIndent()
	b.buf = append(b.buf, c)
	b.column++
	return nil
}

// WriteRune appends the UTF-8 encoding of r, counting it as one column.
func (b *Buffer) WriteRune(r rune) {
	if r < utf8.RuneSelf {
		_ = b.WriteByte(byte(r))
		return
	}

	b.ensure(utf8.UTFMax + b.indent)
	b.applyIndent()
	b.buf = utf8.AppendRune(b.buf, r)
	b.column++
}

// Write appends data, making the buffer a valid target for fmt.Fprintf
// and friends. Indentation and column tracking behave as for
// WriteString. The returned error is always nil.
func (b *Buffer) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	total := len(data)
	b.ensure(len(data) + b.indent*(bytes.Count(data, []byte{'\n'})+1))

	for {
		lineBreak := bytes.IndexByte(data, '\n')
		if lineBreak < 0 {
			break
		}

		if segment := data[:lineBreak]; len(segment) > 0 {
			b.applyIndent()
			b.buf = append(b.buf, segment...)
		}
		b.buf = append(b.buf, '\n')
		b.column = 0

		data = data[lineBreak+1:]
	}

	if len(data) > 0 {
		b.applyIndent()
		b.buf = append(b.buf, data...)
		b.column += utf8.RuneCount(data)
	}

	return total, nil
}
