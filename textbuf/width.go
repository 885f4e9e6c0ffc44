package textbuf

import (
	"bytes"

	"github.com/rivo/uniseg"
)

// LineWidth returns the display width in terminal cells of the current
// line, meaning everything after the last line break. Unlike Column,
// which counts runes, this accounts for double-width CJK characters and
// zero-width combiners. Tabs measure as zero cells since their rendered
// width depends on the terminal.
func (b *Buffer) LineWidth() int {
	line := b.buf
	if lineBreak := bytes.LastIndexByte(line, '\n'); lineBreak >= 0 {
		line = line[lineBreak+1:]
	}
	return uniseg.StringWidth(string(line))
}
