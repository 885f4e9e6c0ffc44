package textbuf

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Reserved formatting widths, one per type. Each is the length of the
// widest possible rendering of that type, so the reservations are
// sufficient by construction and the overflow check in finishValue can
// never fire.
const (
	boolWidth   = len("false")
	int8Width   = len("-128")
	int16Width  = len("-32768")
	int32Width  = len("-2147483648")
	int64Width  = len("-9223372036854775808")
	uint8Width  = len("255")
	uint16Width = len("65535")
	uint32Width = len("4294967295")
	uint64Width = len("18446744073709551615")

	// Shortest round-trippable float renderings need at most 9
	// (float32) or 17 (float64) significant digits, plus sign, decimal
	// point and a 4 or 5 character exponent.
	float32Width = len("-1.17549435e-38")
	float64Width = len("-2.2250738585072014e-308")
)

// WriteBool appends "true" or "false".
func (b *Buffer) WriteBool(value bool) {
	b.ensure(boolWidth + b.indent)
	b.applyIndent()
	mark := len(b.buf)
	b.buf = strconv.AppendBool(b.buf, value)
	b.finishValue(mark, boolWidth)
}

// WriteInt appends value in base 10, with a leading '-' if negative.
func (b *Buffer) WriteInt(value int) { writeSigned(b, value, int64Width) }

// WriteInt8 appends value in base 10.
func (b *Buffer) WriteInt8(value int8) { writeSigned(b, value, int8Width) }

// WriteInt16 appends value in base 10.
func (b *Buffer) WriteInt16(value int16) { writeSigned(b, value, int16Width) }

// WriteInt32 appends value in base 10.
func (b *Buffer) WriteInt32(value int32) { writeSigned(b, value, int32Width) }

// WriteInt64 appends value in base 10.
func (b *Buffer) WriteInt64(value int64) { writeSigned(b, value, int64Width) }

// WriteUint appends value in base 10.
func (b *Buffer) WriteUint(value uint) { writeUnsigned(b, value, uint64Width) }

// WriteUint8 appends value in base 10.
func (b *Buffer) WriteUint8(value uint8) { writeUnsigned(b, value, uint8Width) }

// WriteUint16 appends value in base 10.
func (b *Buffer) WriteUint16(value uint16) { writeUnsigned(b, value, uint16Width) }

// WriteUint32 appends value in base 10.
func (b *Buffer) WriteUint32(value uint32) { writeUnsigned(b, value, uint32Width) }

// WriteUint64 appends value in base 10.
func (b *Buffer) WriteUint64(value uint64) { writeUnsigned(b, value, uint64Width) }

// WriteFloat32 appends the shortest decimal rendering of value that
// parses back to exactly value.
func (b *Buffer) WriteFloat32(value float32) {
	b.ensure(float32Width + b.indent)
	b.applyIndent()
	mark := len(b.buf)
	b.buf = strconv.AppendFloat(b.buf, float64(value), 'g', -1, 32)
	b.finishValue(mark, float32Width)
}

// WriteFloat64 appends the shortest decimal rendering of value that
// parses back to exactly value.
func (b *Buffer) WriteFloat64(value float64) {
	b.ensure(float64Width + b.indent)
	b.applyIndent()
	mark := len(b.buf)
	b.buf = strconv.AppendFloat(b.buf, value, 'g', -1, 64)
	b.finishValue(mark, float64Width)
}

func writeSigned[T constraints.Signed](b *Buffer, value T, reserved int) {
	b.ensure(reserved + b.indent)
	b.applyIndent()
	mark := len(b.buf)
	b.buf = strconv.AppendInt(b.buf, int64(value), 10)
	b.finishValue(mark, reserved)
}

func writeUnsigned[T constraints.Unsigned](b *Buffer, value T, reserved int) {
	b.ensure(reserved + b.indent)
	b.applyIndent()
	mark := len(b.buf)
	b.buf = strconv.AppendUint(b.buf, uint64(value), 10)
	b.finishValue(mark, reserved)
}

// finishValue advances the column over a value appended starting at
// mark, and verifies the reservation that guaranteed the append could
// not reallocate. Formatted values are always ASCII, so bytes equal
// runes here.
func (b *Buffer) finishValue(mark, reserved int) {
	written := len(b.buf) - mark
	if written > reserved {
		panic(fmt.Errorf("formatted value needed %d bytes but only %d were reserved",
			written, reserved))
	}
	b.column += written
}
