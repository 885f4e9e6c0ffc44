package main

import (
	"tbuf/textbuf"
	"tbuf/util"
)

type generateConfig struct {
	packageName  string
	varName      string
	sourceName   string
	bytesPerLine int
}

// generate renders a Go source file embedding data as a []byte literal.
// The whole file is assembled in one textbuf.Buffer, sized up front so
// the byte table doesn't trigger repeated growth.
func generate(data []byte, config generateConfig) *textbuf.Buffer {
	// Each byte value costs at most len("255, ") characters, plus
	// indentation and an offset comment per line.
	lineCount := (len(data) + config.bytesPerLine - 1) / config.bytesPerLine
	estimate := 5*len(data) + 48*lineCount + 128 +
		len(config.packageName) + 2*len(config.varName) + len(config.sourceName)

	buffer, err := textbuf.New(estimate)
	if err != nil {
		// The estimate can't be negative
		panic(err)
	}

	buffer.WriteLine("// Code generated by embedgen. DO NOT EDIT.")
	buffer.WriteLine("")
	buffer.WriteString("package ")
	buffer.WriteLine(config.packageName)
	buffer.WriteLine("")

	buffer.WriteString("// ")
	buffer.WriteString(config.varName)
	buffer.WriteString(" holds the contents of ")
	buffer.WriteString(config.sourceName)
	buffer.WriteString(" (")
	buffer.WriteString(util.FormatNumber(uint64(len(data))))
	buffer.WriteLine(" bytes).")

	buffer.WriteString("var ")
	buffer.WriteString(config.varName)
	buffer.WriteLine(" = []byte{")

	// Offset comments line up two columns past the widest possible row
	commentColumn := 2 + config.bytesPerLine*len("255, ")

	buffer.Indent(1)
	for offset := 0; offset < len(data); offset += config.bytesPerLine {
		end := offset + config.bytesPerLine
		if end > len(data) {
			end = len(data)
		}

		for _, value := range data[offset:end] {
			buffer.WriteUint8(value)
			buffer.WriteString(", ")
		}

		for buffer.Column() < commentColumn {
			_ = buffer.WriteByte(' ')
		}
		buffer.WriteString("// offset ")
		buffer.WriteInt(offset)
		buffer.WriteLine("")
	}
	buffer.Indent(-1)

	buffer.WriteLine("}")

	return buffer
}
