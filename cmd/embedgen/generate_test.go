package main

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestGenerateSmallFile(t *testing.T) {
	buffer := generate([]byte{0, 1, 255}, generateConfig{
		packageName:  "blobs",
		varName:      "icon",
		sourceName:   "icon.png",
		bytesPerLine: 8,
	})

	expected := strings.Join([]string{
		"// Code generated by embedgen. DO NOT EDIT.",
		"",
		"package blobs",
		"",
		"// icon holds the contents of icon.png (3 bytes).",
		"var icon = []byte{",
		"\t0, 1, 255, " + strings.Repeat(" ", 30) + "// offset 0",
		"}",
		"",
	}, "\n")
	assert.Equal(t, expected, buffer.String())
}

func TestGenerateEmptyFile(t *testing.T) {
	buffer := generate(nil, generateConfig{
		packageName:  "blobs",
		varName:      "nothing",
		sourceName:   "empty.bin",
		bytesPerLine: 8,
	})

	lines := strings.Split(buffer.String(), "\n")
	assert.Equal(t, "// nothing holds the contents of empty.bin (0 bytes).", lines[4])
	assert.Equal(t, "var nothing = []byte{", lines[5])
	assert.Equal(t, "}", lines[6])
}

func TestGenerateLineLayout(t *testing.T) {
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i * 25)
	}

	buffer := generate(data, generateConfig{
		packageName:  "blobs",
		varName:      "table",
		sourceName:   "table.bin",
		bytesPerLine: 4,
	})

	lines := strings.Split(buffer.String(), "\n")
	tableLines := lines[6 : len(lines)-2]

	assert.Equal(t, 3, len(tableLines))
	for _, line := range tableLines {
		assert.Assert(t, strings.HasPrefix(line, "\t"), "table lines must be indented: %q", line)
	}
	assert.Assert(t, strings.HasSuffix(tableLines[0], "// offset 0"))
	assert.Assert(t, strings.HasSuffix(tableLines[1], "// offset 4"))
	assert.Assert(t, strings.HasSuffix(tableLines[2], "// offset 8"))

	// Offset comments line up
	first := strings.Index(tableLines[0], "//")
	assert.Equal(t, first, strings.Index(tableLines[1], "//"))
	assert.Equal(t, first, strings.Index(tableLines[2], "//"))

	// The closing brace is back at depth zero
	assert.Equal(t, "}", lines[len(lines)-2])
}

func TestGenerateBigFileDigitGrouping(t *testing.T) {
	buffer := generate(make([]byte, 20_000), generateConfig{
		packageName:  "blobs",
		varName:      "big",
		sourceName:   "big.bin",
		bytesPerLine: 16,
	})

	assert.Assert(t, strings.Contains(buffer.String(), "(20_000 bytes)."))
}
