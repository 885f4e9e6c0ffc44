package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"gotest.tools/v3/assert"
)

const zTestContent = "package blobs\n\nvar fileData = []byte{\n\t1, 2, 3,\n}\n"

func zCreateAndWrite(t *testing.T, filename string) {
	t.Helper()

	writer, err := zCreate(filename)
	assert.NilError(t, err)

	_, err = io.Copy(writer, strings.NewReader(zTestContent))
	assert.NilError(t, err)
	assert.NilError(t, writer.Close())
}

func TestZCreatePlainFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.go")
	zCreateAndWrite(t, filename)

	contents, err := os.ReadFile(filename)
	assert.NilError(t, err)
	assert.Equal(t, zTestContent, string(contents))
}

func TestZCreateGzip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.go.gz")
	zCreateAndWrite(t, filename)

	file, err := os.Open(filename)
	assert.NilError(t, err)
	defer file.Close()

	reader, err := gzip.NewReader(file)
	assert.NilError(t, err)

	contents, err := io.ReadAll(reader)
	assert.NilError(t, err)
	assert.Equal(t, zTestContent, string(contents))
}

func TestZCreateZstd(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.go.zst")
	zCreateAndWrite(t, filename)

	file, err := os.Open(filename)
	assert.NilError(t, err)
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	assert.NilError(t, err)
	defer decoder.Close()

	contents, err := io.ReadAll(decoder)
	assert.NilError(t, err)
	assert.Equal(t, zTestContent, string(contents))
}

func TestZCreateXz(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.go.xz")
	zCreateAndWrite(t, filename)

	file, err := os.Open(filename)
	assert.NilError(t, err)
	defer file.Close()

	reader, err := xz.NewReader(file)
	assert.NilError(t, err)

	contents, err := io.ReadAll(reader)
	assert.NilError(t, err)
	assert.Equal(t, zTestContent, string(contents))
}
