package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
)

// zWriteCloser flushes the compressor before closing the file under it.
type zWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (z *zWriteCloser) Close() error {
	for _, closer := range z.closers {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	return nil
}

// zCreate creates filename for writing. Names ending in .gz, .zst,
// .zstd or .xz get a matching compressing writer; anything else is
// written as-is.
func zCreate(filename string) (io.WriteCloser, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(filename, ".gz"):
		log.Debug("Compressing output with gzip")
		writer := gzip.NewWriter(file)
		return &zWriteCloser{writer, []io.Closer{writer, file}}, nil

	case strings.HasSuffix(filename, ".zst"), strings.HasSuffix(filename, ".zstd"):
		log.Debug("Compressing output with zstd")
		encoder, err := zstd.NewWriter(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return &zWriteCloser{encoder, []io.Closer{encoder, file}}, nil

	case strings.HasSuffix(filename, ".xz"):
		log.Debug("Compressing output with xz")
		writer, err := xz.NewWriter(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return &zWriteCloser{writer, []io.Closer{writer, file}}, nil
	}

	return file, nil
}
