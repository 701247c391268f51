// Package loader handles program image file loading operations.
package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyArchive is returned for archives that do not contain a file.
var ErrEmptyArchive = errors.New("archive contains no file")

// maxImageSize limits the amount of data read from a file or archive entry,
// it is larger than any valid program image so that the interpreter can
// still report oversized images.
const maxImageSize = 1 << 20

// Loader handles loading program image files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new program image loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a program image file. Files with a .zip, .7z or .gz extension
// are decompressed, for archives the first contained file is used.
func (l *Loader) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zip":
		data, err = l.loadZip(data)
	case ".7z":
		data, err = l.loadSevenZip(data)
	case ".gz":
		data, err = loadGzip(data)
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decompressing %s file %s: %w", ext, path, err)
	}
	return data, nil
}

func (l *Loader) loadZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening zip archive: %w", err)
	}

	for _, file := range r.File {
		if file.FileInfo().IsDir() {
			continue
		}
		l.logger.Debug("Using archive entry", log.String("name", file.Name))
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("opening archive entry %s: %w", file.Name, err)
		}
		return readAndClose(rc)
	}
	return nil, ErrEmptyArchive
}

func (l *Loader) loadSevenZip(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening 7z archive: %w", err)
	}

	for _, file := range r.File {
		if file.FileInfo().IsDir() {
			continue
		}
		l.logger.Debug("Using archive entry", log.String("name", file.Name))
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("opening archive entry %s: %w", file.Name, err)
		}
		return readAndClose(rc)
	}
	return nil, ErrEmptyArchive
}

func loadGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	return readAndClose(r)
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	return data, nil
}
