package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testImage = []byte{0x00, 0xE0, 0xA2, 0x2A, 0x60, 0x0C}

//nolint:funlen // test functions can be long
func TestLoad(t *testing.T) {
	t.Run("load raw file", func(t *testing.T) {
		path := createTempFile(t, "test.ch8", testImage)

		data, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Equal(t, testImage, data)
	})

	t.Run("load file without extension", func(t *testing.T) {
		path := createTempFile(t, "PONG", testImage)

		data, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Equal(t, testImage, data)
	})

	t.Run("load zip archive", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		_, err := w.Create("roms/")
		assert.NoError(t, err)
		f, err := w.Create("roms/test.ch8")
		assert.NoError(t, err)
		_, err = f.Write(testImage)
		assert.NoError(t, err)
		assert.NoError(t, w.Close())

		path := createTempFile(t, "test.zip", buf.Bytes())

		data, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Equal(t, testImage, data)
	})

	t.Run("load gzip file", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(testImage)
		assert.NoError(t, err)
		assert.NoError(t, w.Close())

		path := createTempFile(t, "test.ch8.gz", buf.Bytes())

		data, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Equal(t, testImage, data)
	})

	t.Run("error on empty zip archive", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		assert.NoError(t, w.Close())

		path := createTempFile(t, "empty.zip", buf.Bytes())

		_, err := New(log.NewTestLogger(t)).Load(path)
		assert.True(t, errors.Is(err, ErrEmptyArchive))
	})

	t.Run("load 7z archive", func(t *testing.T) {
		path := createTempFile(t, "test.7z", sevenZipArchive("game.ch8", testImage))

		data, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Equal(t, testImage, data)
	})

	t.Run("error on invalid 7z archive", func(t *testing.T) {
		path := createTempFile(t, "broken.7z", testImage)

		_, err := New(log.NewTestLogger(t)).Load(path)
		assert.Error(t, err)
	})

	t.Run("error on invalid gzip file", func(t *testing.T) {
		path := createTempFile(t, "broken.gz", testImage)

		_, err := New(log.NewTestLogger(t)).Load(path)
		assert.Error(t, err)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New(log.NewTestLogger(t)).Load("/nonexistent/file.ch8")
		assert.Error(t, err)
	})
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

// sevenZipArchive returns a 7z archive that stores a single file with the
// copy method and an unencoded header. Name and content have to be short
// enough for every size to fit into a single byte number.
func sevenZipArchive(name string, content []byte) []byte {
	nameData := make([]byte, 0, 2*len(name)+2)
	for _, r := range name {
		nameData = binary.LittleEndian.AppendUint16(nameData, uint16(r))
	}
	nameData = append(nameData, 0, 0)

	size := byte(len(content))
	header := []byte{
		0x01, // header
		0x04, // main streams info
		// pack info: position 0, 1 stream, sizes
		0x06, 0x00, 0x01, 0x09, size, 0x00,
		// unpack info: 1 folder with 1 coder using the copy method, unpack sizes
		0x07, 0x0B, 0x01, 0x00, 0x01, 0x01, 0x00, 0x0C, size, 0x00,
		// sub streams info: all crcs defined
		0x08, 0x0A, 0x01,
	}
	header = binary.LittleEndian.AppendUint32(header, crc32.ChecksumIEEE(content))
	// end of sub streams info and main streams info, files info with 1 file
	// and the names property that is not external
	header = append(header, 0x00, 0x00, 0x05, 0x01, 0x11, byte(len(nameData)+1), 0x00)
	header = append(header, nameData...)
	// end of files info and header
	header = append(header, 0x00, 0x00)

	start := make([]byte, 0, 20)
	start = binary.LittleEndian.AppendUint64(start, uint64(len(content)))
	start = binary.LittleEndian.AppendUint64(start, uint64(len(header)))
	start = binary.LittleEndian.AppendUint32(start, crc32.ChecksumIEEE(header))

	archive := []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C, 0x00, 0x04}
	archive = binary.LittleEndian.AppendUint32(archive, crc32.ChecksumIEEE(start))
	archive = append(archive, start...)
	archive = append(archive, content...)
	return append(archive, header...)
}
