package io

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/exp/mmap"
)

// ErrInvalidText is returned when a file does not hold valid UTF-8
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// MappedFile provides memory-mapped read access to a file
type MappedFile struct {
	reader *mmap.ReaderAt
	path   string
}

// OpenMapped opens a file with memory mapping
func OpenMapped(path string) (*MappedFile, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		// mmap(2) failures come back as a bare errno
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			err = &fs.PathError{Op: "mmap", Path: path, Err: err}
		}
		return nil, err
	}

	return &MappedFile{
		reader: reader,
		path:   path,
	}, nil
}

// Bytes copies the whole mapping into memory
func (m *MappedFile) Bytes() ([]byte, error) {
	buf := make([]byte, m.reader.Len())
	if _, err := m.reader.ReadAt(buf, 0); err != nil {
		return nil, &fs.PathError{Op: "read", Path: m.path, Err: err}
	}
	return buf, nil
}

// Close closes the memory mapping
func (m *MappedFile) Close() error {
	return m.reader.Close()
}

// ReadText reads the whole file at path into memory as UTF-8 text.
// Regular files with content are memory mapped; anything else (procfs
// entries, pipes, directories) goes through a plain read so its real
// contents or error surface.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	var data []byte
	if info.Mode().IsRegular() && info.Size() > 0 {
		data, err = readMapped(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", &fs.PathError{Op: "read", Path: path, Err: ErrInvalidText}
	}

	return string(data), nil
}

func readMapped(path string) ([]byte, error) {
	file, err := OpenMapped(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return file.Bytes()
}
