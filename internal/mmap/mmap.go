// Package mmap provides a read-only memory map over a regular file.
package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a file mapped read-only into memory. The mapping stays valid until
// Close is called; slices handed out by Bytes must not be used after that.
type File struct {
	f    *os.File
	data []byte
}

// Open opens path and maps its full contents read-only. An empty file maps
// to a nil byte slice since mmap rejects zero-length mappings.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error fetching file stats: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		return &File{f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error mapping file: %w", err)
	}

	return &File{f: f, data: data}, nil
}

// Bytes returns the mapped contents. The slice borrows the mapping and is
// invalidated by Close.
func (m *File) Bytes() []byte {
	return m.data
}

// Size returns the number of mapped bytes.
func (m *File) Size() int {
	return len(m.data)
}

// Close unmaps the file contents and closes the underlying file descriptor.
func (m *File) Close() error {
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			m.f.Close()
			return fmt.Errorf("error unmapping file: %w", err)
		}
		m.data = nil
	}
	return m.f.Close()
}
