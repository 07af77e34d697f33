// Package codec implements the .ftms binary format used to persist todo lists.
//
// Layout:
//
//	FE DC 00            magic
//	uint32 big-endian   item count
//	item bytes, 00      repeated count times
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/nikbrunner/todo/internal/model"
)

// Extension is the file extension for encoded lists.
const Extension = ".ftms"

const headerSize = 7 // magic (3) + count (4)

var magic = []byte{0xFE, 0xDC, 0x00}

var (
	// ErrInvalid is wrapped by every decode failure.
	ErrInvalid = errors.New("invalid ftms data")
	// ErrEmbeddedNUL is returned when an item cannot be encoded.
	ErrEmbeddedNUL = errors.New("item contains a NUL byte")
)

// Encode serializes the list items.
func Encode(l *model.List) ([]byte, error) {
	size := headerSize
	for _, item := range l.Items {
		size += len(item) + 1
	}

	buf := make([]byte, 0, size)
	buf = append(buf, magic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(l.Items)))

	for i, item := range l.Items {
		if strings.IndexByte(item, 0) >= 0 {
			return nil, fmt.Errorf("item %d: %w", i+1, ErrEmbeddedNUL)
		}
		buf = append(buf, item...)
		buf = append(buf, 0)
	}
	return buf, nil
}

// Decode parses data produced by Encode. Bytes after the last declared item
// are ignored.
func Decode(data []byte) (*model.List, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalid, len(data))
	}
	if !bytes.Equal(data[:3], magic) {
		return nil, fmt.Errorf("%w: bad magic % x", ErrInvalid, data[:3])
	}

	count := binary.BigEndian.Uint32(data[3:headerSize])
	rest := data[headerSize:]

	// Each item takes at least its terminator, so a count larger than the
	// remaining bytes can never be satisfied.
	if uint64(count) > uint64(len(rest)) {
		return nil, fmt.Errorf("%w: %d items declared in %d bytes", ErrInvalid, count, len(rest))
	}

	items := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		end := bytes.IndexByte(rest, 0)
		if end < 0 {
			return nil, fmt.Errorf("%w: item %d is not terminated", ErrInvalid, i+1)
		}
		items = append(items, string(rest[:end]))
		rest = rest[end+1:]
	}

	return model.NewList(items...), nil
}
