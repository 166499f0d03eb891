package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
)

//go:generate go tool mockgen -package storagemock -destination ../internal/mock/storagemock/storage.go . Storage

// Storage owns the text of a [URI].
type Storage interface {
	// Source returns the stored text.
	Source() string
	// Swap stores src and returns the previous text.
	// If src does not fit, the storage is left empty and an error wrapping
	// [ErrStorageExceed] is returned together with the previous text.
	Swap(src string) (old string, err error)
	// Cap returns the maximum number of bytes the storage can hold.
	Cap() int
}

// DefaultFixedCap is the capacity used by [NewFixedStorage] for non-positive values.
const DefaultFixedCap = 1024

// DynamicStorage holds sources of any length up to [MaxLen].
// The zero value is ready to use.
type DynamicStorage struct {
	buf string
}

func NewDynamicStorage() *DynamicStorage { return new(DynamicStorage) }

func (s *DynamicStorage) Source() string { return s.buf }

func (s *DynamicStorage) Swap(src string) (string, error) {
	old := s.buf
	if len(src) > MaxLen {
		s.buf = ""
		return old, errtrace.Wrap(newCapacityError(len(src), MaxLen))
	}
	s.buf = src
	return old, nil
}

func (*DynamicStorage) Cap() int { return MaxLen }

// Clone returns an independent storage with the same contents.
func (s *DynamicStorage) Clone() Storage {
	return &DynamicStorage{buf: s.buf}
}

// FixedStorage holds sources in a buffer allocated once with a fixed capacity.
type FixedStorage struct {
	buf []byte
	n   int
}

// NewFixedStorage creates a storage with the given capacity in bytes.
// Non-positive capacity selects [DefaultFixedCap]; capacity is limited to [MaxLen].
func NewFixedStorage(capacity int) *FixedStorage {
	if capacity <= 0 {
		capacity = DefaultFixedCap
	}
	return &FixedStorage{buf: make([]byte, min(capacity, MaxLen))}
}

// Source returns a copy of the stored bytes.
func (s *FixedStorage) Source() string { return string(s.buf[:s.n]) }

func (s *FixedStorage) Swap(src string) (string, error) {
	old := s.Source()
	if len(src) > len(s.buf) {
		s.n = 0
		return old, errtrace.Wrap(newCapacityError(len(src), len(s.buf)))
	}
	s.n = copy(s.buf, src)
	return old, nil
}

func (s *FixedStorage) Cap() int { return len(s.buf) }

// Clone returns an independent storage with the same capacity and contents.
func (s *FixedStorage) Clone() Storage {
	s2 := &FixedStorage{buf: make([]byte, len(s.buf)), n: s.n}
	copy(s2.buf, s.buf[:s.n])
	return s2
}

func newCapacityError(n, capacity int) error {
	return errorutil.NewWrapperError(ErrStorageExceed, "%d bytes, capacity %d", n, capacity) //errtrace:skip
}
