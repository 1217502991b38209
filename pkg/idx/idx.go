package idx

import (
	"crypto/rand"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID tagged with the entity it identifies. The type parameter is
// never stored, it only stops an ID[User] being passed where an ID[Todo] is
// expected.
type ID[T any] string

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	globalOnce sync.Once
	global     *generator
)

// generator is a tool to safely generate ULIDs concurrently using a monotonic
// source.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

func initGlobal() {
	src := ulid.Monotonic(rand.Reader, 0) // Max Monotonic Window
	global = &generator{entropy: src}
}

// NewString returns a fresh ULID string without an entity tag. Used for
// request and token identifiers.
func NewString() string {
	globalOnce.Do(initGlobal)
	return global.newAt(time.Now().UTC())
}

// New returns a new lexicographically sortable ID using the current time in
// UTC and a monotonic entropy source.
func New[T any]() ID[T] {
	return ID[T](NewString())
}

// Parse parses a ULID string into an ID and validates its form. Lowercase
// input is accepted and normalised.
func Parse[T any](s string) (ID[T], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}

	u, err := ulid.ParseStrict(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	return ID[T](u.String()), nil
}

// IsZero reports whether id is the zero value.
func (id ID[T]) IsZero() bool { return id == "" }

// String returns the canonical string form.
func (id ID[T]) String() string { return string(id) }

// MarshalText implements encoding.TextMarshaler.
func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects malformed
// ULIDs, so JSON decoding validates ids for free.
func (id *ID[T]) UnmarshalText(b []byte) error {
	parsed, err := Parse[T](string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer.
func (id ID[T]) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return string(id), nil
}

// Scan implements sql.Scanner. Stored values that are not valid ULIDs fail
// the scan rather than leaking into the domain.
func (id *ID[T]) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*id = ""
		return nil
	default:
		return fmt.Errorf("idx: cannot scan %T into ID", src)
	}

	parsed, err := Parse[T](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
