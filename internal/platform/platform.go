package platform

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Platform is the capability the core sequencer calls through.
// Implementations must not fail and must not block beyond a single write.
type Platform interface {
	Init()
	Shutdown()
	Print(msg string)
}

// Backend names accepted by New.
const (
	BackendStub = "stub"
	BackendUnix = "unix"
)

// ErrUnknownBackend is returned by New when the backend name is not registered.
var ErrUnknownBackend = errors.New("unknown platform backend")

// factories maps backend names to constructors. The writer is ignored by
// backends that produce no output.
var factories = map[string]func(w io.Writer) Platform{
	BackendStub: func(io.Writer) Platform { return Stub{} },
	BackendUnix: func(w io.Writer) Platform { return NewConsole(w) },
}

// New returns the backend registered under name.
// For the unix backend a nil writer means standard output.
func New(name string, w io.Writer) (Platform, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownBackend, name, Backends())
	}
	return factory(w), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsValidBackend reports whether name is a registered backend.
func IsValidBackend(name string) bool {
	_, ok := factories[name]
	return ok
}
