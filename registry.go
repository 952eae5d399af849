package vortex

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownOperator is returned when a graph references an operator name
// absent from the registry.
var ErrUnknownOperator = errors.New("vortex: unknown operator")

var (
	registryMu sync.RWMutex
	registry   = map[string]Operator{}
)

// Register adds an operator to the catalog under op.Name(). Built-in
// operators register themselves at package init; external packages may
// register additional operators before building graphs.
//
// Register returns an error for a nil operator, an empty name, or a name
// already taken; re-registration is refused rather than silently
// replacing a catalog entry.
func Register(op Operator) error {
	if op == nil {
		return errors.New("vortex: operator must not be nil")
	}
	name := op.Name()
	if name == "" {
		return errors.New("vortex: operator name must not be empty")
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("vortex: operator %q already registered", name)
	}
	registry[name] = op

	Logger().Debug("operator registered", "name", name, "category", op.Category().String())
	return nil
}

// mustRegister is used by built-in operators; a clash among built-ins is
// a programming error.
func mustRegister(op Operator) {
	if err := Register(op); err != nil {
		panic(err)
	}
}

// Lookup returns the operator registered under name.
func Lookup(name string) (Operator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	op, ok := registry[name]
	return op, ok
}

// Names returns the registered operator names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
