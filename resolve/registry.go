// Package resolve turns nominal descriptors into live Go types. It is the
// only part of the module that touches the runtime type system: everything
// in package jvmdesc stays purely symbolic, and the [Lookup] capability
// injected here decides what each class name actually loads to.
package resolve

import (
	"reflect"
	"sync"

	"github.com/jvmdesc/jvmdesc"
)

// Lookup resolves a single field descriptor to a live Go type. It is invoked
// once per parameter and once for a non-void return type. Implementations
// may trigger arbitrary loading, may block, and may be invoked reentrantly
// if resolving one type requires resolving another.
type Lookup interface {
	ResolveFieldType(fd jvmdesc.FieldDesc) (reflect.Type, error)
}

// primitiveTypes maps JVM primitive descriptors to their Go representations.
// char is an unsigned 16-bit code unit, hence uint16.
var primitiveTypes = map[string]reflect.Type{
	"Z": reflect.TypeOf(false),
	"B": reflect.TypeOf(int8(0)),
	"C": reflect.TypeOf(uint16(0)),
	"S": reflect.TypeOf(int16(0)),
	"I": reflect.TypeOf(int32(0)),
	"J": reflect.TypeOf(int64(0)),
	"F": reflect.TypeOf(float32(0)),
	"D": reflect.TypeOf(float64(0)),
}

// Registry is a Lookup backed by an explicit table of binary class names.
// Primitives are built in; arrays resolve to nested slices of their resolved
// component types. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]reflect.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]reflect.Type)}
}

// Register associates a binary class name, e.g. "java/lang/String", with a
// Go type. Re-registering the same pair is idempotent; registering a name
// to a different type is an invalid-argument error.
func (r *Registry) Register(binaryName string, t reflect.Type) error {
	if binaryName == "" {
		return jvmdesc.NewError(jvmdesc.CodeInvalidArgument, "binary class name is required")
	}
	if t == nil {
		return jvmdesc.Errorf(jvmdesc.CodeInvalidArgument, "type for %q is required", binaryName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[binaryName]; ok && existing != t {
		return jvmdesc.Errorf(jvmdesc.CodeInvalidArgument,
			"%q is already registered to %s", binaryName, existing)
	}
	r.byName[binaryName] = t
	return nil
}

// Lookup returns the type registered for a binary class name, if any.
func (r *Registry) Lookup(binaryName string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[binaryName]
	return t, ok
}

// Count returns the number of registered class names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// ResolveFieldType implements Lookup.
func (r *Registry) ResolveFieldType(fd jvmdesc.FieldDesc) (reflect.Type, error) {
	switch {
	case fd.IsZero():
		return nil, jvmdesc.NewError(jvmdesc.CodeInvalidArgument, "field descriptor is required")
	case fd.IsVoid():
		return nil, jvmdesc.NewError(jvmdesc.CodeResolution, "void has no runtime representation")
	case fd.IsArray():
		component, err := fd.ComponentType()
		if err != nil {
			return nil, err
		}
		elem, err := r.ResolveFieldType(component)
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case fd.IsPrimitive():
		return primitiveTypes[fd.DescriptorString()], nil
	default:
		name, _ := fd.BinaryName()
		t, ok := r.Lookup(name)
		if !ok {
			return nil, jvmdesc.Errorf(jvmdesc.CodeResolution, "class %q not found", name)
		}
		return t, nil
	}
}
