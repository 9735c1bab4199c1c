// Package jvmdesc implements nominal descriptors for JVM method types.
// A descriptor is a purely symbolic representation of a method's return type
// and ordered parameter types: it can be parsed, transformed, formatted, and
// compared without loading or even knowing about the types it names.
//
// The two value types are [FieldDesc], describing a single field type
// (primitive, class or interface reference, or array), and [MethodTypeDesc],
// describing a full method type. Both are immutable after construction and
// safe to share across goroutines. Every transformation returns a new value.
//
// Turning a descriptor into a live Go type is deliberately separated into the
// resolve subpackage, which is the only place class lookup can happen.
package jvmdesc
