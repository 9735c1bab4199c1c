package jvmdesc

import (
	"iter"
	"slices"
	"strings"
)

// MethodTypeDesc is a nominal descriptor for a method type: a return type and
// an ordered sequence of parameter types, none of which may be void. It is
// immutable; every transformer validates its inputs and returns a new value,
// leaving the receiver untouched. Values are safe to share across goroutines.
//
// The zero value denotes no method type; obtain descriptors from [Of] or
// [OfDescriptor].
type MethodTypeDesc struct {
	ret FieldDesc
	// params is never mutated after construction, so values produced by
	// transformers may share it.
	params []FieldDesc
}

// Of returns a descriptor with the given return type and parameter types.
// The return type may be void; parameters may not. The variadic slice is
// cloned, so later caller-side mutation cannot affect the value.
func Of(ret FieldDesc, params ...FieldDesc) (MethodTypeDesc, error) {
	if ret.IsZero() {
		return MethodTypeDesc{}, NewError(CodeInvalidArgument, "return type is required")
	}
	if err := checkParams(params); err != nil {
		return MethodTypeDesc{}, err
	}
	return MethodTypeDesc{ret: ret, params: slices.Clone(params)}, nil
}

func checkParams(params []FieldDesc) error {
	for i, p := range params {
		if p.IsZero() {
			return Errorf(CodeInvalidArgument, "parameter %d: type is required", i)
		}
		if p.IsVoid() {
			return Errorf(CodeInvalidArgument, "parameter %d: void is not a valid parameter type", i)
		}
	}
	return nil
}

// IsZero reports whether the descriptor denotes no method type.
func (d MethodTypeDesc) IsZero() bool { return d.ret.IsZero() }

// ReturnType returns the return type of the described method type.
func (d MethodTypeDesc) ReturnType() FieldDesc { return d.ret }

// ParameterCount returns the number of parameters.
func (d MethodTypeDesc) ParameterCount() int { return len(d.params) }

// ParameterType returns the type of the index'th parameter. The index must
// lie in the half-open range [0, ParameterCount()).
func (d MethodTypeDesc) ParameterType(index int) (FieldDesc, error) {
	if index < 0 || index >= len(d.params) {
		return FieldDesc{}, Errorf(CodeOutOfBounds,
			"parameter index %d out of range [0, %d)", index, len(d.params))
	}
	return d.params[index], nil
}

// Parameters returns the parameter types as a fresh slice. Mutating it does
// not affect the descriptor.
func (d MethodTypeDesc) Parameters() []FieldDesc {
	return slices.Clone(d.params)
}

// ParameterSeq returns a read-only view of the parameter types in order.
func (d MethodTypeDesc) ParameterSeq() iter.Seq[FieldDesc] {
	return slices.Values(d.params)
}

// ChangeReturnType returns a descriptor identical to this one except for the
// return type, which may be void.
func (d MethodTypeDesc) ChangeReturnType(ret FieldDesc) (MethodTypeDesc, error) {
	if ret.IsZero() {
		return MethodTypeDesc{}, NewError(CodeInvalidArgument, "return type is required")
	}
	return MethodTypeDesc{ret: ret, params: d.params}, nil
}

// ChangeParameterType returns a descriptor identical to this one except that
// the parameter at index is replaced by param, which must not be void.
func (d MethodTypeDesc) ChangeParameterType(index int, param FieldDesc) (MethodTypeDesc, error) {
	if index < 0 || index >= len(d.params) {
		return MethodTypeDesc{}, Errorf(CodeOutOfBounds,
			"parameter index %d out of range [0, %d)", index, len(d.params))
	}
	if param.IsZero() {
		return MethodTypeDesc{}, NewError(CodeInvalidArgument, "parameter type is required")
	}
	if param.IsVoid() {
		return MethodTypeDesc{}, NewError(CodeInvalidArgument, "void is not a valid parameter type")
	}
	params := slices.Clone(d.params)
	params[index] = param
	return MethodTypeDesc{ret: d.ret, params: params}, nil
}

// DropParameterTypes returns a descriptor identical to this one except that
// the parameters in the half-open range [start, end) are removed. start must
// lie in [0, ParameterCount()) and end in [0, ParameterCount()]; start == end
// removes nothing. Out-of-range arguments are rejected, never clamped.
func (d MethodTypeDesc) DropParameterTypes(start, end int) (MethodTypeDesc, error) {
	n := len(d.params)
	if start < 0 || start >= n || end < start || end > n {
		return MethodTypeDesc{}, Errorf(CodeOutOfBounds,
			"drop range [%d, %d) out of range for %d parameters", start, end, n)
	}
	params := slices.Concat(d.params[:start], d.params[end:])
	return MethodTypeDesc{ret: d.ret, params: params}, nil
}

// InsertParameterTypes returns a descriptor identical to this one except that
// params are spliced in, in order, starting at pos; existing parameters at or
// after pos shift right. pos must lie in the closed range
// [0, ParameterCount()], and none of params may be void. Zero params is a
// no-op copy.
func (d MethodTypeDesc) InsertParameterTypes(pos int, params ...FieldDesc) (MethodTypeDesc, error) {
	n := len(d.params)
	if pos < 0 || pos > n {
		return MethodTypeDesc{}, Errorf(CodeOutOfBounds,
			"insert position %d out of range [0, %d]", pos, n)
	}
	if err := checkParams(params); err != nil {
		return MethodTypeDesc{}, err
	}
	merged := slices.Concat(d.params[:pos], params, d.params[pos:])
	return MethodTypeDesc{ret: d.ret, params: merged}, nil
}

// DescriptorString returns the canonical wire form, the exact inverse of
// [OfDescriptor]: "(" followed by each parameter descriptor in order, ")",
// then the return descriptor.
func (d MethodTypeDesc) DescriptorString() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range d.params {
		b.WriteString(p.DescriptorString())
	}
	b.WriteByte(')')
	b.WriteString(d.ret.DescriptorString())
	return b.String()
}

// String returns the canonical wire form.
func (d MethodTypeDesc) String() string { return d.DescriptorString() }

// DisplayDescriptor returns a human-readable rendering using display names,
// e.g. "(String,int)void". It is built purely on the public accessors.
func (d MethodTypeDesc) DisplayDescriptor() string {
	names := make([]string, 0, d.ParameterCount())
	for p := range d.ParameterSeq() {
		names = append(names, p.DisplayName())
	}
	return "(" + strings.Join(names, ",") + ")" + d.ReturnType().DisplayName()
}

// Equal reports structural equality: same arity, pairwise-equal parameter
// types, and equal return types, regardless of how either value was built.
func (d MethodTypeDesc) Equal(other MethodTypeDesc) bool {
	return d.ret == other.ret && slices.Equal(d.params, other.params)
}
