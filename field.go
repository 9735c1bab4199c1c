package jvmdesc

import "strings"

// maxArrayDims is the JVM limit on array dimensions for a single type.
const maxArrayDims = 255

// FieldDesc is a nominal descriptor for a single JVM field type: a primitive,
// a class or interface reference, or an array of either. It may also denote
// void, which is legal only as a method return type.
//
// FieldDesc is a comparable value: two descriptors compare equal with ==
// exactly when they denote the same type. The zero value denotes no type at
// all; obtain descriptors from the constructors or from [FieldOf].
type FieldDesc struct {
	desc string
}

// Primitive and void descriptors.

// Void returns the descriptor for void.
func Void() FieldDesc { return FieldDesc{"V"} }

// Boolean returns the descriptor for the primitive type boolean.
func Boolean() FieldDesc { return FieldDesc{"Z"} }

// Byte returns the descriptor for the primitive type byte.
func Byte() FieldDesc { return FieldDesc{"B"} }

// Char returns the descriptor for the primitive type char.
func Char() FieldDesc { return FieldDesc{"C"} }

// Short returns the descriptor for the primitive type short.
func Short() FieldDesc { return FieldDesc{"S"} }

// Int returns the descriptor for the primitive type int.
func Int() FieldDesc { return FieldDesc{"I"} }

// Long returns the descriptor for the primitive type long.
func Long() FieldDesc { return FieldDesc{"J"} }

// Float returns the descriptor for the primitive type float.
func Float() FieldDesc { return FieldDesc{"F"} }

// Double returns the descriptor for the primitive type double.
func Double() FieldDesc { return FieldDesc{"D"} }

// ClassOf returns the descriptor for a class or interface named by its JVM
// binary name, e.g. "java/lang/String".
func ClassOf(binaryName string) (FieldDesc, error) {
	if !validBinaryName(binaryName) {
		return FieldDesc{}, Errorf(CodeInvalidArgument, "invalid binary class name %q", binaryName)
	}
	return FieldDesc{"L" + binaryName + ";"}, nil
}

// ArrayOf returns the descriptor for a one-dimensional array of component.
func ArrayOf(component FieldDesc) (FieldDesc, error) {
	return ArrayOfDims(component, 1)
}

// ArrayOfDims returns the descriptor for a dims-dimensional array of
// component. The component may itself be an array; the total dimension
// count must not exceed 255.
func ArrayOfDims(component FieldDesc, dims int) (FieldDesc, error) {
	if component.IsZero() {
		return FieldDesc{}, NewError(CodeInvalidArgument, "array component type is required")
	}
	if component.IsVoid() {
		return FieldDesc{}, NewError(CodeInvalidArgument, "array component type must not be void")
	}
	if dims < 1 {
		return FieldDesc{}, Errorf(CodeInvalidArgument, "array dimensions must be positive, got %d", dims)
	}
	if component.arrayDims()+dims > maxArrayDims {
		return FieldDesc{}, Errorf(CodeInvalidArgument, "array type exceeds %d dimensions", maxArrayDims)
	}
	return FieldDesc{strings.Repeat("[", dims) + component.desc}, nil
}

// FieldOf parses a complete field descriptor string, e.g. "I",
// "Ljava/lang/String;", or "[[D". "V" parses to the void descriptor.
func FieldOf(descriptor string) (FieldDesc, error) {
	end, err := scanFieldDesc(descriptor, 0)
	if err != nil {
		return FieldDesc{}, err
	}
	if end != len(descriptor) {
		return FieldDesc{}, syntaxErr(descriptor, end, "trailing characters after field descriptor")
	}
	return FieldDesc{descriptor}, nil
}

// IsZero reports whether the descriptor denotes no type at all.
func (fd FieldDesc) IsZero() bool { return fd.desc == "" }

// IsVoid reports whether the descriptor denotes void.
func (fd FieldDesc) IsVoid() bool { return fd.desc == "V" }

// IsArray reports whether the descriptor denotes an array type.
func (fd FieldDesc) IsArray() bool {
	return len(fd.desc) > 0 && fd.desc[0] == '['
}

// IsPrimitive reports whether the descriptor denotes a primitive type or void.
func (fd FieldDesc) IsPrimitive() bool { return len(fd.desc) == 1 }

// IsClassOrInterface reports whether the descriptor denotes a (non-array)
// class or interface reference.
func (fd FieldDesc) IsClassOrInterface() bool {
	return len(fd.desc) > 0 && fd.desc[0] == 'L'
}

// BinaryName returns the binary class name of a class or interface
// descriptor, e.g. "java/lang/String". ok is false for every other kind.
func (fd FieldDesc) BinaryName() (name string, ok bool) {
	if !fd.IsClassOrInterface() {
		return "", false
	}
	return fd.desc[1 : len(fd.desc)-1], true
}

// ComponentType returns the component type of an array descriptor.
func (fd FieldDesc) ComponentType() (FieldDesc, error) {
	if !fd.IsArray() {
		return FieldDesc{}, Errorf(CodeInvalidArgument, "%s is not an array type", fd.desc)
	}
	return FieldDesc{fd.desc[1:]}, nil
}

// DescriptorString returns the canonical wire form of the descriptor.
func (fd FieldDesc) DescriptorString() string { return fd.desc }

// String returns the canonical wire form of the descriptor.
func (fd FieldDesc) String() string { return fd.desc }

// displayNames maps primitive descriptor characters to source-level names.
var displayNames = map[byte]string{
	'V': "void",
	'Z': "boolean",
	'B': "byte",
	'C': "char",
	'S': "short",
	'I': "int",
	'J': "long",
	'F': "float",
	'D': "double",
}

// DisplayName returns a human-readable rendering of the descriptor: the
// canonical name for primitives and void, the simple class name for class
// references, and "[]" suffixes for arrays. For example "[Ljava/util/List;"
// renders as "List[]".
func (fd FieldDesc) DisplayName() string {
	if fd.IsZero() {
		return ""
	}
	dims := fd.arrayDims()
	base := fd.desc[dims:]
	var name string
	if base[0] == 'L' {
		binary := base[1 : len(base)-1]
		name = binary[strings.LastIndexByte(binary, '/')+1:]
	} else {
		name = displayNames[base[0]]
	}
	return name + strings.Repeat("[]", dims)
}

func (fd FieldDesc) arrayDims() int {
	for i := 0; i < len(fd.desc); i++ {
		if fd.desc[i] != '[' {
			return i
		}
	}
	return len(fd.desc)
}

// validBinaryName accepts slash-separated names with non-empty segments that
// avoid the characters the JVM forbids in class names.
func validBinaryName(name string) bool {
	if name == "" {
		return false
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == "" {
			return false
		}
		if strings.ContainsAny(segment, ".;[") {
			return false
		}
	}
	return true
}
