package jvmdesc

import "strings"

// OfDescriptor parses a method descriptor string such as "(IJ)V" per the
// JVMS 4.3.3 grammar. The whole string must be consumed; any deviation is a
// CodeSyntax error identifying the offending content and offset.
func OfDescriptor(descriptor string) (MethodTypeDesc, error) {
	ret, params, err := parseMethodDesc(descriptor)
	if err != nil {
		return MethodTypeDesc{}, err
	}
	return MethodTypeDesc{ret: ret, params: params}, nil
}

func parseMethodDesc(s string) (FieldDesc, []FieldDesc, error) {
	if len(s) == 0 || s[0] != '(' {
		return FieldDesc{}, nil, syntaxErr(s, 0, "method descriptor must start with '('")
	}
	i := 1
	var params []FieldDesc
	for {
		if i >= len(s) {
			return FieldDesc{}, nil, syntaxErr(s, i, "unterminated parameter list")
		}
		if s[i] == ')' {
			i++
			break
		}
		end, err := scanFieldDesc(s, i)
		if err != nil {
			return FieldDesc{}, nil, err
		}
		p := FieldDesc{s[i:end]}
		if p.IsVoid() {
			return FieldDesc{}, nil, syntaxErr(s, i, "void is not a valid parameter type")
		}
		params = append(params, p)
		i = end
	}
	if i >= len(s) {
		return FieldDesc{}, nil, syntaxErr(s, i, "missing return descriptor")
	}
	end, err := scanFieldDesc(s, i)
	if err != nil {
		return FieldDesc{}, nil, err
	}
	if end != len(s) {
		return FieldDesc{}, nil, syntaxErr(s, end, "trailing characters after return descriptor")
	}
	return FieldDesc{s[i:end]}, params, nil
}

// scanFieldDesc consumes one field descriptor (or the void descriptor "V")
// starting at start and returns the offset just past it. Field descriptors
// are self-delimiting, so no separator handling is needed.
func scanFieldDesc(s string, start int) (int, error) {
	i := start
	for i < len(s) && s[i] == '[' {
		i++
	}
	if i-start > maxArrayDims {
		return 0, syntaxErr(s, start, "array type exceeds %d dimensions", maxArrayDims)
	}
	if i >= len(s) {
		return 0, syntaxErr(s, i, "truncated field descriptor")
	}
	switch c := s[i]; c {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return i + 1, nil
	case 'V':
		if i > start {
			return 0, syntaxErr(s, start, "array component type must not be void")
		}
		return i + 1, nil
	case 'L':
		rest := s[i+1:]
		semi := strings.IndexByte(rest, ';')
		if semi < 0 {
			return 0, syntaxErr(s, i, "unterminated class descriptor")
		}
		if name := rest[:semi]; !validBinaryName(name) {
			return 0, syntaxErr(s, i, "invalid binary class name %q", name)
		}
		return i + 1 + semi + 1, nil
	default:
		return 0, syntaxErr(s, i, "invalid field descriptor character %q", string(c))
	}
}

func syntaxErr(input string, offset int, format string, args ...any) *Error {
	return Errorf(CodeSyntax, format, args...).
		WithDetail("input", input).
		WithDetail("offset", offset)
}
