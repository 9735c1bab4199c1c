package resolve

import (
	"context"
	"errors"
	"log/slog"
	"reflect"

	"github.com/jvmdesc/jvmdesc"
)

// DefaultMaxParameterSlots mirrors the JVM's method arity limit. long and
// double parameters occupy two slots each.
const DefaultMaxParameterSlots = 255

// Resolver maps method type descriptors to Go function types. The zero value
// is ready to use.
//
// Resolution is the only potentially blocking operation on a descriptor: the
// Lookup may load types, acquire its own locks, and reenter itself. A
// descriptor itself places no ceiling on arity; the resolver does.
type Resolver struct {
	// MaxParameterSlots caps the descriptor arity this resolver accepts,
	// counted in JVM slots. Zero means DefaultMaxParameterSlots.
	MaxParameterSlots int

	// Logger receives resolution diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Resolve maps d to a Go function type by resolving each parameter type and
// the return type through lookup, in parameter order. A void return type
// maps to a function with no results. Failures are CodeResolution errors,
// distinct from the construction-time error kinds, so callers can tell a
// malformed descriptor apart from an environment that cannot satisfy it.
func (rv *Resolver) Resolve(ctx context.Context, d jvmdesc.MethodTypeDesc, lookup Lookup) (reflect.Type, error) {
	if lookup == nil {
		return nil, jvmdesc.NewError(jvmdesc.CodeInvalidArgument, "lookup is required")
	}
	if d.IsZero() {
		return nil, jvmdesc.NewError(jvmdesc.CodeInvalidArgument, "method type descriptor is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := rv.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := rv.MaxParameterSlots
	if limit <= 0 {
		limit = DefaultMaxParameterSlots
	}
	if slots := parameterSlots(d); slots > limit {
		return nil, jvmdesc.Errorf(jvmdesc.CodeResolution,
			"method type requires %d parameter slots, limit is %d", slots, limit)
	}

	in := make([]reflect.Type, 0, d.ParameterCount())
	for i, p := range d.Parameters() {
		t, err := lookup.ResolveFieldType(p)
		if err != nil {
			logger.Error("parameter type resolution failed",
				slog.String("descriptor", d.DescriptorString()),
				slog.Int("parameter", i),
				slog.Any("error", err))
			return nil, resolutionErr(p, err)
		}
		in = append(in, t)
	}

	var out []reflect.Type
	if ret := d.ReturnType(); !ret.IsVoid() {
		t, err := lookup.ResolveFieldType(ret)
		if err != nil {
			logger.Error("return type resolution failed",
				slog.String("descriptor", d.DescriptorString()),
				slog.Any("error", err))
			return nil, resolutionErr(ret, err)
		}
		out = []reflect.Type{t}
	}

	logger.Debug("resolved method type",
		slog.String("descriptor", d.DescriptorString()),
		slog.Int("parameters", d.ParameterCount()))
	return reflect.FuncOf(in, out, false), nil
}

// Resolve maps d to a Go function type using a resolver with default limits.
func Resolve(ctx context.Context, d jvmdesc.MethodTypeDesc, lookup Lookup) (reflect.Type, error) {
	var rv Resolver
	return rv.Resolve(ctx, d, lookup)
}

// parameterSlots counts d's parameters in JVM slots: long and double take
// two, everything else takes one.
func parameterSlots(d jvmdesc.MethodTypeDesc) int {
	slots := 0
	for p := range d.ParameterSeq() {
		if p == jvmdesc.Long() || p == jvmdesc.Double() {
			slots += 2
		} else {
			slots++
		}
	}
	return slots
}

// resolutionErr ensures every lookup failure surfaces as a CodeResolution
// error without double-wrapping ones that already are.
func resolutionErr(fd jvmdesc.FieldDesc, err error) error {
	var de *jvmdesc.Error
	if errors.As(err, &de) && de.Code == jvmdesc.CodeResolution {
		return err
	}
	return jvmdesc.Errorf(jvmdesc.CodeResolution, "resolving %s: %v", fd, err)
}
