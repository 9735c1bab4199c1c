package jvmdesc

import (
	"testing"
)

// mustParse and mustClass keep the transformer tests focused on the behavior
// under test.
func mustParse(t *testing.T, descriptor string) MethodTypeDesc {
	t.Helper()
	d, err := OfDescriptor(descriptor)
	if err != nil {
		t.Fatalf("OfDescriptor(%q) error: %v", descriptor, err)
	}
	return d
}

func mustClass(t *testing.T, binaryName string) FieldDesc {
	t.Helper()
	fd, err := ClassOf(binaryName)
	if err != nil {
		t.Fatalf("ClassOf(%q) error: %v", binaryName, err)
	}
	return fd
}

func TestOf(t *testing.T) {
	d, err := Of(Int())
	if err != nil {
		t.Fatalf("Of error: %v", err)
	}
	if got, want := d.DescriptorString(), "()I"; got != want {
		t.Errorf("DescriptorString() = %q, want %q", got, want)
	}

	params := []FieldDesc{Int(), Long(), Double()}
	d, err = Of(Void(), params...)
	if err != nil {
		t.Fatalf("Of error: %v", err)
	}
	if got, want := d.ParameterCount(), 3; got != want {
		t.Fatalf("ParameterCount() = %d, want %d", got, want)
	}
	for i, want := range params {
		got, err := d.ParameterType(i)
		if err != nil {
			t.Fatalf("ParameterType(%d) error: %v", i, err)
		}
		if got != want {
			t.Errorf("ParameterType(%d) = %v, want %v", i, got, want)
		}
	}

	// Mutating the caller's slice must not affect the value.
	params[0] = Float()
	p0, err := d.ParameterType(0)
	if err != nil {
		t.Fatalf("ParameterType(0) error: %v", err)
	}
	if p0 != Int() {
		t.Errorf("ParameterType(0) = %v after caller mutation, want %v", p0, Int())
	}
}

func TestOf_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		ret    FieldDesc
		params []FieldDesc
	}{
		{"zero return type", FieldDesc{}, nil},
		{"void parameter", Void(), []FieldDesc{Void()}},
		{"void among parameters", Int(), []FieldDesc{Int(), Void(), Long()}},
		{"zero parameter", Int(), []FieldDesc{Int(), {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Of(tt.ret, tt.params...); CodeOf(err) != CodeInvalidArgument {
				t.Errorf("Of() error = %v, want invalid_argument", err)
			}
		})
	}
}

func TestParameterType_Bounds(t *testing.T) {
	d := mustParse(t, "(IJ)V")
	for _, index := range []int{-1, 2, 100} {
		if _, err := d.ParameterType(index); CodeOf(err) != CodeOutOfBounds {
			t.Errorf("ParameterType(%d) error = %v, want out_of_bounds", index, err)
		}
	}
}

func TestParameters_Copy(t *testing.T) {
	d := mustParse(t, "(IJ)V")
	params := d.Parameters()
	params[0] = Double()
	p0, err := d.ParameterType(0)
	if err != nil {
		t.Fatalf("ParameterType(0) error: %v", err)
	}
	if p0 != Int() {
		t.Errorf("ParameterType(0) = %v after mutating Parameters(), want %v", p0, Int())
	}
}

func TestParameterSeq(t *testing.T) {
	d := mustParse(t, "(IJD)V")
	want := []FieldDesc{Int(), Long(), Double()}
	i := 0
	for p := range d.ParameterSeq() {
		if p != want[i] {
			t.Errorf("element %d = %v, want %v", i, p, want[i])
		}
		i++
	}
	if i != len(want) {
		t.Errorf("iterated %d elements, want %d", i, len(want))
	}
}

func TestChangeReturnType(t *testing.T) {
	d := mustParse(t, "(IJ)V")
	changed, err := d.ChangeReturnType(Long())
	if err != nil {
		t.Fatalf("ChangeReturnType error: %v", err)
	}
	if got, want := changed.DescriptorString(), "(IJ)J"; got != want {
		t.Errorf("DescriptorString() = %q, want %q", got, want)
	}
	if got, want := d.DescriptorString(), "(IJ)V"; got != want {
		t.Errorf("receiver changed: %q, want %q", got, want)
	}

	// void is a legal return type.
	back, err := changed.ChangeReturnType(Void())
	if err != nil {
		t.Fatalf("ChangeReturnType(Void()) error: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("ChangeReturnType(Void()) = %v, want %v", back, d)
	}

	if _, err := d.ChangeReturnType(FieldDesc{}); CodeOf(err) != CodeInvalidArgument {
		t.Errorf("ChangeReturnType(zero) error = %v, want invalid_argument", err)
	}
}

func TestChangeParameterType(t *testing.T) {
	d := mustParse(t, "(Ljava/lang/String;)V")
	changed, err := d.ChangeParameterType(0, Int())
	if err != nil {
		t.Fatalf("ChangeParameterType error: %v", err)
	}
	if got, want := changed.DescriptorString(), "(I)V"; got != want {
		t.Errorf("DescriptorString() = %q, want %q", got, want)
	}
	if got, want := d.DescriptorString(), "(Ljava/lang/String;)V"; got != want {
		t.Errorf("receiver changed: %q, want %q", got, want)
	}

	if _, err := d.ChangeParameterType(1, Int()); CodeOf(err) != CodeOutOfBounds {
		t.Errorf("index 1 error = %v, want out_of_bounds", err)
	}
	if _, err := d.ChangeParameterType(-1, Int()); CodeOf(err) != CodeOutOfBounds {
		t.Errorf("index -1 error = %v, want out_of_bounds", err)
	}
	if _, err := d.ChangeParameterType(0, Void()); CodeOf(err) != CodeInvalidArgument {
		t.Errorf("void parameter error = %v, want invalid_argument", err)
	}
}

func TestDropParameterTypes(t *testing.T) {
	tests := []struct {
		descriptor string
		start, end int
		want       string
	}{
		{"(IJ)V", 0, 1, "(J)V"},
		{"(IJ)V", 1, 2, "(I)V"},
		{"(IJ)V", 0, 2, "()V"},
		{"(IJD)V", 1, 1, "(IJD)V"}, // empty range is a no-op copy
		{"(IJD)V", 0, 2, "(D)V"},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			d := mustParse(t, tt.descriptor)
			dropped, err := d.DropParameterTypes(tt.start, tt.end)
			if err != nil {
				t.Fatalf("DropParameterTypes(%d, %d) error: %v", tt.start, tt.end, err)
			}
			if got := dropped.DescriptorString(); got != tt.want {
				t.Errorf("DescriptorString() = %q, want %q", got, tt.want)
			}
			if got := d.DescriptorString(); got != tt.descriptor {
				t.Errorf("receiver changed: %q, want %q", got, tt.descriptor)
			}
		})
	}
}

func TestDropParameterTypes_Bounds(t *testing.T) {
	d := mustParse(t, "(IJ)V")
	tests := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 1},
		{"start at count", 2, 2},
		{"end past count", 0, 3},
		{"start after end", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.DropParameterTypes(tt.start, tt.end); CodeOf(err) != CodeOutOfBounds {
				t.Errorf("DropParameterTypes(%d, %d) error = %v, want out_of_bounds", tt.start, tt.end, err)
			}
		})
	}
}

func TestInsertParameterTypes(t *testing.T) {
	d := mustParse(t, "(IJ)V")

	inserted, err := d.InsertParameterTypes(1, Double())
	if err != nil {
		t.Fatalf("InsertParameterTypes error: %v", err)
	}
	if got, want := inserted.DescriptorString(), "(IDJ)V"; got != want {
		t.Errorf("DescriptorString() = %q, want %q", got, want)
	}
	if got, want := d.DescriptorString(), "(IJ)V"; got != want {
		t.Errorf("receiver changed: %q, want %q", got, want)
	}

	// Insertion at both ends of the closed range [0, count].
	front, err := d.InsertParameterTypes(0, Float())
	if err != nil {
		t.Fatalf("InsertParameterTypes(0) error: %v", err)
	}
	if got, want := front.DescriptorString(), "(FIJ)V"; got != want {
		t.Errorf("DescriptorString() = %q, want %q", got, want)
	}
	back, err := d.InsertParameterTypes(2, Float())
	if err != nil {
		t.Fatalf("InsertParameterTypes(2) error: %v", err)
	}
	if got, want := back.DescriptorString(), "(IJF)V"; got != want {
		t.Errorf("DescriptorString() = %q, want %q", got, want)
	}

	// Zero new types is a no-op copy.
	same, err := d.InsertParameterTypes(1)
	if err != nil {
		t.Fatalf("InsertParameterTypes(1) error: %v", err)
	}
	if !same.Equal(d) {
		t.Errorf("no-op insert = %v, want %v", same, d)
	}

	if _, err := d.InsertParameterTypes(3, Int()); CodeOf(err) != CodeOutOfBounds {
		t.Errorf("position 3 error = %v, want out_of_bounds", err)
	}
	if _, err := d.InsertParameterTypes(-1, Int()); CodeOf(err) != CodeOutOfBounds {
		t.Errorf("position -1 error = %v, want out_of_bounds", err)
	}
	if _, err := d.InsertParameterTypes(1, Void()); CodeOf(err) != CodeInvalidArgument {
		t.Errorf("void parameter error = %v, want invalid_argument", err)
	}
}

// Inserting a run of types and then dropping the same range reproduces the
// original value.
func TestInsertThenDrop(t *testing.T) {
	d := mustParse(t, "(IJ)Ljava/util/List;")
	extras := []FieldDesc{Double(), mustClass(t, "java/lang/String"), Float()}

	inserted, err := d.InsertParameterTypes(1, extras...)
	if err != nil {
		t.Fatalf("InsertParameterTypes error: %v", err)
	}
	if got, want := inserted.ParameterCount(), d.ParameterCount()+len(extras); got != want {
		t.Fatalf("ParameterCount() = %d, want %d", got, want)
	}

	dropped, err := inserted.DropParameterTypes(1, 1+len(extras))
	if err != nil {
		t.Fatalf("DropParameterTypes error: %v", err)
	}
	if !dropped.Equal(d) {
		t.Errorf("insert-then-drop = %v, want %v", dropped, d)
	}
}

func TestDisplayDescriptor(t *testing.T) {
	tests := []struct {
		descriptor string
		want       string
	}{
		{"(Ljava/lang/String;I)V", "(String,int)void"},
		{"(IJ)V", "(int,long)void"},
		{"()I", "()int"},
		{"([Ljava/lang/String;)Ljava/util/List;", "(String[])List"},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			d := mustParse(t, tt.descriptor)
			if got := d.DisplayDescriptor(); got != tt.want {
				t.Errorf("DisplayDescriptor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	parsed := mustParse(t, "(Ljava/lang/String;I)V")
	built, err := Of(Void(), mustClass(t, "java/lang/String"), Int())
	if err != nil {
		t.Fatalf("Of error: %v", err)
	}
	if !parsed.Equal(built) {
		t.Errorf("parsed %v and built %v not equal", parsed, built)
	}
	if !built.Equal(parsed) {
		t.Error("Equal is not symmetric")
	}

	tests := []struct {
		name  string
		other string
	}{
		{"different return type", "(Ljava/lang/String;I)I"},
		{"different parameter", "(Ljava/lang/String;J)V"},
		{"different arity", "(Ljava/lang/String;)V"},
		{"different order", "(ILjava/lang/String;)V"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if parsed.Equal(mustParse(t, tt.other)) {
				t.Errorf("%q compares equal to %q", parsed, tt.other)
			}
		})
	}
}

func TestMethodTypeDesc_String(t *testing.T) {
	d := mustParse(t, "(IJ)V")
	if got, want := d.String(), "(IJ)V"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
