// Package imt models interface-method-table (IMT) conflict benchmark suites.
//
// An IMT resolves calls to interface-declared methods on a concrete type by
// hashing each method's global index modulo the table size. When a class
// implements several interfaces, their methods collide in the same table
// slots and resolution falls back to a linear search. The "conflict depth"
// of a class is the number of interfaces competing for a slot; a depth of 1
// means no conflict at all.
//
// Build constructs a suite of MaxConflictDepth interfaces, classes,
// dispatch helpers, and benchmark descriptors for a given IMT size:
//
//	suite, err := imt.Build(64)
//
// Class Ck implements interfaces I0..Ik, so it has conflict depth k+1. The
// suite is a pure description; the render package turns it into source code.
package imt

import "fmt"

// MaxConflictDepth is the number of interface/class/benchmark variants in a
// suite. In practice conflict depth does not go above 20 for reasonable IMT
// sizes.
const MaxConflictDepth = 20

// Method is one trivial no-op method. Its index is globally unique across
// all interfaces in the suite.
type Method struct {
	Index int
}

// Name returns the method name, f{Index}.
func (m Method) Name() string {
	return fmt.Sprintf("f%d", m.Index)
}

// Interface is one generated interface holding enough methods to fill an
// entire IMT. Interface i owns the method index range
// [i*IMTSize, (i+1)*IMTSize).
type Interface struct {
	Index   int
	Methods []Method
}

// Name returns the interface name, I{Index}.
func (i Interface) Name() string {
	return fmt.Sprintf("I%d", i.Index)
}

// Class is one generated class. Class i implements interfaces 0..i
// inclusive and inherits every method body, so its conflict depth is i+1.
type Class struct {
	Index      int
	Implements []int
}

// Name returns the class name, C{Index}.
func (c Class) Name() string {
	return fmt.Sprintf("C%d", c.Index)
}

// Depth returns the class's conflict depth, the number of interfaces it
// implements.
func (c Class) Depth() int {
	return len(c.Implements)
}

// Helper is one dispatch helper. It takes a value typed as interface
// {Interface} and invokes that interface's representative method f{Method}
// through it, forcing an IMT lookup rather than a direct call.
type Helper struct {
	Interface int
	Method    int
}

// Name returns the helper name, callF{Method}.
func (h Helper) Name() string {
	return fmt.Sprintf("callF%d", h.Method)
}

// Benchmark describes one timed method. The method constructs an instance
// of class {Class} and, per timed iteration, performs one dispatch call per
// entry in Calls. Call j goes through the helper for method index
// IMTSize*(j mod Depth), cycling through every implemented interface so the
// measurement covers the full distribution of conflict-resolution outcomes.
type Benchmark struct {
	Class int
	Depth int
	Calls []int
}

// Name returns the benchmark's base name, ConflictDepth{NN}. Renderers add
// their harness prefix (e.g. "time" for Java, "Benchmark" for Go).
func (b Benchmark) Name() string {
	return fmt.Sprintf("ConflictDepth%02d", b.Depth)
}

// Suite is the complete in-memory description of one generated benchmark
// file. All slices have length MaxConflictDepth and are index-aligned:
// element i describes interface i, class i, helper i, and the depth-(i+1)
// benchmark.
type Suite struct {
	IMTSize    int
	Depth      int
	Interfaces []Interface
	Classes    []Class
	Helpers    []Helper
	Benchmarks []Benchmark
}

// Build constructs the suite for the given IMT size. The size must be a
// positive integer; building is deterministic, so equal sizes yield equal
// suites.
func Build(imtSize int) (*Suite, error) {
	if imtSize < 1 {
		return nil, fmt.Errorf("IMT size must be a positive integer, got %d", imtSize)
	}

	s := &Suite{
		IMTSize: imtSize,
		Depth:   MaxConflictDepth,
	}

	for i := 0; i < MaxConflictDepth; i++ {
		iface := Interface{Index: i}
		for j := 0; j < imtSize; j++ {
			iface.Methods = append(iface.Methods, Method{Index: i*imtSize + j})
		}
		s.Interfaces = append(s.Interfaces, iface)

		class := Class{Index: i}
		for j := 0; j <= i; j++ {
			class.Implements = append(class.Implements, j)
		}
		s.Classes = append(s.Classes, class)

		s.Helpers = append(s.Helpers, Helper{
			Interface: i,
			Method:    imtSize * i,
		})

		bench := Benchmark{Class: i, Depth: i + 1}
		for j := 0; j < MaxConflictDepth; j++ {
			bench.Calls = append(bench.Calls, imtSize*(j%(i+1)))
		}
		s.Benchmarks = append(s.Benchmarks, bench)
	}

	return s, nil
}
