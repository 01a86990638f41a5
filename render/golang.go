package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sarchlab/imtgen/imt"
)

// Golang renders the suite as a Go benchmark file driven by `go test
// -bench`. Go has no default interface methods, so each generated class
// embeds its predecessor and adds only its own interface's method range;
// class Ci therefore still implements interfaces I0..Ii. Method bodies are
// marked //go:noinline so the compiler cannot devirtualize the calls being
// measured.
type Golang struct{}

// Language returns "go".
func (Golang) Language() string { return "go" }

// FileExtension returns "go".
func (Golang) FileExtension() string { return "go" }

// Render writes the complete benchmark file to w. Save it as a _test.go
// file, e.g. imtconflict_test.go.
func (Golang) Render(w io.Writer, s *imt.Suite) error {
	var b bytes.Buffer

	b.WriteString("// Code generated by imtgen. DO NOT EDIT.\n\n")
	writeGoDoc(&b, s)
	b.WriteString("package imtconflict\n\n")
	b.WriteString("import (\n\t\"sync\"\n\t\"testing\"\n)\n\n")

	writeGoWarmup(&b, s)

	for _, bench := range s.Benchmarks {
		writeGoBenchmark(&b, s, bench)
	}

	for _, h := range s.Helpers {
		iface := s.Interfaces[h.Interface]
		fmt.Fprintf(&b, "func %s(x %s) { x.f%d() }\n",
			h.Name(), iface.Name(), h.Method)
	}
	b.WriteString("\n")

	for _, c := range s.Classes {
		writeGoClass(&b, s, c)
	}

	for i, iface := range s.Interfaces {
		fmt.Fprintf(&b, "type %s interface {\n", iface.Name())
		for _, m := range iface.Methods {
			fmt.Fprintf(&b, "\t%s()\n", m.Name())
		}
		b.WriteString("}\n")
		if i < len(s.Interfaces)-1 {
			b.WriteString("\n")
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

func writeGoDoc(b *bytes.Buffer, s *imt.Suite) {
	b.WriteString("// Package imtconflict measures the performance impact of conflicts in\n")
	b.WriteString("// interface method dispatch.\n")
	b.WriteString("//\n")
	fmt.Fprintf(b, "// Each interface has %d methods. C0 implements one interface, C1\n", s.IMTSize)
	b.WriteString("// implements two, C2 implements three, and so on, so Ck exercises\n")
	b.WriteString("// depth-(k+1) conflict resolution. (A \"conflict depth\" of 1 means no\n")
	b.WriteString("// conflict at all.)\n")
	b.WriteString("//\n")
	b.WriteString("// Run with: go test -bench=ConflictDepth\n")
}

// writeGoWarmup emits a warmup function touching every (class, implemented
// interface) dispatch pair once, plus the sync.Once guarding it. Each
// benchmark runs it before timing so first-call resolution cost stays out
// of the measurement.
func writeGoWarmup(b *bytes.Buffer, s *imt.Suite) {
	b.WriteString("var warmupOnce sync.Once\n\n")
	b.WriteString("func warmup() {\n")
	for _, c := range s.Classes {
		fmt.Fprintf(b, "\tc%d := &%s{}\n", c.Index, c.Name())
		for _, j := range c.Implements {
			fmt.Fprintf(b, "\t%s(c%d)\n", s.Helpers[j].Name(), c.Index)
		}
	}
	b.WriteString("}\n\n")
}

func writeGoBenchmark(b *bytes.Buffer, s *imt.Suite, bench imt.Benchmark) {
	c := s.Classes[bench.Class]
	fmt.Fprintf(b, "func Benchmark%s(b *testing.B) {\n", bench.Name())
	b.WriteString("\twarmupOnce.Do(warmup)\n")
	fmt.Fprintf(b, "\tc := &%s{}\n", c.Name())
	b.WriteString("\tfor n := 0; n < b.N; n++ {\n")
	for _, method := range bench.Calls {
		fmt.Fprintf(b, "\t\tcallF%d(c)\n", method)
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n\n")
}

// writeGoClass emits one class. C0 is an empty struct; every later class
// embeds its predecessor, inheriting the earlier method ranges the way the
// Java classes inherit default bodies. The class then defines only the
// methods of its own interface's index range.
func writeGoClass(b *bytes.Buffer, s *imt.Suite, c imt.Class) {
	if c.Index == 0 {
		fmt.Fprintf(b, "type %s struct{}\n", c.Name())
	} else {
		fmt.Fprintf(b, "type %s struct{ %s }\n", c.Name(), s.Classes[c.Index-1].Name())
	}
	for _, m := range s.Interfaces[c.Index].Methods {
		b.WriteString("\n//go:noinline\n")
		fmt.Fprintf(b, "func (*%s) %s() {}\n", c.Name(), m.Name())
	}
	b.WriteString("\n")
}
