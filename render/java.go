package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/imtgen/imt"
)

// javaLicense is emitted verbatim at the top of every generated file. The
// generated test lives in the Android tree, so it carries the AOSP header.
const javaLicense = `/*
 * Copyright 2016 The Android Open Source Project
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
`

const javaImports = `import android.perftests.utils.BenchmarkState;
import android.perftests.utils.PerfStatusReporter;
import android.test.suitebuilder.annotation.LargeTest;

import androidx.test.runner.AndroidJUnit4;

import org.junit.Before;
import org.junit.Rule;
import org.junit.Test;
import org.junit.runner.RunWith;
`

// Java renders the suite as an Android JUnit performance test, the format
// consumed by the platform perf harness.
type Java struct{}

// Language returns "java".
func (Java) Language() string { return "java" }

// FileExtension returns "java".
func (Java) FileExtension() string { return "java" }

// Render writes the complete ImtConflictPerfTest.java source to w. The
// file order is fixed: license, package, imports, doc comment, then the
// test class holding the warm-up, the timed methods, the dispatch helpers,
// the class declarations, and the interface declarations.
func (Java) Render(w io.Writer, s *imt.Suite) error {
	var b bytes.Buffer

	b.WriteString(javaLicense)
	b.WriteString("\npackage android.libcore;\n\n")
	b.WriteString(javaImports)
	b.WriteString("\n")
	writeJavaDoc(&b, s)

	b.WriteString("@RunWith(AndroidJUnit4.class)\n")
	b.WriteString("@LargeTest\n")
	b.WriteString("public class ImtConflictPerfTest {\n")
	b.WriteString("    @Rule\n")
	b.WriteString("    public PerfStatusReporter mPerfStatusReporter = new PerfStatusReporter();\n")
	b.WriteString("\n")

	writeJavaSetup(&b, s)

	for _, bench := range s.Benchmarks {
		writeJavaBenchmark(&b, s, bench)
	}

	for _, h := range s.Helpers {
		iface := s.Interfaces[h.Interface]
		fmt.Fprintf(&b, "    public void %s(%s i) { i.f%d(); }\n",
			h.Name(), iface.Name(), h.Method)
	}

	for _, c := range s.Classes {
		names := make([]string, 0, len(c.Implements))
		for _, j := range c.Implements {
			names = append(names, s.Interfaces[j].Name())
		}
		fmt.Fprintf(&b, "    static class %s implements %s {}\n",
			c.Name(), strings.Join(names, ", "))
	}

	for _, iface := range s.Interfaces {
		fmt.Fprintf(&b, "    interface %s {\n", iface.Name())
		for _, m := range iface.Methods {
			fmt.Fprintf(&b, "        default void %s() {}\n", m.Name())
		}
		b.WriteString("    }\n")
	}

	b.WriteString("}\n")

	_, err := w.Write(b.Bytes())
	return err
}

// writeJavaDoc emits the file doc comment. The per-interface method count
// is the actual IMT size of this run, not a hard-coded value.
func writeJavaDoc(b *bytes.Buffer, s *imt.Suite) {
	b.WriteString("/**\n")
	b.WriteString(" * This file is script-generated by imtgen. DO NOT EDIT.\n")
	b.WriteString(" * It measures the performance impact of conflicts in interface method tables.\n")
	fmt.Fprintf(b, " * Run `imtgen %d > ImtConflictPerfTest.java` to regenerate.\n", s.IMTSize)
	b.WriteString(" *\n")
	fmt.Fprintf(b, " * Each interface has %d methods, filling an entire IMT of that size. C0\n", s.IMTSize)
	b.WriteString(" * implements one interface, C1 implements two, C2 implements three, and so\n")
	b.WriteString(" * on. The intent is that C0 has no conflicts in its IMT, C1 has depth-2\n")
	b.WriteString(" * conflicts in its IMT, C2 has depth-3 conflicts, etc. This is guaranteed\n")
	b.WriteString(" * by the fact that interface methods are hashed by taking their method\n")
	b.WriteString(" * index modulo the IMT size. (Note that a \"conflict depth\" of 1 means no\n")
	b.WriteString(" * conflict at all.)\n")
	b.WriteString(" */\n")
}

// writeJavaSetup emits the @Before warm-up. Every (class, implemented
// interface) pair gets one call so each measured IMT slot is resolved
// before timing starts.
func writeJavaSetup(b *bytes.Buffer, s *imt.Suite) {
	b.WriteString("    @Before\n")
	b.WriteString("    public void setup() {\n")
	for _, c := range s.Classes {
		fmt.Fprintf(b, "        %s c%d = new %s();\n", c.Name(), c.Index, c.Name())
		for _, j := range c.Implements {
			fmt.Fprintf(b, "        %s(c%d);\n", s.Helpers[j].Name(), c.Index)
		}
	}
	b.WriteString("    }\n")
}

// writeJavaBenchmark emits one timed method. Each iteration cycles through
// the class's implemented interfaces in order, covering every conflict
// resolution outcome for its depth.
func writeJavaBenchmark(b *bytes.Buffer, s *imt.Suite, bench imt.Benchmark) {
	c := s.Classes[bench.Class]
	b.WriteString("    @Test\n")
	fmt.Fprintf(b, "    public void time%s() {\n", bench.Name())
	fmt.Fprintf(b, "        %s c%d = new %s();\n", c.Name(), c.Index, c.Name())
	b.WriteString("        BenchmarkState state = mPerfStatusReporter.getBenchmarkState();\n")
	b.WriteString("        while (state.keepRunning()) {\n")
	for _, method := range bench.Calls {
		fmt.Fprintf(b, "            callF%d(c%d);\n", method, c.Index)
	}
	b.WriteString("        }\n")
	b.WriteString("    }\n")
}
