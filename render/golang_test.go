package render_test

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/imtgen/imt"
	"github.com/sarchlab/imtgen/render"
)

func renderGo(imtSize int) string {
	suite, err := imt.Build(imtSize)
	Expect(err).NotTo(HaveOccurred())
	var buf bytes.Buffer
	Expect(render.Golang{}.Render(&buf, suite)).To(Succeed())
	return buf.String()
}

var _ = Describe("Go Renderer", func() {
	var out string

	BeforeEach(func() {
		out = renderGo(2)
	})

	It("should carry the generated-code marker and package clause", func() {
		Expect(out).To(HavePrefix("// Code generated by imtgen. DO NOT EDIT.\n"))
		Expect(out).To(ContainSubstring("package imtconflict\n"))
		Expect(out).To(ContainSubstring("Each interface has 2 methods"))
	})

	It("should chain classes by embedding", func() {
		Expect(out).To(ContainSubstring("type C0 struct{}\n"))
		Expect(out).To(ContainSubstring("type C1 struct{ C0 }\n"))
		Expect(out).To(ContainSubstring("type C19 struct{ C18 }\n"))
	})

	It("should define only each class's own method range", func() {
		// 20 classes each add IMTSize methods, all noinline.
		Expect(strings.Count(out, "//go:noinline\n")).
			To(Equal(2 * imt.MaxConflictDepth))
		Expect(out).To(ContainSubstring("func (*C0) f0() {}\n"))
		Expect(out).To(ContainSubstring("func (*C0) f1() {}\n"))
		Expect(out).To(ContainSubstring("func (*C1) f2() {}\n"))
		Expect(out).NotTo(ContainSubstring("func (*C1) f0()"))
	})

	It("should list every method of an interface", func() {
		Expect(out).To(ContainSubstring("type I0 interface {\n\tf0()\n\tf1()\n}\n"))
		Expect(out).To(ContainSubstring("type I19 interface {\n\tf38()\n\tf39()\n}\n"))
	})

	It("should dispatch helpers through the interface type", func() {
		Expect(out).To(ContainSubstring("func callF0(x I0) { x.f0() }\n"))
		Expect(out).To(ContainSubstring("func callF2(x I1) { x.f2() }\n"))
	})

	It("should warm up once before every benchmark", func() {
		Expect(out).To(ContainSubstring("var warmupOnce sync.Once\n"))
		Expect(strings.Count(out, "warmupOnce.Do(warmup)\n")).
			To(Equal(imt.MaxConflictDepth))

		warmup := section(out, "func warmup() {", "func Benchmark")
		want := imt.MaxConflictDepth * (imt.MaxConflictDepth + 1) / 2
		Expect(strings.Count(warmup, "callF")).To(Equal(want))
	})

	It("should emit one benchmark per conflict depth over b.N", func() {
		Expect(out).To(ContainSubstring("func BenchmarkConflictDepth01(b *testing.B) {\n"))
		Expect(out).To(ContainSubstring("func BenchmarkConflictDepth20(b *testing.B) {\n"))
		Expect(strings.Count(out, "for n := 0; n < b.N; n++ {\n")).
			To(Equal(imt.MaxConflictDepth))
	})

	It("should cycle depth-2 calls between its two helpers", func() {
		body := section(out, "BenchmarkConflictDepth02", "BenchmarkConflictDepth03")
		Expect(body).To(ContainSubstring("c := &C1{}\n"))

		var calls strings.Builder
		for j := 0; j < imt.MaxConflictDepth; j++ {
			fmt.Fprintf(&calls, "\t\tcallF%d(c)\n", 2*(j%2))
		}
		Expect(body).To(ContainSubstring(calls.String()))
	})

	It("should be byte-identical across renders", func() {
		Expect(renderGo(2)).To(Equal(out))
	})
})
