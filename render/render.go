// Package render turns an imt.Suite into benchmark source code.
//
// Each target language has its own Renderer. Rendering is deterministic:
// the same suite always produces byte-identical output, so generated files
// can be regenerated and diffed.
package render

import (
	"fmt"
	"io"

	"github.com/sarchlab/imtgen/imt"
)

// Renderer emits a complete benchmark source file for one target language.
type Renderer interface {
	// Render writes the benchmark file for s to w.
	Render(w io.Writer, s *imt.Suite) error

	// Language returns the name used to select this renderer.
	Language() string

	// FileExtension returns the extension for generated files, e.g. "java".
	FileExtension() string
}

// ForLanguage returns the renderer for the given language name.
func ForLanguage(name string) (Renderer, error) {
	switch name {
	case "java":
		return Java{}, nil
	case "go":
		return Golang{}, nil
	default:
		return nil, fmt.Errorf("unknown target language %q (supported: java, go)", name)
	}
}
