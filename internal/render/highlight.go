package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
)

// Fixed dark theme, rendered with 24-bit ANSI escapes.
const (
	highlightFormatter = "terminal16m"
	highlightStyle     = "monokai"
)

// highlight writes source with ANSI syntax coloring for the given lexer.
// When color is disabled, or the highlighter rejects the input, the text is
// written unmodified.
func (r *Renderer) highlight(source, lexer string) {
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}
	if color.NoColor {
		fmt.Fprint(r.out, source)
		return
	}
	if err := quick.Highlight(r.out, source, lexer, highlightFormatter, highlightStyle); err != nil {
		fmt.Fprint(r.out, source)
	}
}
