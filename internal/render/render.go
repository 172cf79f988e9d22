// Package render pretty-prints HTTP responses for a terminal: status line,
// headers, then the body with content-type aware syntax highlighting. It is
// presentation only; the body text itself is never altered beyond JSON
// reindentation.
package render

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"sort"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"

	"github.com/dvcrn/ht/internal/logger"
)

var (
	statusColor = color.New(color.FgBlue)
	headerColor = color.New(color.FgGreen)
)

// Renderer writes a formatted response to out.
type Renderer struct {
	out io.Writer
}

func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Response prints the status line, the headers and the body, consuming and
// closing the body. The body is read fully into memory before printing.
func (r *Renderer) Response(resp *http.Response) error {
	defer resp.Body.Close()

	r.printStatus(resp)
	r.printHeaders(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	r.printBody(resp.Header.Get("Content-Type"), body)
	return nil
}

func (r *Renderer) printStatus(resp *http.Response) {
	statusColor.Fprintf(r.out, "%s %s", resp.Proto, resp.Status)
	fmt.Fprint(r.out, "\n\n")
}

// printHeaders renders one "Name: value" line per header value. net/http
// stores headers in a map, so server order is gone; sorted names keep the
// output deterministic instead.
func (r *Renderer) printHeaders(headers http.Header) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range headers[name] {
			headerColor.Fprint(r.out, name)
			fmt.Fprintf(r.out, ": %s\n", value)
		}
	}
	fmt.Fprintln(r.out)
}

// printBody dispatches on the declared media type. Only JSON and HTML get
// special treatment; everything else, including an undeclared or malformed
// content type, is printed verbatim.
func (r *Renderer) printBody(contentType string, body []byte) {
	mediaType := ""
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			logger.Get().Debug().Str("content_type", contentType).Err(err).
				Msg("could not parse content type, printing body as-is")
		} else {
			mediaType = parsed
		}
	}

	switch mediaType {
	case "application/json":
		indented := pretty.PrettyOptions(body, &pretty.Options{Indent: "  "})
		r.highlight(string(indented), "json")
	case "text/html":
		r.highlight(string(body), "html")
	default:
		fmt.Fprintln(r.out, string(body))
	}
}
