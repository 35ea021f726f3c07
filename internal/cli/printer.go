package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Printer writes styled human-readable output to one stream
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter creates a printer whose color profile follows w. Writers that
// are not terminals get plain text.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		out:    w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// Styles returns the printer styles
func (p *Printer) Styles() Styles {
	return p.styles
}

// Title prints a bold heading
func (p *Printer) Title(title string) {
	fmt.Fprintln(p.out, p.styles.Title.Render(title))
}

// Field prints an aligned label and value
func (p *Printer) Field(label, value string) {
	fmt.Fprintln(p.out, p.styles.Label.Render(label+":")+p.styles.Value.Render(value))
}

// Warn prints a warning line
func (p *Printer) Warn(message string) {
	fmt.Fprintln(p.out, p.styles.Warning.Render("Warning: "+message))
}

// Error prints err with its code and details
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(p.out, RenderError(p.styles, err))
}

// RenderError formats err for the terminal. Structured errors show their
// code and their details in key order.
func RenderError(styles Styles, err error) string {
	var b strings.Builder
	b.WriteString(styles.Error.Render("Error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return b.String()
	}

	if mdwErr.Code() != mdwerror.CodeUnknown {
		b.WriteString(" ")
		b.WriteString(styles.Code.Render("[" + mdwErr.Code().String() + "]"))
	}

	details := mdwErr.Details()
	keys := make([]string, 0, len(details))
	for k := range details {
		if k == "module" || k == "operation" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(styles.Detail.Render(fmt.Sprintf("%s: %v", k, details[k])))
	}
	return b.String()
}
