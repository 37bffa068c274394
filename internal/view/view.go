// Package view provides output formatting for shortcode commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
	FormatYAML  Format = "yaml"
)

// ValidFormats returns the list of valid output formats.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain), string(FormatYAML)}
}

// ValidateFormat checks that format is a known output format.
// An empty string is valid and selects the table format.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (valid formats: %s)", format, strings.Join(ValidFormats(), ", "))
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	if format == "" {
		format = FormatTable
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// IsStructured reports whether the renderer emits JSON or YAML.
func (r *Renderer) IsStructured() bool {
	return r.format == FormatJSON || r.format == FormatYAML
}

// RenderTable renders data as a table.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	switch r.format {
	case FormatJSON:
		r.renderTableAsJSON(headers, rows)
		return
	case FormatYAML:
		_ = r.RenderYAML(tableRecords(headers, rows))
		return
	case FormatPlain:
		r.renderTableAsPlain(rows)
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	bold := color.New(color.Bold)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(r.writer, "  ")
		}
		bold.Fprint(r.writer, pad(h, widths[i], i == len(headers)-1))
	}
	fmt.Fprintln(r.writer)

	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "  ")
			}
			if i < len(widths) {
				val = pad(val, widths[i], i == len(row)-1)
			}
			fmt.Fprint(r.writer, val)
		}
		fmt.Fprintln(r.writer)
	}
}

func pad(s string, width int, last bool) string {
	if last || len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func tableRecords(headers []string, rows [][]string) []map[string]string {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}
	return result
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	data, _ := json.MarshalIndent(tableRecords(headers, rows), "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

func (r *Renderer) renderTableAsPlain(rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(r.writer, strings.Join(row, "\t"))
	}
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderYAML renders an object as YAML.
func (r *Renderer) RenderYAML(v interface{}) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Render renders v as JSON or YAML when the format is structured, and
// otherwise calls fallback.
func (r *Renderer) Render(v interface{}, fallback func()) error {
	switch r.format {
	case FormatJSON:
		return r.RenderJSON(v)
	case FormatYAML:
		return r.RenderYAML(v)
	}
	fallback()
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// RenderKeyValue renders a key-value pair.
func (r *Renderer) RenderKeyValue(key, value string) {
	if r.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{key: value})
		fmt.Fprintln(r.writer, string(data))
		return
	}
	bold := color.New(color.Bold)
	bold.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// RenderTree writes one line per node, indented by "---" per level.
func (r *Renderer) RenderTree(root *shortcode.Node) {
	name := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	shortcode.Walk(root, func(node *shortcode.Node, depth int) bool {
		if depth > 0 {
			fmt.Fprint(r.writer, strings.Repeat("---", depth)+" ")
		}
		switch {
		case node.IsRoot():
			dim.Fprint(r.writer, "[Root]")
			fmt.Fprintf(r.writer, " %d bytes\n", len(node.Text))
		case node.IsText():
			dim.Fprint(r.writer, "[Text]")
			fmt.Fprintf(r.writer, " %q\n", node.Text)
		default:
			tag := node.Tag
			name.Fprint(r.writer, "["+tag.Name+"]")
			fmt.Fprintf(r.writer, " offset=%d", tag.Offset)
			if tag.SelfClosing {
				fmt.Fprint(r.writer, " self-closing")
			}
			if attrs := FormatAttributes(tag.Attributes); attrs != "" {
				fmt.Fprint(r.writer, " "+attrs)
			}
			if !node.HasChildren() && tag.Content != "" {
				fmt.Fprintf(r.writer, " content=%q", tag.Content)
			}
			fmt.Fprintln(r.writer)
		}
		return true
	})
}

// FormatAttributes renders attributes as key=value pairs in insertion order,
// writing flags as the bare key.
func FormatAttributes(attrs *shortcode.Attributes) string {
	if attrs == nil || attrs.Len() == 0 {
		return ""
	}
	parts := make([]string, 0, attrs.Len())
	for _, key := range attrs.Keys {
		if value, ok := attrs.Get(key); ok {
			parts = append(parts, fmt.Sprintf("%s=%q", key, value))
		} else {
			parts = append(parts, key)
		}
	}
	return strings.Join(parts, " ")
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}

// Truncate truncates a string to the specified length.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
