package render

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ToMarkdown renders input to HTML and converts the result back to markdown,
// so tags come out as their markdown equivalents where one exists.
func ToMarkdown(input string, opts *Options) (string, error) {
	out, err := ToHTML(input, opts)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}
