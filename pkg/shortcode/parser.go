// parser.go parses a single tag occurrence out of free text.
package shortcode

import (
	"strings"
)

// ParseOne parses the first opening tag at or after opts.Offset, together with
// its content and closing tag. A nil opts uses DefaultOptions.
//
// Recognized forms:
//   - [name attr attr=value attr="quoted \"value\""]content[/name]
//   - [name attrs/] - self-closing
//   - [name attrs] - self-closing when no [/name] follows (lenient mode only)
//
// Offsets in the returned tag are relative to input, not to opts.Offset.
func ParseOne(input string, opts *Options) (*Tag, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	start := opts.Offset
	if start < 0 {
		start = 0
	}
	if start > len(input) {
		start = len(input)
	}

	open, end, found := findOpeningTag(input, start)
	if !found {
		return nil, newParseError(KindMissingOpeningTag, start, "no opening tag found")
	}

	headerText := input[open:end]
	inner := strings.TrimSpace(headerText[1 : len(headerText)-1])
	if inner == "" {
		return nil, newParseError(KindInvalidOpeningTag, open, "empty opening tag %q", headerText)
	}

	h, err := tokenizeHeader(inner, opts, open)
	if err != nil {
		return nil, err
	}

	tag := &Tag{
		Name:       h.name,
		Attributes: h.attributes,
		Offset:     open,
	}

	if opts.Mode == ModeTagName {
		return tag, nil
	}

	closer := closingTagFor(h.name)

	switch {
	case h.selfClosing:
		markSelfClosing(tag, headerText)

	case h.forced:
		// A listed self-closing tag that still closes itself right away is an
		// empty, closed tag.
		if strings.HasPrefix(input[end:], closer) {
			tag.Source = headerText + closer
		} else {
			markSelfClosing(tag, headerText)
		}

	default:
		closeAt, err := findClosingTag(input, end, closer, opts)
		if err != nil {
			return nil, err
		}
		if closeAt < 0 {
			markSelfClosing(tag, headerText)
			break
		}
		tag.Content = input[end:closeAt]
		tag.Source = input[open : closeAt+len(closer)]
	}

	return tag, nil
}

// ParseName returns only the name of the first opening tag at or after
// opts.Offset. The rest of the tag is not validated.
func ParseName(input string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	nameOpts := opts.Clone()
	nameOpts.Mode = ModeTagName

	tag, err := ParseOne(input, nameOpts)
	if err != nil {
		return "", err
	}
	return tag.Name, nil
}

func markSelfClosing(tag *Tag, headerText string) {
	tag.SelfClosing = true
	tag.Content = ""
	tag.Source = headerText
}

// findOpeningTag locates the first '[' at or after from that is not followed
// by '/' and whose ']' follows on the same line. It returns the positions of
// the '[' and just past the first ']' after it.
func findOpeningTag(input string, from int) (open, end int, found bool) {
	for i := from; i < len(input); i++ {
		j := strings.IndexByte(input[i:], tagStart)
		if j < 0 {
			return 0, 0, false
		}
		i += j
		if i+1 >= len(input) || input[i+1] == tagCloser {
			continue
		}
		if !closesOnLine(input, i+2) {
			continue
		}
		return i, i + 2 + strings.IndexByte(input[i+1:], tagEnd), true
	}
	return 0, 0, false
}

// nextBracket locates the next [...] pair at or after from, where the ']'
// follows the '[' on the same line.
func nextBracket(input string, from int) (open, end int, found bool) {
	for i := from; i < len(input); i++ {
		j := strings.IndexByte(input[i:], tagStart)
		if j < 0 {
			return 0, 0, false
		}
		i += j
		if !closesOnLine(input, i+1) {
			continue
		}
		return i, i + 2 + strings.IndexByte(input[i+1:], tagEnd), true
	}
	return 0, 0, false
}

// closesOnLine reports whether a ']' appears at or after from before the next newline.
func closesOnLine(input string, from int) bool {
	if from > len(input) {
		return false
	}
	k := strings.IndexAny(input[from:], "]\n")
	return k >= 0 && input[from+k] == tagEnd
}

// findClosingTag returns the position of the closing tag that ends the tag
// whose header ends at from, or -1 if the tag is to be treated as self-closing.
func findClosingTag(input string, from int, closer string, opts *Options) (int, error) {
	idx := strings.Index(input[from:], closer)
	if idx < 0 {
		if opts.Strict {
			return -1, newParseError(KindMissingClosingTag, from, "expected closing tag %s", closer)
		}
		return -1, nil
	}
	if !opts.Precise {
		return from + idx, nil
	}
	return matchNested(input, from, closer, opts)
}

// matchNested scans the brackets after from with a nesting counter and
// returns the position of the closer that balances the current tag.
func matchNested(input string, from int, closer string, opts *Options) (int, error) {
	nested := opts.Clone()
	nested.Mode = ModeNormal

	level := 0
	pos := from
	for {
		open, end, found := nextBracket(input, pos)
		if !found {
			break
		}
		text := input[open:end]
		inner := strings.TrimSpace(text[1 : len(text)-1])

		if strings.HasPrefix(inner, string(tagCloser)) {
			if level == 0 {
				if text != closer {
					return -1, newParseError(KindInconsistentClosingTag, open,
						"expected closing tag %s, found %s", closer, text)
				}
				return open, nil
			}
			level--
		} else if h, err := tokenizeHeader(inner, nested, open); err == nil && opensBlock(h, input[end:]) {
			level++
		}

		pos = end
	}

	return -1, newParseError(KindUnexpectedEndOfInput, from, "expected closing tag %s", closer)
}

// opensBlock reports whether a nested opening tag expects a closing tag in rest.
func opensBlock(h *header, rest string) bool {
	closer := closingTagFor(h.name)
	switch {
	case h.selfClosing:
		return false
	case h.forced:
		return strings.HasPrefix(rest, closer)
	default:
		return strings.Contains(rest, closer)
	}
}
