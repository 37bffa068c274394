// tokenizer.go splits the inside of an opening tag into a name and attributes.
package shortcode

import (
	"strings"
)

const (
	tagStart       = '['
	tagEnd         = ']'
	tagCloser      = '/'
	attrAssign     = '='
	attrSeparator  = ' '
	literalWrapper = '"'
	literalEscape  = '\\'
)

// tokenizerState is the state of the header scanner.
type tokenizerState int

const (
	stateName tokenizerState = iota
	stateAttrName
	stateAttrValue
)

// header is the tokenized inside of an opening tag.
type header struct {
	name        string
	attributes  *Attributes
	selfClosing bool // written as [name/]
	forced      bool // listed in Options.SelfClosingTags
}

// tokenizeHeader scans the trimmed text between '[' and ']' of an opening tag.
// offset is the position of the tag in the input and is only used for errors.
func tokenizeHeader(inner string, opts *Options, offset int) (*header, error) {
	h := &header{attributes: NewAttributes()}

	if strings.HasSuffix(inner, string(tagCloser)) {
		h.selfClosing = true
		inner = strings.TrimSpace(inner[:len(inner)-1])
	}

	var (
		buf       strings.Builder
		state     = stateName
		literal   bool
		escaping  bool
		currentID string
	)

	for i := 0; i <= len(inner); i++ {
		end := i == len(inner)
		var c byte
		if !end {
			c = inner[i]
		}

		if !escaping {
			switch state {
			case stateName:
				if end || c == attrSeparator {
					h.name = buf.String()
					buf.Reset()
					if h.name == "" {
						return nil, newParseError(KindInvalidOpeningTag, offset, "empty tag name")
					}
					if opts.Mode == ModeTagName {
						return h, nil
					}
					state = stateAttrName
					continue
				}

			case stateAttrName:
				if end || c == attrSeparator || c == attrAssign {
					if buf.Len() > 0 {
						currentID = buf.String()
						buf.Reset()
						h.attributes.SetFlag(currentID)
						if c == attrAssign {
							state = stateAttrValue
							literal = false
						}
					}
					continue
				}

			case stateAttrValue:
				if !end && c == literalEscape {
					escaping = true
					continue
				}

				literalClosed := false
				if !end && c == literalWrapper {
					switch {
					case buf.Len() == 0 && !literal:
						literal = true
						continue
					case !literal:
						return nil, newParseError(KindUnexpectedQuote, offset,
							"quote inside unquoted value of %q", currentID)
					default:
						literalClosed = true
						literal = false
					}
				}

				if !literal && (literalClosed || end || c == attrSeparator) {
					if buf.Len() > 0 || literalClosed {
						value := buf.String()
						if literalClosed {
							value = literalUnescaper.Replace(value)
						}
						h.attributes.Set(currentID, value)
						buf.Reset()
						currentID = ""
						state = stateAttrName
					}
					continue
				}
			}
		}

		if !end {
			buf.WriteByte(c)
			escaping = false
		}
	}

	if buf.Len() > 0 || literal || escaping {
		return nil, newParseError(KindInvalidOpeningTag, offset, "unterminated token %q", buf.String())
	}

	if !h.selfClosing && opts.IsSelfClosingTag(h.name) {
		h.forced = true
	}

	return h, nil
}
