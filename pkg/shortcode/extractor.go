// extractor.go pulls successive top-level tags out of free text.
package shortcode

import (
	"github.com/sirupsen/logrus"
)

// ExtractTags returns the top-level tags of text in source order. Tags nested
// in the content of an extracted tag are skipped; use BuildTree to descend.
// A nil opts uses DefaultExtractOptions.
//
// Scanning stops at the first position where no further tag can be parsed.
// In lenient mode that is not an error and the tags found so far are returned.
// In strict mode a malformed tag stops extraction with its error, alongside
// the tags found before it.
func ExtractTags(text string, opts *Options) ([]*Tag, error) {
	if opts == nil {
		opts = DefaultExtractOptions()
	}

	scan := opts.Clone()
	scan.Mode = ModeNormal

	var tags []*Tag
	offset := scan.Offset
	for offset < len(text) {
		scan.Offset = offset
		tag, err := ParseOne(text, scan)
		if err != nil {
			if IsNoMatch(err) {
				break
			}
			Logger.WithFields(logrus.Fields{
				"offset": offset,
				"found":  len(tags),
			}).WithError(err).Debug("stopped extracting tags")
			if opts.Strict {
				return tags, err
			}
			break
		}
		tags = append(tags, tag)
		offset = tag.EndOffset()
	}

	return tags, nil
}

// ExtractTexts returns the source spans of the top-level tags of text.
func ExtractTexts(text string, opts *Options) ([]string, error) {
	tags, err := ExtractTags(text, opts)
	texts := make([]string, 0, len(tags))
	for _, tag := range tags {
		texts = append(texts, tag.Source)
	}
	return texts, err
}
