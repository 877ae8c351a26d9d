package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"slices"
	"strconv"
	"strings"

	"conjugal/internal/match"
)

// DirectivePrefix starts a noun directive comment.
const DirectivePrefix = "//conjugal:noun"

var (
	// ErrMalformedDirective is returned for directives that are not key:"value" pairs.
	ErrMalformedDirective = errors.New("analyze: malformed directive")
	// ErrUnknownDirectiveKey is returned for keys that are not catalog noun fields.
	ErrUnknownDirectiveKey = errors.New("analyze: unknown directive key")
)

// directiveKeys are the keys a directive may set.
var directiveKeys = []string{
	"lemma",
	"singular",
	"plural",
	"countability",
	"abbreviation",
	"plural_abbreviation",
	"proper_noun",
	"casing",
	"nounal_verb",
	"unit",
}

// Directive is a parsed //conjugal:noun comment.
type Directive struct {
	// Skip is set by "//conjugal:noun -".
	Skip   bool
	values map[string]string
}

// Get returns the value for key, or "".
func (d *Directive) Get(key string) string {
	if d == nil {
		return ""
	}

	return d.values[key]
}

// Lookup returns the value for key and whether it was set.
func (d *Directive) Lookup(key string) (string, bool) {
	if d == nil {
		return "", false
	}

	v, ok := d.values[key]

	return v, ok
}

// findDirective returns the directive text in doc, without the prefix.
func findDirective(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
		if !ok {
			continue
		}

		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimSpace(rest), true
		}
	}

	return "", false
}

// ParseDirective parses the text after DirectivePrefix. The syntax follows
// struct tags: space-separated key:"value" pairs, values being Go strings.
func ParseDirective(text string) (*Directive, error) {
	text = strings.TrimSpace(text)
	if text == "-" {
		return &Directive{Skip: true}, nil
	}

	d := &Directive{values: map[string]string{}}

	for {
		text = strings.TrimLeft(text, " \t")
		if text == "" {
			return d, nil
		}

		key, rest, ok := strings.Cut(text, ":")
		if !ok || key == "" || strings.ContainsAny(key, " \t\"") {
			return nil, fmt.Errorf("%w: expected key:\"value\" at %q", ErrMalformedDirective, text)
		}

		if !slices.Contains(directiveKeys, key) {
			return nil, unknownKey(key)
		}

		if _, dup := d.values[key]; dup {
			return nil, fmt.Errorf("%w: %s is set twice", ErrMalformedDirective, key)
		}

		quoted, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: value of %s: %w", ErrMalformedDirective, key, err)
		}

		value, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, fmt.Errorf("%w: value of %s: %w", ErrMalformedDirective, key, err)
		}

		d.values[key] = value
		text = rest[len(quoted):]
	}
}

func unknownKey(key string) error {
	err := fmt.Errorf("%w: %s", ErrUnknownDirectiveKey, key)
	if s := match.Suggest(key, directiveKeys, 1); len(s) > 0 {
		err = fmt.Errorf("%w (did you mean %q?)", err, s[0])
	}

	return err
}
