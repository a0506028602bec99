// Package emitter converts annotated screen trees into source-code file sets
// for a chosen target format. A single emission engine walks the trees; the
// differences between targets live in small descriptors (tag mapping, attribute
// formatting, file scaffolding), so behavior stays consistent across formats by
// construction.
package emitter

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedFormat indicates a format selector outside the closed enum.
// It is fatal and surfaced to the caller; nothing is emitted.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format selects the target code format.
type Format string

const (
	FormatHTML      Format = "html"
	FormatReact     Format = "react"
	FormatVue       Format = "vue"
	FormatMoneyview Format = "moneyview"
)

// Formats lists the supported formats in a stable order.
func Formats() []Format {
	return []Format{FormatHTML, FormatReact, FormatVue, FormatMoneyview}
}

// ParseFormat validates a format selector. Matching is case-insensitive;
// anything outside the closed enum fails with ErrUnsupportedFormat.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatReact:
		return FormatReact, nil
	case FormatVue:
		return FormatVue, nil
	case FormatMoneyview:
		return FormatMoneyview, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

func (f Format) String() string { return string(f) }
