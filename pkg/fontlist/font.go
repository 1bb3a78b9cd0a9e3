// Package fontlist enumerates the fonts installed on the host and maps them
// to the family/style descriptors handed to front-ends.
package fontlist

import (
	"iter"
)

// Font describes one installed font variant as reported to callers
type Font struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// Face is a single catalog entry. Collections (.ttc, .otc) produce one Face
// per contained font.
type Face struct {
	Family         string // Typographic family, falling back to the legacy family name
	Style          string // Typographic subfamily, falling back to the legacy subfamily name
	FullName       string
	PostScriptName string
	Path           string // File the face was read from
	Index          int    // Face index inside a collection file
}

// Descriptor returns the caller-facing view of the face
func (f Face) Descriptor() Font {
	return Font{Family: f.Family, Style: f.Style}
}

// Source is anything that can enumerate catalog faces
type Source interface {
	// All returns a sequence over every face known at call time
	All() iter.Seq[Face]
}

// ListFonts maps every face of src to a descriptor. The result is never nil
// so an empty catalog serializes as an empty array.
func ListFonts(src Source) []Font {
	fonts := make([]Font, 0)
	for face := range src.All() {
		fonts = append(fonts, face.Descriptor())
	}
	return fonts
}
