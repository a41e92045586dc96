package kface

import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/kerntab"

// Encoders map runes to the character codes used by a font's
// kerning table. Fonts generated for small displays often use
// an 8-bit encoding instead of Unicode.
type Encoder interface {
	// Returns the character code for the given rune, or false if
	// the rune can't be represented in the font's encoding.
	Encode(r rune) (kerntab.CharCode, bool)
}

// An [Encoder] that uses the rune value directly as the character
// code. Runes outside [0, 65534] are not representable.
type IdentityEncoder struct{}

// Satisfies the [Encoder] interface.
func (IdentityEncoder) Encode(r rune) (kerntab.CharCode, bool) {
	if r < 0 || r >= rune(kerntab.Sentinel) { return 0, false }
	return kerntab.CharCode(r), true
}

var _ Encoder = IdentityEncoder{}
var _ Encoder = (*CharmapEncoder)(nil)

// An [Encoder] for fonts using a single byte encoding, like
// ISO-8859-1 or Windows-1252.
type CharmapEncoder struct {
	charmap *charmap.Charmap
}

// Creates a new [CharmapEncoder] for the given encoding. For example:
//   encoder := kface.NewCharmapEncoder(charmap.Windows1252)
func NewCharmapEncoder(encoding *charmap.Charmap) *CharmapEncoder {
	if encoding == nil { panic("nil charmap") }
	return &CharmapEncoder{ charmap: encoding }
}

// Satisfies the [Encoder] interface.
func (self *CharmapEncoder) Encode(r rune) (kerntab.CharCode, bool) {
	code, ok := self.charmap.EncodeRune(r)
	return kerntab.CharCode(code), ok
}
