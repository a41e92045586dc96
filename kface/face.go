package kface

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/kerntab"
import "github.com/tinne26/kerntab/fract"

// Direction in which kerning table values are applied.
type Sign int8

const (
	Tighten Sign = -1 // values are subtracted from the advance (u8g2 convention, default)
	Loosen  Sign = +1 // values are added to the advance
)

// Configuration options for [NewFace].
type Option func(*Face)

// Sets the [Encoder] used to map runes to table codes. The default
// is [IdentityEncoder].
func WithEncoder(encoder Encoder) Option {
	return func(face *Face) { face.encoder = encoder }
}

// Sets the direction in which kerning values are applied. The
// default is [Tighten].
func WithSign(sign Sign) Option {
	if sign != Tighten && sign != Loosen { panic("invalid kerning sign") }
	return func(face *Face) { face.sign = sign }
}

// Sets an integer scaling factor for kerning values. Useful when the
// base face draws the bitmap font magnified. The default is 1.
func WithScale(scale int) Option {
	if scale < 1 { panic("kerning scale must be >= 1") }
	return func(face *Face) { face.scale = scale }
}

var _ font.Face = (*Face)(nil)

// A font.Face that adds the kerning from a [kerntab.Table] to the
// kerning of the wrapped face. All other methods are forwarded to
// the wrapped face.
//
// A [Face] is as safe for concurrent use as the face it wraps: the
// kerning table itself is read-only.
//
// [kerntab.Table]: github.com/tinne26/kerntab.Table
type Face struct {
	font.Face
	table *kerntab.Table
	encoder Encoder
	sign Sign
	scale int
}

// Creates a new [Face] wrapping the given face and using the given
// kerning table.
func NewFace(base font.Face, table *kerntab.Table, options ...Option) *Face {
	if base == nil { panic("nil base face") }
	if table == nil { panic("nil kerning table") }
	face := &Face{
		Face: base,
		table: table,
		encoder: IdentityEncoder{},
		sign: Tighten,
		scale: 1,
	}
	for _, option := range options { option(face) }
	return face
}

// Returns the kerning table used by the face.
func (self *Face) Table() *kerntab.Table { return self.table }

// Returns the adjustment from the kerning table alone, already
// signed and scaled, for the given pair of runes. Runes that the
// encoder can't represent get no adjustment.
func (self *Face) TableKern(r0, r1 rune) fract.Unit {
	first, ok := self.encoder.Encode(r0)
	if !ok { return 0 }
	second, ok := self.encoder.Encode(r1)
	if !ok { return 0 }
	value := self.table.Lookup(first, second)
	if value == 0 { return 0 }
	return fract.FromInt(int(value)*int(self.sign)).Scale(self.scale)
}

// Satisfies the font.Face interface. Returns the kerning of the
// wrapped face plus [Face.TableKern].
func (self *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return self.Face.Kern(r0, r1) + self.TableKern(r0, r1).ToFixed()
}
