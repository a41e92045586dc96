// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, which is what golang.org/x/image/font uses for
// advances and kerning. Kerning tables store whole pixels, so most
// of the time you will only convert from ints and back, but measures
// that go through a font.Face can have fractional parts.
package fract
