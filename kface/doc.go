// The kface subpackage connects kerning tables with the
// golang.org/x/image/font ecosystem. A [Face] wraps any font.Face
// (typically a bitmap face, like the ones from basicfont) and adds
// the kerning from a [kerntab.Table] to the face's own kerning.
//
// Kerning tables store unsigned magnitudes. Following u8g2, by
// default the magnitude is subtracted from the advance, pulling the
// second glyph closer to the first one. See [Sign] if your data
// was built for the opposite convention.
//
// [kerntab.Table]: github.com/tinne26/kerntab.Table
package kface
