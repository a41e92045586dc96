// kerntab is a package for u8g2-style kerning tables, the compact
// kerning data used by bitmap fonts on small embedded displays.
//
// Most of the time you only need the built-in [Xkcd] table and a
// single method:
//   kern := kerntab.Xkcd.Lookup('A', 'T') // 2 (pixels)
//
// Pairs not in the table simply return 0. Tables are immutable, so
// they can be shared freely between goroutines.
//
// Tables can also be loaded from the binary format described in
// [Parse] or from the C sources generated by u8g2's bdfconv tool
// with [ParseCSource]. To apply kerning while drawing text with
// golang.org/x/image/font, see the kface subpackage.
package kerntab
