package kerntab

import "io"
import "bufio"
import "strconv"

import "github.com/tdewolff/parse/v2"
import pstrconv "github.com/tdewolff/parse/v2/strconv"

// Values per line after the first one in generated C sources. The
// first line gets one extra value, like bdfconv does.
const cSourceValuesPerLine = 16

// Fixed overhead reported by bdfconv in the "Size" header comment.
const cSourceStructSize = 12

// Decodes a kerning table from the C source generated by u8g2's
// bdfconv for "-k" kerning output (a "name.k.c" file). The source
// must contain the four array initializers in this order:
//   name_first_encoding_table
//   name_index_to_second_table
//   name_second_encoding_table
//   name_kerning_values
// Optionally followed by the u8g2_kerning_t initializer, whose two
// counts must then match the array lengths. Array names are not
// checked, only the order matters.
func ParseCSource(src []byte) (*Table, error) {
	lexer := cSourceLexer{ input: parse.NewInputBytes(src) }
	lists := make([][]uint64, 0, 5)
	declared := -1
	for {
		tokenType, data := lexer.Next()
		switch tokenType {
		case cErrorToken:
			return nil, lexer.err
		case cEOFToken:
			return tableFromCLists(lists)
		case cPunctToken:
			switch data[0] {
			case '[':
				size, err := lexer.ArraySize()
				if err != nil { return nil, err }
				declared = size
			case '{':
				if len(lists) == 5 { return nil, lexer.Errorf("unexpected initializer") }
				list, err := lexer.NumberList()
				if err != nil { return nil, err }
				if declared >= 0 && declared != len(list) {
					return nil, lexer.Errorf("array declared with size %d but has %d values", declared, len(list))
				}
				lists = append(lists, list)
				declared = -1
			}
		}
	}
}

func tableFromCLists(lists [][]uint64) (*Table, error) {
	if len(lists) < 4 {
		return nil, formatf("expected 4 array initializers, found %d", len(lists))
	}
	if len(lists) == 5 {
		counts := lists[4]
		if len(counts) != 2 {
			return nil, formatf("kerning struct must have 2 counts, found %d", len(counts))
		}
		if counts[0] != uint64(len(lists[0])) || counts[1] != uint64(len(lists[2])) {
			return nil, formatf("kerning struct counts (%d, %d) don't match arrays (%d, %d)",
				counts[0], counts[1], len(lists[0]), len(lists[2]))
		}
	}

	firstChars, err := toUint16s(lists[0], "first encoding table")
	if err != nil { return nil, err }
	groupOffsets, err := toUint16s(lists[1], "index to second table")
	if err != nil { return nil, err }
	secondChars, err := toUint16s(lists[2], "second encoding table")
	if err != nil { return nil, err }
	values := make([]uint8, len(lists[3]))
	for i, value := range lists[3] {
		if value > 0xFF { return nil, formatf("kerning value %d out of range at position %d", value, i) }
		values[i] = uint8(value)
	}
	return New(firstChars, groupOffsets, secondChars, values)
}

func toUint16s(list []uint64, name string) ([]uint16, error) {
	out := make([]uint16, len(list))
	for i, value := range list {
		if value > 0xFFFF {
			return nil, formatf("%s value %d out of range at position %d", name, value, i)
		}
		out[i] = uint16(value)
	}
	return out, nil
}

// Writes the table as C source in the same layout bdfconv uses, with
// the given name as prefix for the arrays and the kerning struct
// ("name_k"). The output can be read back with [ParseCSource].
func (self *Table) WriteCSource(writer io.Writer, name string) error {
	firstCount, pairCount := len(self.firstChars), len(self.secondChars)
	size := 4*firstCount + 3*pairCount + cSourceStructSize

	out := bufio.NewWriter(writer)
	out.WriteString("/* " + name + ", Size: " + strconv.Itoa(size) + " Bytes */\n")
	writeCArray(out, "uint16_t", name + "_first_encoding_table", len(self.firstChars),
		func(i int) int { return int(self.firstChars[i]) })
	writeCArray(out, "uint16_t", name + "_index_to_second_table", len(self.groupOffsets),
		func(i int) int { return int(self.groupOffsets[i]) })
	writeCArray(out, "uint16_t", name + "_second_encoding_table", len(self.secondChars),
		func(i int) int { return int(self.secondChars[i]) })
	writeCArray(out, "uint8_t", name + "_kerning_values", len(self.values),
		func(i int) int { return int(self.values[i]) })
	out.WriteString("u8g2_kerning_t " + name + "_k = {\n")
	out.WriteString("  " + strconv.Itoa(firstCount) + ", " + strconv.Itoa(pairCount) + ",\n")
	out.WriteString("  " + name + "_first_encoding_table,\n")
	out.WriteString("  " + name + "_index_to_second_table,\n")
	out.WriteString("  " + name + "_second_encoding_table,\n")
	out.WriteString("  " + name + "_kerning_values};\n\n")
	return out.Flush()
}

func writeCArray(out *bufio.Writer, cType string, name string, count int, valueAt func(int) int) {
	out.WriteString("static const " + cType + " " + name + "[" + strconv.Itoa(count) + "] = {\n  ")
	for i := 0; i < count; i++ {
		out.WriteString(strconv.Itoa(valueAt(i)))
		if i == count - 1 { break }
		out.WriteString(", ")
		if i > 0 && i % cSourceValuesPerLine == 0 { out.WriteString("\n  ") }
	}
	out.WriteString("};\n")
}

// ---- lexer ----

type cTokenType uint8
const (
	cErrorToken cTokenType = iota
	cEOFToken
	cNumberToken
	cIdentToken
	cPunctToken
)

// Minimal lexer for the subset of C that bdfconv outputs: comments,
// identifiers, decimal numbers and punctuation.
type cSourceLexer struct {
	input *parse.Input
	err error
}

func (self *cSourceLexer) Errorf(format string, args ...any) error {
	return formatf("%v", parse.NewErrorLexer(self.input, format, args...))
}

func (self *cSourceLexer) Next() (cTokenType, []byte) {
	if !self.skipSpaceAndComments() { return cErrorToken, nil }

	c := self.input.Peek(0)
	switch {
	case c == 0 && self.input.Err() != nil:
		return cEOFToken, nil
	case isCDigit(c):
		for isCIdentChar(self.input.Peek(0)) { self.input.Move(1) }
		return cNumberToken, self.input.Shift()
	case isCIdentStart(c):
		for isCIdentChar(self.input.Peek(0)) { self.input.Move(1) }
		return cIdentToken, self.input.Shift()
	default:
		self.input.Move(1)
		return cPunctToken, self.input.Shift()
	}
}

// Reads "N]" after an opening bracket.
func (self *cSourceLexer) ArraySize() (int, error) {
	tokenType, data := self.Next()
	if tokenType == cErrorToken { return 0, self.err }
	if tokenType == cPunctToken && data[0] == ']' { return -1, nil } // unsized array
	if tokenType != cNumberToken { return 0, self.Errorf("expected array size") }
	size, err := parseCNumber(data)
	if err != nil { return 0, self.Errorf("%s", err.Error()) }
	tokenType, data = self.Next()
	if tokenType != cPunctToken || data[0] != ']' { return 0, self.Errorf("expected ']'") }
	return int(size), nil
}

// Reads the numbers of an initializer until the closing brace.
// Identifiers are skipped, as the kerning struct initializer
// mixes counts with array names.
func (self *cSourceLexer) NumberList() ([]uint64, error) {
	list := make([]uint64, 0, 32)
	for {
		tokenType, data := self.Next()
		switch tokenType {
		case cErrorToken:
			return nil, self.err
		case cEOFToken:
			return nil, self.Errorf("unterminated initializer")
		case cIdentToken:
			// array references in the kerning struct
		case cNumberToken:
			value, err := parseCNumber(data)
			if err != nil { return nil, self.Errorf("%s", err.Error()) }
			list = append(list, value)
		case cPunctToken:
			switch data[0] {
			case ',': // separator
			case '}': return list, nil
			default:
				return nil, self.Errorf("unexpected '%c' in initializer", data[0])
			}
		}
	}
}

// Returns false and sets self.err on unterminated comments.
func (self *cSourceLexer) skipSpaceAndComments() bool {
	for {
		c := self.input.Peek(0)
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			self.input.Move(1)
		case c == '/' && self.input.Peek(1) == '*':
			self.input.Move(2)
			for !(self.input.Peek(0) == '*' && self.input.Peek(1) == '/') {
				if self.input.Peek(0) == 0 && self.input.Err() != nil {
					self.err = self.Errorf("unterminated comment")
					return false
				}
				self.input.Move(1)
			}
			self.input.Move(2)
		case c == '/' && self.input.Peek(1) == '/':
			for c := self.input.Peek(0); c != '\n'; c = self.input.Peek(0) {
				if c == 0 && self.input.Err() != nil { break }
				self.input.Move(1)
			}
		default:
			self.input.Skip()
			return true
		}
	}
}

func parseCNumber(data []byte) (uint64, error) {
	value, n := pstrconv.ParseUint(data)
	if n != len(data) || n == 0 {
		return 0, formatf("invalid number '%s'", data)
	}
	return value, nil
}

func isCDigit(c byte) bool { return c >= '0' && c <= '9' }

func isCIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isCIdentChar(c byte) bool { return isCIdentStart(c) || isCDigit(c) }
