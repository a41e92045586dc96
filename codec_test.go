package kerntab

import "os"
import "bytes"
import "errors"
import "testing"

import "github.com/tdewolff/test"

func sameTables(t *testing.T, a, b *Table) {
	t.Helper()
	test.T(t, a.firstChars, b.firstChars, "first chars")
	test.T(t, a.groupOffsets, b.groupOffsets, "group offsets")
	test.T(t, a.secondChars, b.secondChars, "second chars")
	test.T(t, a.values, b.values, "values")
	test.T(t, a.NumFirstChars(), b.NumFirstChars())
}

func TestBinaryRoundTrip(t *testing.T) {
	data, err := Xkcd.MarshalBinary()
	test.Error(t, err)
	test.T(t, len(data), 4 + 20*4 + 71*3)
	test.Bytes(t, data[ : 6], []byte{20, 0, 71, 0, 65, 0})

	table, err := Parse(data)
	test.Error(t, err)
	sameTables(t, table, Xkcd)
	test.T(t, table.Lookup('A', 'T'), uint8(2))
	test.T(t, table.Lookup(Sentinel, 'A'), uint8(0))

	var buffer bytes.Buffer
	n, err := Xkcd.WriteTo(&buffer)
	test.Error(t, err)
	test.T(t, n, int64(len(data)))
	table, err = ParseFrom(&buffer)
	test.Error(t, err)
	sameTables(t, table, Xkcd)
}

func TestBinaryRoundTripWithoutSentinel(t *testing.T) {
	source := Must([]CharCode{'L', 'Y'}, []uint16{0, 1}, []CharCode{'T', 'o', 'a'}, []uint8{1, 2, 3})
	data, err := source.MarshalBinary()
	test.Error(t, err)
	table, err := Parse(data)
	test.Error(t, err)
	sameTables(t, table, source)
	test.That(t, !table.HasSentinel(), "sentinel appeared after round trip")
	test.T(t, table.Lookup('Y', 'a'), uint8(3))
}

func TestParseErrors(t *testing.T) {
	data, _ := Xkcd.MarshalBinary()

	tests := []struct {
		name string
		data []byte
		target error
	}{
		{"empty", nil, ErrFormat},
		{"short header", []byte{1, 0, 0}, ErrFormat},
		{"truncated", data[ : len(data) - 1], ErrFormat},
		{"trailing", append(append([]byte{}, data...), 0), ErrFormat},
		{"unsorted", []byte{2, 0, 0, 0, 'B', 0, 'A', 0, 0, 0, 0, 0}, ErrInvalidTable},
		{"bad offsets", []byte{1, 0, 1, 0, 'A', 0, 1, 0, 'T', 0, 2}, ErrInvalidTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			test.That(t, err != nil, "expected error")
			test.That(t, errors.Is(err, tt.target), "unexpected error kind:", err)
		})
	}
}

func TestParseCSource(t *testing.T) {
	src, err := os.ReadFile("testdata/xkcd.k.c")
	test.Error(t, err)

	table, err := ParseCSource(src)
	test.Error(t, err)
	sameTables(t, table, Xkcd)
	test.T(t, table.Lookup('C', 'V'), uint8(2))
}

func TestWriteCSource(t *testing.T) {
	expected, err := os.ReadFile("testdata/xkcd.k.c")
	test.Error(t, err)

	var buffer bytes.Buffer
	test.Error(t, Xkcd.WriteCSource(&buffer, "xkcd"))
	test.String(t, buffer.String(), string(expected))

	table, err := ParseCSource(buffer.Bytes())
	test.Error(t, err)
	sameTables(t, table, Xkcd)
}

func TestParseCSourceVariants(t *testing.T) {
	// no struct, unsized arrays, line comments
	src := `// tiny
		static const uint16_t t_first_encoding_table[] = { 65, 76, 65535 };
		static const uint16_t t_index_to_second_table[3] = { 0, 1, 3 };
		static const uint16_t t_second_encoding_table[3] = { 84, 84, 86 }; /* trailing */
		static const uint8_t t_kerning_values[3] = { 2, 3, 1 };`
	table, err := ParseCSource([]byte(src))
	test.Error(t, err)
	test.T(t, table.NumFirstChars(), 2)
	test.T(t, table.Lookup('A', 'T'), uint8(2))
	test.T(t, table.Lookup('L', 'T'), uint8(3))
	test.T(t, table.Lookup('L', 'V'), uint8(1))
}

func TestParseCSourceErrors(t *testing.T) {
	arrays := `uint16_t a[2] = {65, 65535}; uint16_t b[2] = {0, 1}; uint16_t c[1] = {84}; uint8_t d[1] = {2};`
	tests := []struct {
		name string
		src string
		target error
	}{
		{"missing arrays", `uint16_t a[2] = {65, 65535};`, ErrFormat},
		{"size mismatch", `uint16_t a[3] = {65, 65535};`, ErrFormat},
		{"bad counts", arrays + ` u8g2_kerning_t k = { 2, 2, a, b, c, d };`, ErrFormat},
		{"too many counts", arrays + ` u8g2_kerning_t k = { 2, 1, 0, a, b, c, d };`, ErrFormat},
		{"extra initializer", arrays + ` k = { 2, 1 }; j = { 1 };`, ErrFormat},
		{"unterminated comment", `/* xkcd`, ErrFormat},
		{"unterminated initializer", `uint16_t a[2] = {65, `, ErrFormat},
		{"bad token", `uint16_t a[2] = {65; 65535};`, ErrFormat},
		{"hex number", `uint16_t a[2] = {0x41, 65535};`, ErrFormat},
		{"value overflow", `uint16_t a[2] = {65, 65535}; uint16_t b[2] = {0, 1}; uint16_t c[1] = {84}; uint8_t d[1] = {256};`, ErrFormat},
		{"code overflow", `uint16_t a[2] = {65, 65536}; uint16_t b[2] = {0, 1}; uint16_t c[1] = {84}; uint8_t d[1] = {2};`, ErrFormat},
		{"invalid table", `uint16_t a[2] = {65, 65535}; uint16_t b[2] = {0, 0}; uint16_t c[1] = {84}; uint8_t d[1] = {2};`, ErrInvalidTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSource([]byte(tt.src))
			test.That(t, err != nil, "expected error")
			test.That(t, errors.Is(err, tt.target), "unexpected error kind:", err)
		})
	}

	_, err := ParseCSource([]byte(arrays + ` u8g2_kerning_t k = { 2, 1, a, b, c, d };`))
	test.Error(t, err)
}
