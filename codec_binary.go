package kerntab

import "io"
import "encoding/binary"

// Size of the binary header: first chars count and pairs count.
const binaryHeaderSize = 4

// Decodes a table stored in the binary kerning format:
//   [u16 firstCount][u16 pairCount]
//   [u16 firstChars[firstCount]][u16 groupOffsets[firstCount]]
//   [u16 secondChars[pairCount]][u8 values[pairCount]]
// All values are little-endian. The first count includes the
// [Sentinel] terminator if the table has one.
//
// The data must contain exactly one table. Decoding errors wrap
// [ErrFormat], broken invariants wrap [ErrInvalidTable].
func Parse(data []byte) (*Table, error) {
	if len(data) < binaryHeaderSize {
		return nil, formatf("header needs %d bytes, got %d", binaryHeaderSize, len(data))
	}
	firstCount := int(binary.LittleEndian.Uint16(data[0 : 2]))
	pairCount  := int(binary.LittleEndian.Uint16(data[2 : 4]))
	expected := binarySize(firstCount, pairCount)
	if len(data) < expected {
		return nil, formatf("expected %d bytes, got only %d", expected, len(data))
	}
	if len(data) > expected {
		return nil, formatf("%d unexpected trailing bytes", len(data) - expected)
	}

	index := binaryHeaderSize
	firstChars := make([]CharCode, firstCount)
	for i := range firstChars {
		firstChars[i] = binary.LittleEndian.Uint16(data[index : ])
		index += 2
	}
	groupOffsets := make([]uint16, firstCount)
	for i := range groupOffsets {
		groupOffsets[i] = binary.LittleEndian.Uint16(data[index : ])
		index += 2
	}
	secondChars := make([]CharCode, pairCount)
	for i := range secondChars {
		secondChars[i] = binary.LittleEndian.Uint16(data[index : ])
		index += 2
	}
	values := make([]uint8, pairCount)
	copy(values, data[index : ])

	return New(firstChars, groupOffsets, secondChars, values)
}

// Same as [Parse], but reading all the data from the given reader.
func ParseFrom(reader io.Reader) (*Table, error) {
	data, err := io.ReadAll(reader)
	if err != nil { return nil, err }
	return Parse(data)
}

// Encodes the table in the binary format described in [Parse].
// The error is always nil; it's only there to satisfy
// [encoding.BinaryMarshaler].
func (self *Table) MarshalBinary() ([]byte, error) {
	firstCount, pairCount := len(self.firstChars), len(self.secondChars)
	data := make([]byte, 0, binarySize(firstCount, pairCount))
	data = binary.LittleEndian.AppendUint16(data, uint16(firstCount))
	data = binary.LittleEndian.AppendUint16(data, uint16(pairCount))
	for _, code := range self.firstChars {
		data = binary.LittleEndian.AppendUint16(data, code)
	}
	for _, offset := range self.groupOffsets {
		data = binary.LittleEndian.AppendUint16(data, offset)
	}
	for _, code := range self.secondChars {
		data = binary.LittleEndian.AppendUint16(data, code)
	}
	data = append(data, self.values...)
	return data, nil
}

// Writes the table in the binary format described in [Parse].
// Satisfies [io.WriterTo].
func (self *Table) WriteTo(writer io.Writer) (int64, error) {
	data, err := self.MarshalBinary()
	if err != nil { return 0, err }
	n, err := writer.Write(data)
	return int64(n), err
}

func binarySize(firstCount, pairCount int) int {
	return binaryHeaderSize + firstCount*4 + pairCount*3
}
