package kerntab

import "sort"
import "strconv"

// A character code within the font's own encoding. Not necessarily
// ASCII or Unicode, though for most u8g2 fonts the first 256 values
// match Latin-1.
type CharCode = uint16

// Terminator used by u8g2 at the end of the first characters
// sequence. It's never a valid character and never matches.
const Sentinel CharCode = 0xFFFF

// A [Table] is a read-only kerning table using the two-level sparse
// layout from u8g2:
//  - A sorted list of first characters, optionally terminated by
//    [Sentinel].
//  - For each first character, an offset into the second characters
//    list where its group begins. The group ends at the next offset,
//    or at the end of the list for the last real entry.
//  - A list of second characters and a parallel list of kerning
//    values, in pixels.
//
// Tables are created with [New] or [Must], or loaded with [Parse]
// and [ParseCSource]. Once created they never change, so they can
// be queried from multiple goroutines without synchronization.
type Table struct {
	firstChars   []CharCode
	groupOffsets []uint16
	secondChars  []CharCode
	values       []uint8
	numFirst     int // first chars excluding the sentinel
}

// Creates a new kerning table from the given data. The slices are
// not copied, so they must not be modified after this call.
//
// The table invariants are checked and an error wrapping
// [ErrInvalidTable] is returned if any of them is broken.
func New(firstChars, groupOffsets, secondChars []CharCode, values []uint8) (*Table, error) {
	table := &Table{
		firstChars:   firstChars,
		groupOffsets: groupOffsets,
		secondChars:  secondChars,
		values:       values,
	}
	numFirst, err := table.check()
	if err != nil { return nil, err }
	table.numFirst = numFirst
	return table, nil
}

// Like [New], but panics on error. Meant for static data embedded in
// the program, where a broken table is a build problem.
func Must(firstChars, groupOffsets, secondChars []CharCode, values []uint8) *Table {
	table, err := New(firstChars, groupOffsets, secondChars, values)
	if err != nil { panic(err) }
	return table
}

// Checks all the table invariants. Tables returned by [New] are
// always valid, so this is rarely needed outside of tests.
func (self *Table) Validate() error {
	_, err := self.check()
	return err
}

// returns the number of first chars without the sentinel, or an error
func (self *Table) check() (int, error) {
	numEntries := len(self.firstChars)
	if numEntries != len(self.groupOffsets) {
		return 0, invalidf("%d first chars but %d group offsets", numEntries, len(self.groupOffsets))
	}
	numPairs := len(self.secondChars)
	if numPairs != len(self.values) {
		return 0, invalidf("%d second chars but %d kerning values", numPairs, len(self.values))
	}
	if numPairs > 0xFFFF { return 0, invalidf("too many pairs (%d)", numPairs) }
	if numEntries > 0xFFFF { return 0, invalidf("too many first chars (%d)", numEntries) }

	// first chars must be strictly ascending, sentinel only at the end
	numFirst := numEntries
	if numEntries > 0 && self.firstChars[numEntries - 1] == Sentinel {
		numFirst = numEntries - 1
		if int(self.groupOffsets[numEntries - 1]) != numPairs {
			return 0, invalidf("sentinel group offset is %d, expected %d", self.groupOffsets[numEntries - 1], numPairs)
		}
	}
	for i := 0; i < numFirst; i++ {
		if self.firstChars[i] == Sentinel {
			return 0, invalidf("sentinel found at position %d before the end", i)
		}
		if i > 0 && self.firstChars[i] <= self.firstChars[i - 1] {
			return 0, invalidf("first chars not strictly ascending at position %d", i)
		}
	}

	// group offsets must be non-decreasing and in range
	if numEntries > 0 && self.groupOffsets[0] != 0 {
		return 0, invalidf("first group offset is %d instead of 0", self.groupOffsets[0])
	}
	for i, offset := range self.groupOffsets {
		if int(offset) > numPairs {
			return 0, invalidf("group offset %d out of range at position %d", offset, i)
		}
		if i > 0 && offset < self.groupOffsets[i - 1] {
			return 0, invalidf("group offsets decreasing at position %d", i)
		}
	}
	if numFirst == 0 && numPairs > 0 {
		return 0, invalidf("%d pairs without any first char", numPairs)
	}

	return numFirst, nil
}

// Returns the kerning value for the given pair, or zero if the pair
// is not in the table. Any codes are accepted, including [Sentinel].
func (self *Table) Lookup(first, second CharCode) uint8 {
	start, end, found := self.groupBounds(first)
	if !found { return 0 }

	// groups are not sorted, linear scan
	for j := start; j < end; j++ {
		if self.secondChars[j] == second { return self.values[j] }
	}
	return 0
}

// Same as [Table.Lookup], but with runes. Runes that can't be
// represented as a [CharCode] always return zero.
func (self *Table) LookupRune(prev, curr rune) uint8 {
	if prev < 0 || prev >= rune(Sentinel) { return 0 }
	if curr < 0 || curr >= rune(Sentinel) { return 0 }
	return self.Lookup(CharCode(prev), CharCode(curr))
}

// Returns the second chars and kerning values registered for the
// given first char. The returned slices must not be modified. If
// the first char is not in the table, both slices will be nil.
func (self *Table) Group(first CharCode) ([]CharCode, []uint8) {
	start, end, found := self.groupBounds(first)
	if !found { return nil, nil }
	return self.secondChars[start : end : end], self.values[start : end : end]
}

// Calls the given function for every pair in the table, in table
// order.
func (self *Table) EachPair(fn func(first, second CharCode, value uint8)) {
	for i := 0; i < self.numFirst; i++ {
		start, end := self.groupRange(i)
		for j := start; j < end; j++ {
			fn(self.firstChars[i], self.secondChars[j], self.values[j])
		}
	}
}

// Returns the number of first chars in the table, without counting
// the sentinel.
func (self *Table) NumFirstChars() int { return self.numFirst }

// Returns the number of (second char, kerning value) pairs.
func (self *Table) NumPairs() int { return len(self.secondChars) }

// Returns whether the first chars sequence is terminated by [Sentinel].
func (self *Table) HasSentinel() bool {
	return self.numFirst < len(self.firstChars)
}

// Returns a short description of the table, like "kerntab.Table{19 first chars, 71 pairs}".
func (self *Table) String() string {
	return "kerntab.Table{" + strconv.Itoa(self.numFirst) + " first chars, " +
		strconv.Itoa(len(self.secondChars)) + " pairs}"
}

// ---- helpers ----

func (self *Table) groupBounds(first CharCode) (int, int, bool) {
	// the sentinel is excluded from the search range, so it never matches
	realChars := self.firstChars[ : self.numFirst]
	i := sort.Search(len(realChars), func(i int) bool { return realChars[i] >= first })
	if i >= len(realChars) || realChars[i] != first { return 0, 0, false }
	start, end := self.groupRange(i)
	return start, end, true
}

func (self *Table) groupRange(i int) (int, int) {
	start := int(self.groupOffsets[i])
	if i + 1 < len(self.groupOffsets) {
		return start, int(self.groupOffsets[i + 1])
	}
	return start, len(self.secondChars)
}
