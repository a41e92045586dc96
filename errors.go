package kerntab

import "errors"
import "fmt"

// Returned (wrapped) by [New], [Parse] and [ParseCSource] when the
// table data breaks any of the table invariants.
var ErrInvalidTable = errors.New("invalid kerning table")

// Returned (wrapped) by [Parse] and [ParseCSource] when the input
// can't be decoded at all.
var ErrFormat = errors.New("kerning table format error")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: " + format, append([]any{ErrInvalidTable}, args...)...)
}

func formatf(format string, args ...any) error {
	return fmt.Errorf("%w: " + format, append([]any{ErrFormat}, args...)...)
}
