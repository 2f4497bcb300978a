package microdom

import "fmt"

// A ParseError describes a syntax problem in XML input. Line is 1-based;
// Offset is the byte offset the tokenizer had reached when it failed.
type ParseError struct {
	Line    int
	Offset  int64
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("microdom: parsing error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("microdom: parsing error at offset %d: %s", e.Offset, e.Message)
}
