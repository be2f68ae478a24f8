package otp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var labelColor = color.New(color.FgCyan, color.Bold)

// PrettyPrint writes label followed by two aligned rows: the symbols of text
// and their alphabet indexes. Symbols outside the alphabet show a "?" index.
func (e *Engine) PrettyPrint(w io.Writer, label, text string) error {
	width := len(strconv.Itoa(len(e.alphabet) - 1))

	var symbols, indexes strings.Builder
	for i, r := range text {
		if i > 0 {
			symbols.WriteByte(' ')
			indexes.WriteByte(' ')
		}
		idx := "?"
		if n, ok := e.index[r]; ok {
			idx = strconv.Itoa(n)
		}
		fmt.Fprintf(&symbols, "%*s", width, string(r))
		fmt.Fprintf(&indexes, "%*s", width, idx)
	}

	if _, err := labelColor.Fprintf(w, "%s:\n", label); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", symbols.String(), indexes.String())
	return err
}
