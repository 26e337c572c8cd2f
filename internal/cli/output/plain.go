package output

import (
	"fmt"
	"io"
)

// PlainFormatter writes one line per value: each element of a string slice,
// a string as is, anything else through fmt.
type PlainFormatter struct{}

// Format writes data as plain lines.
func (f *PlainFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case []string:
		for _, s := range v {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
