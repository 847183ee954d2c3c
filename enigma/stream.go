package enigma

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// fold upper-cases r and reports whether it is a letter of the machine.
func fold(r rune) (rune, bool) {
	r = unicode.ToUpper(r)
	return r, r >= 'A' && r <= 'Z'
}

// Normalize upper-cases s and drops everything that is not a letter A..Z, the
// way an operator would before typing a message in.
func Normalize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r, ok := fold(r); ok {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Pipe returns a reader of the text read from rdr, normalized and passed
// through the machine.  When group is greater than zero the output is split
// into space separated groups of that many letters.
//
// The machine belongs to the pipe's goroutine until the returned reader hits
// EOF or is closed; the caller must not use it before then.
func (m *Machine) Pipe(rdr io.Reader, group int) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()

	go func() {
		bRdr := bufio.NewReader(rdr)
		bWrtr := bufio.NewWriter(rWrtr)
		cnt := 0

		for {
			r, _, err := bRdr.ReadRune()
			if err == io.EOF {
				break
			}
			if err != nil {
				rWrtr.CloseWithError(err)
				return
			}
			r, ok := fold(r)
			if !ok {
				continue
			}
			c, err := m.EncodeChar(r)
			if err != nil {
				rWrtr.CloseWithError(err)
				return
			}
			if group > 0 && cnt > 0 && cnt%group == 0 {
				if err = bWrtr.WriteByte(' '); err != nil {
					rWrtr.CloseWithError(err)
					return
				}
			}
			if _, err = bWrtr.WriteRune(c); err != nil {
				rWrtr.CloseWithError(err)
				return
			}
			cnt++
		}

		rWrtr.CloseWithError(bWrtr.Flush())
	}()

	return rRdr
}
