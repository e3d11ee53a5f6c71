package library

import (
	"bufio"
	"io"
)

const (
	initialBufSize = 64 * 1024

	// maxLineSize caps one catalog record. Longer lines are skipped and
	// counted instead of failing the whole load.
	maxLineSize = 8 * 1024 * 1024
)

// lineReader yields non-empty lines from a JSONL stream. Oversized lines
// are consumed and dropped. After iteration, Err reports I/O failures
// other than EOF.
type lineReader struct {
	r        *bufio.Reader
	maxLen   int // 0 means maxLineSize
	buf      []byte
	err      error
	line     int // 1-based number of the last line returned or skipped
	oversize int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r:   bufio.NewReaderSize(r, initialBufSize),
		buf: make([]byte, 0, initialBufSize),
	}
}

// next returns the next non-empty line and true, or (nil, false) at EOF.
// The returned slice is only valid until the following call.
func (lr *lineReader) next() ([]byte, bool) {
	for {
		line, skipped, err := lr.readLine()
		if err != nil {
			if err != io.EOF {
				lr.err = err
			}
			return nil, false
		}
		if skipped {
			lr.oversize++
			continue
		}
		if len(line) > 0 {
			return line, true
		}
	}
}

// Err returns the first non-EOF read error.
func (lr *lineReader) Err() error {
	return lr.err
}

// readLine accumulates one full line. skipped is true when the line
// exceeded the size limit and was discarded.
func (lr *lineReader) readLine() (line []byte, skipped bool, err error) {
	lr.buf = lr.buf[:0]
	limit := maxLineSize
	if lr.maxLen > 0 {
		limit = lr.maxLen
	}

	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			if err == io.EOF && (len(lr.buf) > 0 || skipped) {
				break
			}
			return nil, false, err
		}
		if !skipped {
			lr.buf = append(lr.buf, chunk...)
			if len(lr.buf) > limit {
				skipped = true
				lr.buf = lr.buf[:0]
			}
		}
		if !isPrefix {
			break
		}
	}

	lr.line++
	if skipped {
		return nil, true, nil
	}
	return lr.buf, false, nil
}
