package protocol

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// frameTerminator ends every frame on a stream transport
const frameTerminator = "\n\n"

// ScanFrames is a bufio.SplitFunc that splits a stream on blank lines
func ScanFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.Index(data, []byte(frameTerminator)); i >= 0 {
		return i + len(frameTerminator), data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

// NewFrameScanner returns a scanner that yields one frame per Scan()
func NewFrameScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Split(ScanFrames)
	return s
}

// WriteFrame writes the message followed by the frame terminator. Blank lines
// inside the message are collapsed so the message stays a single frame.
func WriteFrame(w io.Writer, msg string) error {
	msg = strings.TrimRight(msg, "\n")
	for strings.Contains(msg, frameTerminator) {
		msg = strings.ReplaceAll(msg, frameTerminator, "\n")
	}

	_, err := io.WriteString(w, msg+frameTerminator)
	return err
}
