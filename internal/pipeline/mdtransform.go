package pipeline

import "bytes"

var (
	crlf = []byte("\r\n")
	cr   = []byte("\r")
	lf   = []byte("\n")
)

// NormalizeLineEndings rewrites \r\n and lone \r as \n, so code blocks and
// shell transcripts split on one terminator. Input without \r is returned
// as is.
func NormalizeLineEndings(content []byte) []byte {
	if bytes.IndexByte(content, '\r') < 0 {
		return content
	}
	return bytes.ReplaceAll(bytes.ReplaceAll(content, crlf, lf), cr, lf)
}
