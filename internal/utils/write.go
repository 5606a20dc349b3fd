package utils

import "io"

// WriteLine writes p to w as raw bytes followed by a single '\n'.
//
// If wrap is positive, a '\n' is also inserted after every wrap bytes of p,
// so no output line is longer than wrap. An empty p writes only the newline.
func WriteLine(w io.Writer, p []byte, wrap int) error {
	if wrap <= 0 || len(p) <= wrap {
		return writeFull(w, append(p[:len(p):len(p)], '\n'))
	}

	out := make([]byte, 0, len(p)+len(p)/wrap+1)
	for len(p) > wrap {
		out = append(out, p[:wrap]...)
		out = append(out, '\n')
		p = p[wrap:]
	}
	out = append(out, p...)
	out = append(out, '\n')
	return writeFull(w, out)
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}
