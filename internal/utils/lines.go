package utils

// StripLineBreaks returns p with every '\r' and '\n' removed. p is not
// modified; a new slice is returned only when something was removed.
func StripLineBreaks(p []byte) []byte {
	i := 0
	for ; i < len(p); i++ {
		if p[i] == '\r' || p[i] == '\n' {
			break
		}
	}
	if i == len(p) {
		return p
	}

	out := make([]byte, i, len(p))
	copy(out, p[:i])
	for _, c := range p[i:] {
		if c != '\r' && c != '\n' {
			out = append(out, c)
		}
	}
	return out
}
