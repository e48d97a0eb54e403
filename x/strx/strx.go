package strx

// Fields splits s on runs of ASCII space and tab, appending at most max
// fields to dst. It allocates nothing beyond dst's growth, which matters in
// the command parser's per-line hot path on MCU builds.
func Fields(dst []string, s string, max int) []string {
	i := 0
	for i < len(s) && len(dst) < max {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		start := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		if i > start {
			dst = append(dst, s[start:i])
		}
	}
	return dst
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }
