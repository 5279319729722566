package suggest

// Alphabets used by the enumeration strategies.
var (
	// insertAlphabet is '"' through '@' followed by 'a' through 'z'.
	// Uppercase letters are never tried.
	insertAlphabet = buildAlphabet([2]rune{'"', '@'}, [2]rune{'a', 'z'})
	// substituteAlphabet is 'a' through 'z'.
	substituteAlphabet = buildAlphabet([2]rune{'a', 'z'})
)

// maxEdit bounds how many contiguous characters a strategy inserts or removes.
const maxEdit = 3

func buildAlphabet(ranges ...[2]rune) []rune {
	var out []rune
	for _, rg := range ranges {
		for r := rg[0]; r <= rg[1]; r++ {
			out = append(out, r)
		}
	}
	return out
}

// probe decides whether a candidate is an acceptable hit.
type probe func(candidate []rune) bool

// insertions tries every run of k characters from alphabet inserted into
// word at pos, in nested-loop order with the leftmost inserted character
// outermost. It returns the first candidate accepted by p.
func insertions(word []rune, pos, k int, alphabet []rune, p probe) (string, bool) {
	if k <= 0 || pos < 0 || pos > len(word) || len(alphabet) == 0 {
		return "", false
	}
	buf := make([]rune, 0, len(word)+k)
	buf = append(buf, word[:pos]...)
	for i := 0; i < k; i++ {
		buf = append(buf, alphabet[0])
	}
	buf = append(buf, word[pos:]...)

	idx := make([]int, k)
	for {
		if p(buf) {
			return string(buf), true
		}
		// odometer: bump the rightmost inserted slot first
		j := k - 1
		for ; j >= 0; j-- {
			idx[j]++
			if idx[j] < len(alphabet) {
				buf[pos+j] = alphabet[idx[j]]
				break
			}
			idx[j] = 0
			buf[pos+j] = alphabet[0]
		}
		if j < 0 {
			return "", false
		}
	}
}

// deletion returns word with k characters removed starting at pos.
func deletion(word []rune, pos, k int) ([]rune, bool) {
	if k <= 0 || pos < 0 || pos+k > len(word) {
		return nil, false
	}
	out := make([]rune, 0, len(word)-k)
	out = append(out, word[:pos]...)
	out = append(out, word[pos+k:]...)
	return out, true
}

// substitutions tries every character of alphabet at pos.
func substitutions(word []rune, pos int, alphabet []rune, p probe) (string, bool) {
	if pos < 0 || pos >= len(word) {
		return "", false
	}
	buf := make([]rune, len(word))
	copy(buf, word)
	for _, r := range alphabet {
		buf[pos] = r
		if p(buf) {
			return string(buf), true
		}
	}
	return "", false
}
