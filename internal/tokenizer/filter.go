package tokenizer

// Trim bytes stripped from both ends of a token. The set is byte-wise, so each
// byte of the UTF-8 em dash is a member on its own.
const Trim = ".,:;!?()[]{}*&^%$#@—-\"' "

var trimSet = func() (set [256]bool) {
	for i := 0; i < len(Trim); i++ {
		set[Trim[i]] = true
	}
	return set
}()

// IsTrim reports whether c is stripped from token boundaries.
func IsTrim(c byte) bool {
	return trimSet[c]
}

// Filter normalizes a raw token into a frequency key. It strips trim bytes from
// both ends and folds ASCII upper case to lower case. The second result is
// false when nothing is left.
func Filter(raw string) (string, bool) {
	left := 0
	for left < len(raw) && IsTrim(raw[left]) {
		left++
	}
	if left == len(raw) {
		return "", false
	}

	right := len(raw) - 1
	for IsTrim(raw[right]) {
		right--
	}

	word := raw[left : right+1]
	for i := 0; i < len(word); i++ {
		if c := word[i]; 'A' <= c && c <= 'Z' {
			return lower(word, i), true
		}
	}
	return word, true
}

// lower folds word starting at the first upper-case byte at index from.
func lower(word string, from int) string {
	b := []byte(word)
	for i := from; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
