package pipeline

// Typing Polish without a Polish keyboard drops the diacritics: "zolw" for
// "żółw". Each plain letter may stand for one or two accented ones, so the
// variant set is the cartesian product over the word's substitutable
// positions, capped to keep pathological inputs cheap.

var diacriticVariants = map[rune][]rune{
	'a': {'ą'},
	'c': {'ć'},
	'e': {'ę'},
	'l': {'ł'},
	'n': {'ń'},
	'o': {'ó'},
	's': {'ś'},
	'z': {'ź', 'ż'},
}

// GeneratePolishVariants returns diacritic permutations of word, excluding
// the word itself, at most max entries
func GeneratePolishVariants(word string, max int) []string {
	if max <= 0 {
		return nil
	}

	candidates := [][]rune{[]rune(word)}
	for i, r := range []rune(word) {
		subs, ok := diacriticVariants[r]
		if !ok {
			continue
		}
		grown := candidates
		for _, base := range candidates {
			for _, sub := range subs {
				if len(grown)-1 >= max {
					break
				}
				next := make([]rune, len(base))
				copy(next, base)
				next[i] = sub
				grown = append(grown, next)
			}
		}
		candidates = grown
	}

	out := make([]string, 0, len(candidates)-1)
	for _, c := range candidates[1:] {
		out = append(out, string(c))
	}
	return out
}
