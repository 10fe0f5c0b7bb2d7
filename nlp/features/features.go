package features

// Package features maps each (sentence, position) pair to the feature
// template consumed by the sequence labeling engine. Extraction sees
// tokens only, never tags; tags are the prediction target.

import (
	"strconv"
	"unicode"

	"github.com/karim-Grid/named-entity-recognition/nlp/types"
)

// ContextFeatures are the casing predicates of a neighboring token.
type ContextFeatures struct {
	IsTitle, IsUpper bool
}

// FeatureSet is the fixed-shape per-position template. Prev is nil
// exactly when BOS holds, Next is nil exactly when EOS holds; a
// length-1 sentence has both BOS and EOS set and both neighbors nil.
type FeatureSet struct {
	Bias    float64
	Suffix3 string
	Suffix2 string
	IsUpper bool
	IsTitle bool
	IsDigit bool

	BOS  bool
	EOS  bool
	Prev *ContextFeatures
	Next *ContextFeatures
}

// Extract produces one FeatureSet per position. Pure function of the
// token slice; positions only ever look one token to either side.
func Extract(tokens []string) []*FeatureSet {
	sets := make([]*FeatureSet, len(tokens))
	for i, token := range tokens {
		f := &FeatureSet{
			Bias:    1.0,
			Suffix3: Suffix(token, 3),
			Suffix2: Suffix(token, 2),
			IsUpper: IsUpper(token),
			IsTitle: IsTitle(token),
			IsDigit: IsDigit(token),
		}
		if i > 0 {
			f.Prev = &ContextFeatures{
				IsTitle: IsTitle(tokens[i-1]),
				IsUpper: IsUpper(tokens[i-1]),
			}
		} else {
			f.BOS = true
		}
		if i < len(tokens)-1 {
			f.Next = &ContextFeatures{
				IsTitle: IsTitle(tokens[i+1]),
				IsUpper: IsUpper(tokens[i+1]),
			}
		} else {
			f.EOS = true
		}
		sets[i] = f
	}
	return sets
}

// ExtractCorpus extracts features for a whole corpus, returning feature
// sequences index-aligned with the tag sequences. This pairing is the
// exact contract the engine requires for training.
func ExtractCorpus(sentences []types.TaggedSentence) ([][]*FeatureSet, [][]string) {
	featureSets := make([][]*FeatureSet, len(sentences))
	tags := make([][]string, len(sentences))
	for i, sentence := range sentences {
		featureSets[i] = Extract(sentence.Tokens())
		tags[i] = sentence.Tags()
	}
	return featureSets, tags
}

// Features renders the name=value strings a linear engine enumerates.
// Bias is rendered as the bare name; its constant 1.0 value is the
// feature's multiplier. Key presence mirrors the struct shape: BOS is
// mutually exclusive with the prev.* pair, EOS with the next.* pair.
func (f *FeatureSet) Features() []string {
	feats := make([]string, 0, 10)
	feats = append(feats,
		"bias",
		"word.suffix3="+f.Suffix3,
		"word.suffix2="+f.Suffix2,
		"word.is_upper="+strconv.FormatBool(f.IsUpper),
		"word.is_title="+strconv.FormatBool(f.IsTitle),
		"word.is_digit="+strconv.FormatBool(f.IsDigit),
	)
	if f.BOS {
		feats = append(feats, "BOS")
	} else {
		feats = append(feats,
			"prev.is_title="+strconv.FormatBool(f.Prev.IsTitle),
			"prev.is_upper="+strconv.FormatBool(f.Prev.IsUpper),
		)
	}
	if f.EOS {
		feats = append(feats, "EOS")
	} else {
		feats = append(feats,
			"next.is_title="+strconv.FormatBool(f.Next.IsTitle),
			"next.is_upper="+strconv.FormatBool(f.Next.IsUpper),
		)
	}
	return feats
}

// Suffix returns the last n runes of s, or all of s when shorter.
// Runes, not bytes: tweets are not ASCII.
func Suffix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// IsUpper reports whether s has at least one cased rune and no
// lowercase or titlecase rune. Unicode-aware on purpose: an ASCII-only
// check diverges on non-ASCII tweet text.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// IsTitle reports whether s follows the title-case convention: within
// each run of cased runes the first is upper/title case and the rest
// are lowercase, with at least one cased rune overall.
func IsTitle(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

// IsDigit reports whether s is non-empty and all decimal digits.
func IsDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
