package types

import "reflect"

// TaggedToken is one token of a tweet paired with its BIO tag.
type TaggedToken struct {
	Token, Tag string
}

// TaggedSentence is one tweet: tokens paired 1:1 by index with tags.
// Sentences are independent; there is no cross-sentence state.
type TaggedSentence []TaggedToken

func (b TaggedSentence) Tokens() []string {
	retval := make([]string, len(b))
	for i, val := range b {
		retval[i] = val.Token
	}
	return retval
}

func (b TaggedSentence) Tags() []string {
	retval := make([]string, len(b))
	for i, val := range b {
		retval[i] = val.Tag
	}
	return retval
}

func (b TaggedSentence) Equal(other TaggedSentence) bool {
	return reflect.DeepEqual(b, other)
}
