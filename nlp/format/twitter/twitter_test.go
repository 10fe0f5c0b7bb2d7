package twitter

import (
	"errors"
	"strings"
	"testing"

	"github.com/karim-Grid/named-entity-recognition/nlp/types"
)

func TestReadNormalizesAndSplitsSentences(t *testing.T) {
	input := "http://x.co O\n@bob B-person\nHi O\n\nTom B-person\n"

	sentences, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}

	first := sentences[0]
	expectedTokens := []string{URLToken, UserToken, "Hi"}
	expectedTags := []string{"O", "O", "O"}
	if len(first) != 3 {
		t.Fatalf("Expected 3 tokens in first sentence, got %d", len(first))
	}
	for i, tok := range first {
		if tok.Token != expectedTokens[i] {
			t.Errorf("Expected token %s at %d, got %s", expectedTokens[i], i, tok.Token)
		}
		if tok.Tag != expectedTags[i] {
			t.Errorf("Expected tag %s at %d, got %s", expectedTags[i], i, tok.Tag)
		}
	}

	second := sentences[1]
	expected := types.TaggedSentence{{Token: "Tom", Tag: "B-person"}}
	if !second.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, second)
	}
}

func TestReadAlignedNonEmpty(t *testing.T) {
	input := "a O\nb B-other\n\n\n\nc O\n\n"

	sentences, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}
	for i, sentence := range sentences {
		if len(sentence) == 0 {
			t.Errorf("Sentence %d is empty", i)
		}
		if len(sentence.Tokens()) != len(sentence.Tags()) {
			t.Errorf("Sentence %d tokens/tags misaligned", i)
		}
	}
}

func TestReadNoTrailingBlankLine(t *testing.T) {
	sentences, err := Read(strings.NewReader("Tom B-person"))
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 1 || len(sentences[0]) != 1 {
		t.Fatalf("Expected a single 1-token sentence, got %v", sentences)
	}
}

func TestReadMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("@john_doe is great\n"))
	if err == nil {
		t.Fatal("Expected parse error for 3-field line")
	}

	_, err = Read(strings.NewReader("@john_doe\n"))
	if err == nil {
		t.Fatal("Expected parse error for 1-field line")
	}
	var malformed *MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedLineError, got %T", err)
	}
	if malformed.Line != 1 {
		t.Errorf("Expected offending line 1, got %d", malformed.Line)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	cases := []struct {
		token, expected string
	}{
		{"http://t.co/abc", URLToken},
		{"https://t.co/abc", URLToken},
		{"@john_doe", UserToken},
		{URLToken, URLToken},
		{UserToken, UserToken},
		{"hello", "hello"},
		{"httpish", "httpish"},
	}
	for _, c := range cases {
		once := NormalizeToken(c.token)
		if once != c.expected {
			t.Errorf("NormalizeToken(%q) = %q, expected %q", c.token, once, c.expected)
		}
		if twice := NormalizeToken(once); twice != once {
			t.Errorf("Normalization not idempotent for %q: %q -> %q", c.token, once, twice)
		}
	}
}

func TestReadTokens(t *testing.T) {
	input := "@bob\nsays\nhttp://x.co\n\nHi\n"
	sentences, err := ReadTokens(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}
	expected := []string{UserToken, "says", URLToken}
	for i, tok := range sentences[0] {
		if tok != expected[i] {
			t.Errorf("Expected token %s at %d, got %s", expected[i], i, tok)
		}
	}

	if _, err := ReadTokens(strings.NewReader("two fields\n")); err == nil {
		t.Error("Expected parse error for tagged line in tokens-only input")
	}
}
