package twitter

// Package twitter reads the whitespace-delimited token/tag corpus
// format of twitter NER data sets: each non-blank line holds one token
// and one BIO tag, blank lines delimit tweets.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karim-Grid/named-entity-recognition/nlp/types"
)

const (
	// URLToken replaces any token starting with http:// or https://.
	URLToken = "<URL>"
	// UserToken replaces any @-mention token.
	UserToken = "<USR>"
)

// MalformedLineError is fatal: skipping a bad line would shift the
// token/tag alignment of everything after it.
type MalformedLineError struct {
	Line     int
	Text     string
	Expected int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed corpus line %d: %q: got %d field(s), expected %d",
		e.Line, e.Text, len(strings.Fields(e.Text)), e.Expected)
}

// NormalizeToken maps URLs and user mentions to their sentinel tokens.
// The sentinels themselves match neither prefix, so normalization is
// idempotent.
func NormalizeToken(token string) string {
	if strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://") {
		return URLToken
	}
	if strings.HasPrefix(token, "@") {
		return UserToken
	}
	return token
}

// Read parses a token/tag stream into tagged sentences. Consecutive
// blank lines are idempotent; an empty accumulator is never emitted.
func Read(reader io.Reader) ([]types.TaggedSentence, error) {
	var (
		sentences []types.TaggedSentence
		current   types.TaggedSentence
	)
	scanner := bufio.NewScanner(reader)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			if len(current) > 0 {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &MalformedLineError{lineNum, line, 2}
		}
		current = append(current, types.TaggedToken{
			Token: NormalizeToken(fields[0]),
			Tag:   fields[1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

func ReadFile(filename string) ([]types.TaggedSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

// ReadTokens parses the untagged variant of the format: one token per
// non-blank line, blank lines delimiting tweets. Used at prediction
// time, when tags are what the model produces.
func ReadTokens(reader io.Reader) ([][]string, error) {
	var (
		sentences [][]string
		current   []string
	)
	scanner := bufio.NewScanner(reader)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			if len(current) > 0 {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 1 {
			return nil, &MalformedLineError{lineNum, line, 1}
		}
		current = append(current, NormalizeToken(fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

func ReadTokensFile(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadTokens(file)
}

func Write(writer io.Writer, sentences []types.TaggedSentence) error {
	for _, sentence := range sentences {
		for _, tok := range sentence {
			if _, err := fmt.Fprintf(writer, "%s\t%s\n", tok.Token, tok.Tag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, sentences []types.TaggedSentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if err := Write(buf, sentences); err != nil {
		return err
	}
	return buf.Flush()
}
