package pwz

import (
	"bufio"
	"fmt"
	"io"
)

// tokenCache reads input lazily, one rune per token, and remembers every token
// read so far. Lexemes are cut from the cache.
type tokenCache struct {
	reader io.RuneReader
	runes  []rune
	eof    bool
}

func newTokenCache(r io.Reader) *tokenCache {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &tokenCache{reader: rr}
}

// at returns the token at pos. atEnd is set for the first position behind the
// input, in which case the token is empty.
func (c *tokenCache) at(pos int) (string, bool, error) {
	for !c.eof && len(c.runes) <= pos {
		r, _, err := c.reader.ReadRune()
		if err == io.EOF {
			c.eof = true
			break
		} else if err != nil {
			return "", false, fmt.Errorf("reading input at position %d: %w", len(c.runes), err)
		}
		c.runes = append(c.runes, r)
	}
	if pos < len(c.runes) {
		return string(c.runes[pos]), false, nil
	}
	return "", true, nil
}

// slice returns the input between positions from and to, which must have been
// read already.
func (c *tokenCache) slice(from, to int) string {
	if to > len(c.runes) {
		to = len(c.runes)
	}
	if from >= to {
		return ""
	}
	return string(c.runes[from:to])
}
