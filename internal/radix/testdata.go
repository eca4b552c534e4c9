package radix

import (
	"crypto/rand"

	"github.com/go-faker/faker/v4"
)

// randomByte returns one cryptographically random byte, falling back to 0
// only if the platform's CSPRNG is unavailable (mirrors
// internal/unittest_helpers.go's randomByte in the teacher).
func randomByte() byte {
	buf := make([]byte, 1)
	if _, err := rand.Read(buf); err != nil {
		return 0
	}
	return buf[0]
}

// randomBytes returns n random bytes, none of them 0x00, so they are safe
// to use as post-xlat branch keys in tests without accidentally colliding
// with the separator/terminator value.
func randomBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		b := randomByte()
		for b == 0x00 {
			b = randomByte()
		}
		out[i] = b
	}
	return out
}

// randomQuote returns a random sentence, used as filler leaf values in
// table-driven node tests (internal/unittest_helpers.go's randomQuote).
func randomQuote() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}
	if err := faker.FakeData(&quote); err != nil {
		return "quote"
	}
	return quote.Sentence
}

// randomLeaves builds n leaves with distinct single-byte keys drawn from
// randomBytes, paired with random quote values.
func randomLeaves(n int) []*Leaf[string] {
	out := make([]*Leaf[string], n)
	seen := map[byte]bool{}
	for i := 0; i < n; i++ {
		b := randomBytes(1)[0]
		for seen[b] {
			b = randomBytes(1)[0]
		}
		seen[b] = true
		out[i] = NewLeaf[string]([]byte{b}, randomQuote())
	}
	return out
}
