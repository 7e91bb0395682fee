package hashsplit_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/hashsplit"
)

// ExampleSplitter_Terms demonstrates chunked encoding of a value.
func ExampleSplitter_Terms() {
	sp, err := hashsplit.New(
		hashsplit.WithChunkLength(2),
		hashsplit.WithPrefixes("ab"),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(sp.Terms("0011"))
	fmt.Println(sp.Terms("001")) // short final chunk stays unpadded
	// Output:
	// [a00 b11]
	// [a00 b1]
}

// ExampleSplitter_SearchTokens demonstrates wildcard pattern decomposition
// with a known value length.
func ExampleSplitter_SearchTokens() {
	sp, err := hashsplit.New(
		hashsplit.WithChunkLength(4),
		hashsplit.WithPrefixes("abcd"),
		hashsplit.WithFixedSize(12),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, tok := range sp.SearchTokens("0*12222") {
		fmt.Printf("%s %s\n", tok.Term, tok.Kind)
	}
	// Output:
	// a0??? wildcard
	// b???1 wildcard
	// c2222 exact
}

// ExampleSplitter_ExactFilter demonstrates composing an exact-match filter.
func ExampleSplitter_ExactFilter() {
	sp, err := hashsplit.New(
		hashsplit.WithChunkLength(2),
		hashsplit.WithPrefixes("ab"),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(sp.ExactFilter("hash", "0011"))
	// Output: (hash:a00 AND hash:b11)
}
