package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/hashsplit"
	"github.com/hupe1980/hashsplit/searcher"
	"github.com/hupe1980/hashsplit/termdict/memdict"
)

func main() {
	ctx := context.Background()

	sp, err := hashsplit.New(
		hashsplit.WithChunkLength(4),
		hashsplit.WithPrefixes("abcd"),
		hashsplit.WithFixedSize(16),
	)
	if err != nil {
		log.Fatal(err)
	}

	hashes := []string{
		"0000000000000000",
		"0000111100000000",
		"0000111100010000",
		"1111000000000000",
	}

	fmt.Println("--- Index ---")

	dict := memdict.New()
	for i, h := range hashes {
		dict.AddTerms("hash", uint32(i), sp.Terms(h)...)
		fmt.Printf("doc %d: %v\n", i, sp.Terms(h))
	}

	s := searcher.New(dict)

	fmt.Println("\n--- Prefix query ---")

	result, err := s.Search(ctx, sp.PrefixFilter("hash", "00001111"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("prefix 00001111:", result.ToArray())

	fmt.Println("\n--- Wildcard query ---")

	result, err = s.Search(ctx, sp.WildcardFilter("hash", "0000????0001*"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("pattern 0000????0001*:", result.ToArray())

	fmt.Println("\n--- Range query ---")

	lower, upper := "0000111100000000", "0000222200000000"
	rf, err := sp.RangeFilter("hash", &lower, &upper, true, true)
	if err != nil {
		log.Fatal(err)
	}
	result, err = s.Search(ctx, rf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("range [%s, %s]: %v\n", lower, upper, result.ToArray())
}
