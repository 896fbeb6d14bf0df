package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kumarlokesh/triex/internal/trie"
)

func main() {
	help := flag.Bool("help", false, "Show help message")
	caseInsensitive := flag.Bool("i", false, "Fold keys and queries to lower case")

	flag.Parse()

	if *help || flag.NArg() == 0 {
		showHelp()
		if *help {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var opts []trie.Option[string]
	if *caseInsensitive {
		opts = append(opts, trie.WithCaseInsensitive[string]())
	}
	store := trie.New(opts...)

	if err := loadPairs(store, os.Stdin); err != nil {
		logger.Error("failed to load key/value pairs from stdin", "error", err)
		log.Fatalf("load: %v", err)
	}

	args := flag.Args()
	subcommand := args[0]
	subcommandArgs := args[1:]
	switch subcommand {
	case "get":
		handleGet(store, subcommandArgs)
	case "prefix":
		handlePrefix(store, subcommandArgs)
	case "fuzzy":
		handleFuzzy(store, subcommandArgs)
	case "stats":
		handleStats(store)
	default:
		log.Printf("unknown command: %s\n\n", subcommand)
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	helpText := `trieutil - compacted fuzzy-search trie demo

Usage:
  trieutil [flags] <command> [arguments] < pairs.tsv

Pairs are read from stdin, one "key\tvalue" per line.

Flags:
  -i       Fold keys and queries to lower case
  --help   Show this help message

Commands:
  get <key>                        Exact lookup
  prefix <prefix>                  Enumerate keys under a prefix
  fuzzy <query> <tolerance> <strategy>
                                    Fuzzy substring search; strategy is one
                                    of LIBERAL, MATCH_PREFIX, ANCHOR_TO_PREFIX,
                                    FUZZY_POSTFIX, TYPO, SWAP, WILDCARD
  stats                             Report node/key counts
`
	fmt.Print(helpText)
}

func loadPairs(store *trie.Store[string], r *os.File) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed line %q: expected key\\tvalue", line)
		}
		if _, _, err := store.Put(parts[0], parts[1]); err != nil {
			return fmt.Errorf("put %q: %w", parts[0], err)
		}
	}
	return scanner.Err()
}

func handleGet(store *trie.Store[string], args []string) {
	if len(args) == 0 {
		log.Fatal("get: requires a key")
	}
	value, ok, err := store.Get(args[0])
	if err != nil {
		log.Fatalf("get: %v", err)
	}
	if !ok {
		fmt.Println("(not found)")
		return
	}
	fmt.Println(value)
}

func handlePrefix(store *trie.Store[string], args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	it := store.MatchByPrefix(prefix)
	for it.Next() {
		fmt.Printf("%s\t%s\n", it.Key(), it.Value())
	}
}

func handleFuzzy(store *trie.Store[string], args []string) {
	if len(args) < 3 {
		log.Fatal("fuzzy: requires <query> <tolerance> <strategy>")
	}
	query := args[0]
	tolerance, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("fuzzy: invalid tolerance %q: %v", args[1], err)
	}
	strategy, err := parseStrategy(args[2])
	if err != nil {
		log.Fatalf("fuzzy: %v", err)
	}

	it, err := store.MatchBySubstringFuzzy(query, tolerance, strategy)
	if err != nil {
		log.Fatalf("fuzzy: %v", err)
	}
	for it.Next() {
		r := it.Result()
		fmt.Printf("%s\t%s\tmatches=%d errors=%d word=%q whole_word=%v\n",
			r.Sequence, r.Value, r.NumberOfMatches, r.NumberOfErrors, r.MatchedWord, r.MatchedWholeWord)
	}
}

func handleStats(store *trie.Store[string]) {
	stats := store.Stats()
	fmt.Printf("nodes=%d keys=%d max_depth=%d\n", stats.Nodes, stats.Keys, stats.MaxDepth)
}

func parseStrategy(s string) (trie.MatchingStrategy, error) {
	switch strings.ToUpper(s) {
	case "LIBERAL":
		return trie.Liberal, nil
	case "MATCH_PREFIX":
		return trie.MatchPrefix, nil
	case "ANCHOR_TO_PREFIX", "FUZZY_PREFIX":
		return trie.AnchorToPrefix, nil
	case "FUZZY_POSTFIX":
		return trie.FuzzyPostfix, nil
	case "TYPO":
		return trie.Typo, nil
	case "SWAP":
		return trie.Swap, nil
	case "WILDCARD":
		return trie.Wildcard, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}
