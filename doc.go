// Package palindromer is a toolkit for growing palindromic sentences out of a
// plain word list.
//
// 🚀 What is palindromer?
//
//	A dictionary-driven palindrome generator that brings together:
//		• Tries: a forward and a backward letter trie built from the dictionary
//		• Search: an exhaustive depth-bounded walk and random generative trials
//		• Filter: coherence heuristics, scoring and a token budget
//		• Output: text files or SQLite run history
//		• Auto: an iterative loop that feeds the best line back as input
//
// ✨ How does it work?
//
//	The input carries a center marker '|'. The search extends the text left of
//	the marker to the right using the forward trie, and the text right of it
//	to the left using the backward trie, one shared letter at a time. Both
//	halves always carry the same letters, so every result reads the same in
//	both directions once spaces are ignored.
//
// Packages:
//
//	trie/    - A..Z trie with circular and paired child iteration
//	search/  - Exhaustive and Generative strategies, candidate Set
//	lexicon/ - dictionary loading into the trie pair
//	filter/  - input splitting, assembly, heuristics and selection
//	output/  - text and SQLite writers
//	config/  - YAML configuration with environment overrides
//	auto/    - refinement loop with score and Gemini selectors
//	cmd/palindromer - the command line
//
// Quick example:
//
//	    WAS IT A CAR | RAC A TI SAW
//	    ──────────── ▲ ────────────
//	    forward trie │ backward trie
//
//	go install github.com/katalvlaran/palindromer/cmd/palindromer@latest
package palindromer
