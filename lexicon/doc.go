// Package lexicon loads a word list into the forward/backward trie pair the
// palindrome searches run on.
//
// A dictionary file holds one word per line. Each line is trimmed, upper-cased
// and inserted as written into Lexicon.Forward and reversed into
// Lexicon.Backward. Blank lines and lines that still hold anything other than
// A–Z after normalization (digits, apostrophes, multi-word phrases) are skipped
// and counted in Lexicon.Skipped.
//
// Options:
//
//   - WithLatin1()   decode the input as ISO-8859-1 instead of UTF-8
//   - WithLogger(l)  zap logger for the load summary
//
// Errors:
//
//   - os errors from LoadFile (wrapped, test with errors.Is(err, fs.ErrNotExist))
//   - scanner errors such as bufio.ErrTooLong for absurdly long lines
//   - ErrInvalidWord from FromWords
package lexicon
