// Package output persists the lines of a palindrome run.
//
//   - TextWriter: one line per palindrome, newline terminated.
//   - SQLiteWriter: a runs table (one row per run, keyed by a UUID) and a
//     palindromes table (one row per line, in output order). Uses the pure-Go
//     modernc.org/sqlite driver, so no cgo is needed.
//
// Open picks the writer from a format name ("text" or "sqlite").
package output
