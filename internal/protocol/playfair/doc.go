// Package playfair implements Playfair digraph decryption over the 25-letter
// Latin alphabet (I and J share a cell).
//
// # Overview
//
// Decryption runs in three steps, each a pure function:
//  1. BuildGrid derives the 5x5 key grid and its coordinate map from a key.
//  2. Segment splits the ciphertext into digrams, inserting the filler X
//     between doubled letters and after a trailing odd letter.
//  3. Decode maps every digram back through the grid using the row, column
//     and rectangle rules, then removes every X from the result.
//
// Decrypt composes the three.
//
// # Input
//
// Keys and messages are sanitized first: letters are uppercased, J becomes I
// and whitespace is dropped. Anything else left over (digits, punctuation,
// non-Latin letters) is rejected with ErrInvalidCharacter.
//
// # Errors
//
// ErrInvalidCharacter reports unusable input. ErrLookup means a letter had no
// grid coordinate, which can only happen when a grid and coordinate map were
// not built together; callers should treat it as a bug.
//
// # Limitations
//
// An X that was part of the original plaintext is stripped along with the
// fillers. This is inherent to the cipher.
package playfair
