// Package alphabet defines the ordered character sets that the classical
// ciphers in this module use as their index space.
//
// An [Alphabet] is an immutable bijection between runes and the integers
// 0..Len()-1.  Two tables ship with the package:
//
//   - [Letters]: the 26 uppercase Latin letters A–Z.
//   - [Symbols]: the 95 printable ASCII characters from space (0x20) through
//     tilde (0x7E), in ASCII order.
//
// A rune that is not part of an alphabet is a lookup miss, not an error:
// [Alphabet.IndexOf] reports it with a false second return value and callers
// pass the rune through unchanged.
//
//	pos, ok := alphabet.Letters.IndexOf('H') // 7, true
//	_, ok = alphabet.Letters.IndexOf('!')    // ok == false
package alphabet
