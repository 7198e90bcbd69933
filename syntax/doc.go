// Package syntax provides the lexical primitives the indentation engine is
// built on: token classification for Scala-like source, comment and string
// span detection, bracket matching, and bounded token navigation.
//
// The package never builds a syntax tree. A Scanner is a flat, read-only view
// of one buffer snapshot; positions are rune offsets into that snapshot.
package syntax
