// Package indent computes indentation for Scala-like source using local
// lexical context only. A fixed-priority chain of anchor resolvers locates a
// reference column for the current line and adds a step; a strategy-driven
// run-on classifier decides whether a line continues the previous statement.
//
// The engine is synchronous and stateless apart from the per-session run-on
// strategy override. It never fails: unresolvable context degrades to
// column 0.
package indent
