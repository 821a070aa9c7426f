// Package query parses the translate mini-language:
//
//	<target>: <text>
//	<source> -> <target>: <text>
//
// Whitespace around every part is ignored and language tokens are matched
// case-insensitively against the tables in package lang.
package query
