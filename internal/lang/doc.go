// Package lang holds the closed set of language codes accepted by the DeepL
// translate endpoint, the tokens that resolve to them and their display names.
package lang
