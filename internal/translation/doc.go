// Package translation sends translation requests to DeepL (or, optionally,
// an OpenAI chat model) and decodes the replies. It defines the request and
// response model shared by the query parser and the result formatter.
package translation
