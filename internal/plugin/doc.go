// Package plugin exposes the translator to a quick-search host. The host
// passes every typed query to Search, shows the returned results and calls
// Execute with the one the user picks, which copies its clipboard text.
//
// Failures never reach the user as errors: they are logged and the query
// yields no results (or, with "Return error messages" enabled, a single
// result describing the failure).
package plugin
