// Package processor runs queries from the command line through the
// translation plugin. It handles single queries, batch files, printing
// results, copying to the clipboard and writing the metrics file.
package processor
