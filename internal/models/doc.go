// Package models lists the OpenAI chat models that can serve as the
// alternate translation engine.
package models
