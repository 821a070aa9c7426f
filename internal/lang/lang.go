package lang

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SourceCode is a language DeepL can translate from. Its value is the wire code.
type SourceCode string

// TargetCode is a language DeepL can translate into. Its value is the wire code.
type TargetCode string

// Source languages
const (
	SourceAR SourceCode = "AR"
	SourceBG SourceCode = "BG"
	SourceCS SourceCode = "CS"
	SourceDA SourceCode = "DA"
	SourceDE SourceCode = "DE"
	SourceEL SourceCode = "EL"
	SourceEN SourceCode = "EN"
	SourceES SourceCode = "ES"
	SourceET SourceCode = "ET"
	SourceFI SourceCode = "FI"
	SourceFR SourceCode = "FR"
	SourceHU SourceCode = "HU"
	SourceID SourceCode = "ID"
	SourceIT SourceCode = "IT"
	SourceJA SourceCode = "JA"
	SourceKO SourceCode = "KO"
	SourceLT SourceCode = "LT"
	SourceLV SourceCode = "LV"
	SourceNB SourceCode = "NB"
	SourceNL SourceCode = "NL"
	SourcePL SourceCode = "PL"
	SourcePT SourceCode = "PT" // all Portuguese varieties
	SourceRO SourceCode = "RO"
	SourceRU SourceCode = "RU"
	SourceSK SourceCode = "SK"
	SourceSL SourceCode = "SL"
	SourceSV SourceCode = "SV"
	SourceTR SourceCode = "TR"
	SourceUK SourceCode = "UK"
	SourceZH SourceCode = "ZH"
)

// Target languages
const (
	TargetAR   TargetCode = "AR"
	TargetBG   TargetCode = "BG"
	TargetCS   TargetCode = "CS"
	TargetDA   TargetCode = "DA"
	TargetDE   TargetCode = "DE"
	TargetEL   TargetCode = "EL"
	TargetEN   TargetCode = "EN" // unspecified variant, kept for backward compatibility
	TargetEnGB TargetCode = "EN-GB"
	TargetEnUS TargetCode = "EN-US"
	TargetES   TargetCode = "ES"
	TargetET   TargetCode = "ET"
	TargetFI   TargetCode = "FI"
	TargetFR   TargetCode = "FR"
	TargetHU   TargetCode = "HU"
	TargetID   TargetCode = "ID"
	TargetIT   TargetCode = "IT"
	TargetJA   TargetCode = "JA"
	TargetKO   TargetCode = "KO"
	TargetLT   TargetCode = "LT"
	TargetLV   TargetCode = "LV"
	TargetNB   TargetCode = "NB"
	TargetNL   TargetCode = "NL"
	TargetPL   TargetCode = "PL"
	TargetPT   TargetCode = "PT" // unspecified variant, kept for backward compatibility
	TargetPtBR TargetCode = "PT-BR"
	TargetPtPT TargetCode = "PT-PT" // all varieties except Brazilian
	TargetRO   TargetCode = "RO"
	TargetRU   TargetCode = "RU"
	TargetSK   TargetCode = "SK"
	TargetSL   TargetCode = "SL"
	TargetSV   TargetCode = "SV"
	TargetTR   TargetCode = "TR"
	TargetUK   TargetCode = "UK"
	TargetZH   TargetCode = "ZH" // simplified
)

// ResolveSource looks up a lowercased, trimmed token in the source table.
func ResolveSource(token string) (SourceCode, bool) {
	code, ok := sourceTokens[token]
	return code, ok
}

// ResolveTarget looks up a lowercased, trimmed token in the target table.
// Region-qualified tokens ("en-gb", "pt-br", ...) map to their own variants;
// "en" and "pt" stay on the unqualified legacy codes.
func ResolveTarget(token string) (TargetCode, bool) {
	code, ok := targetTokens[token]
	return code, ok
}

// String returns the wire code.
func (c SourceCode) String() string { return string(c) }

// String returns the wire code.
func (c TargetCode) String() string { return string(c) }

// DisplayName returns the human readable name, or the wire code when c is
// not part of the table.
func (c SourceCode) DisplayName() string {
	if name, ok := sourceNames[c]; ok {
		return name
	}
	return string(c)
}

// DisplayName returns the human readable name, or the wire code when c is
// not part of the table.
func (c TargetCode) DisplayName() string {
	if name, ok := targetNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether c belongs to the source table.
func (c SourceCode) Valid() bool {
	_, ok := sourceNames[c]
	return ok
}

// Valid reports whether c belongs to the target table.
func (c TargetCode) Valid() bool {
	_, ok := targetNames[c]
	return ok
}

// UnmarshalJSON accepts only codes from the source table. The API reports
// detected languages in upper case but lower case is tolerated.
func (c *SourceCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("source language code: %w", err)
	}
	code := SourceCode(strings.ToUpper(s))
	if !code.Valid() {
		return fmt.Errorf("unknown source language code %q", s)
	}
	*c = code
	return nil
}

// UnmarshalJSON accepts only codes from the target table.
func (c *TargetCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("target language code: %w", err)
	}
	code := TargetCode(strings.ToUpper(s))
	if !code.Valid() {
		return fmt.Errorf("unknown target language code %q", s)
	}
	*c = code
	return nil
}

// SourceCodes returns every source code sorted by wire code.
func SourceCodes() []SourceCode {
	codes := make([]SourceCode, 0, len(sourceNames))
	for code := range sourceNames {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// TargetCodes returns every target code sorted by wire code.
func TargetCodes() []TargetCode {
	codes := make([]TargetCode, 0, len(targetNames))
	for code := range targetNames {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// SourceTokens returns the tokens that resolve to c, sorted.
func SourceTokens(c SourceCode) []string {
	var tokens []string
	for token, code := range sourceTokens {
		if code == c {
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return tokens
}

// TargetTokens returns the tokens that resolve to c, sorted.
func TargetTokens(c TargetCode) []string {
	var tokens []string
	for token, code := range targetTokens {
		if code == c {
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return tokens
}
