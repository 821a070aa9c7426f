package translation

import (
	"encoding/json"
	"errors"

	"codeberg.org/snonux/deeplquery/internal/lang"
)

// Request is the body POSTed to the translate endpoint.
//
//	{"text":["Hello, world!"],"target_lang":"DE"}
type Request struct {
	Text       []string         `json:"text"`
	TargetLang lang.TargetCode  `json:"target_lang"`
	SourceLang *lang.SourceCode `json:"source_lang,omitempty"`
}

// NewRequest builds a request for a single body. A nil source lets the
// service detect the input language.
func NewRequest(body string, target lang.TargetCode, source *lang.SourceCode) *Request {
	return &Request{
		Text:       []string{body},
		TargetLang: target,
		SourceLang: source,
	}
}

// Body returns the first text of the request.
func (r *Request) Body() string {
	if len(r.Text) == 0 {
		return ""
	}
	return r.Text[0]
}

// Response is the decoded reply of the translate endpoint.
//
//	{"translations":[{"detected_source_language":"EN","text":"Hallo, Welt!"}]}
type Response struct {
	Translations []Item `json:"translations"`
}

// Item is one translated text.
type Item struct {
	DetectedSourceLanguage lang.SourceCode `json:"detected_source_language"`
	Text                   string          `json:"text"`
}

// UnmarshalJSON requires both fields. An empty text is accepted, an absent one
// is not.
func (i *Item) UnmarshalJSON(data []byte) error {
	var wire struct {
		DetectedSourceLanguage *lang.SourceCode `json:"detected_source_language"`
		Text                   *string          `json:"text"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.DetectedSourceLanguage == nil {
		return errors.New("missing field detected_source_language")
	}
	if wire.Text == nil {
		return errors.New("missing field text")
	}

	i.DetectedSourceLanguage = *wire.DetectedSourceLanguage
	i.Text = *wire.Text
	return nil
}
