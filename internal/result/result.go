// Package result turns decoded translations into the records handed back to
// the host: a label to show and the text to put on the clipboard.
package result

import (
	"strings"

	"codeberg.org/snonux/deeplquery/internal/translation"
)

// Result is one presentable translation.
type Result struct {
	DisplayText   string
	ClipboardText string

	// Failure marks results built by Message.
	Failure bool
}

// Options controls the clipboard payload. The zero value copies only the
// translated text.
type Options struct {
	// IncludeQuery prepends the original text on its own line.
	IncludeQuery bool
	// IncludeCodes prefixes each line with its language wire code.
	IncludeCodes bool
}

// Format builds one Result per translation, in response order.
//
// With both options set the clipboard holds
//
//	EN: Hello
//	DE: Hallo
//
// where the source code is the request's explicit source, or else the
// language the service detected for that item.
func Format(req *translation.Request, resp *translation.Response, opts Options) []Result {
	results := make([]Result, 0, len(resp.Translations))
	body := req.Body()

	for _, item := range resp.Translations {
		var b strings.Builder

		if opts.IncludeQuery {
			if opts.IncludeCodes {
				source := item.DetectedSourceLanguage
				if req.SourceLang != nil {
					source = *req.SourceLang
				}
				b.WriteString(source.String())
				b.WriteString(": ")
			}
			b.WriteString(body)
			b.WriteString("\n")
		}

		if opts.IncludeCodes {
			b.WriteString(req.TargetLang.String())
			b.WriteString(": ")
		}
		b.WriteString(item.Text)

		results = append(results, Result{
			DisplayText:   item.Text,
			ClipboardText: b.String(),
		})
	}

	return results
}

// Message builds a result that reports a failure instead of a translation.
// Executing it copies detail.
func Message(title, detail string) Result {
	return Result{DisplayText: title, ClipboardText: detail, Failure: true}
}
