package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Translator with a chat completion. The model is
// asked to answer with a single DeepL-shaped translation object.
type OpenAIClient struct {
	apiKey string
	model  string
	config openai.ClientConfig
	client *openai.Client
}

// DefaultOpenAIModel is the chat model used when none is configured.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIOption configures an OpenAIClient.
type OpenAIOption func(*OpenAIClient)

// WithOpenAIModel picks the chat model. Empty keeps the default.
func WithOpenAIModel(model string) OpenAIOption {
	return func(c *OpenAIClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithOpenAIBaseURL points the client at another API root, e.g. a test server.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(c *OpenAIClient) {
		if url != "" {
			c.config.BaseURL = url
		}
	}
}

// WithOpenAIHTTPClient shares an HTTP client. nil is ignored.
func WithOpenAIHTTPClient(hc *http.Client) OpenAIOption {
	return func(c *OpenAIClient) {
		if hc != nil {
			c.config.HTTPClient = hc
		}
	}
}

// NewOpenAIClient creates a new OpenAI backed translator
func NewOpenAIClient(apiKey string, opts ...OpenAIOption) *OpenAIClient {
	c := &OpenAIClient{
		apiKey: apiKey,
		model:  DefaultOpenAIModel,
		config: openai.DefaultConfig(apiKey),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = openai.NewClientWithConfig(c.config)
	return c
}

// Name returns the engine name
func (c *OpenAIClient) Name() string {
	return string(EngineOpenAI)
}

// Translate translates every text of req with one chat completion each.
func (c *OpenAIClient) Translate(ctx context.Context, req *Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	resp := &Response{Translations: make([]Item, 0, len(req.Text))}
	for _, text := range req.Text {
		item, err := c.translateText(ctx, text, req)
		if err != nil {
			return nil, err
		}
		resp.Translations = append(resp.Translations, item)
	}
	return resp, nil
}

func (c *OpenAIClient) translateText(ctx context.Context, text string, req *Request) (Item, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(req),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	}

	chatResp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return Item{}, &TransportError{Err: fmt.Errorf("OpenAI API error: %w", err)}
	}

	if len(chatResp.Choices) == 0 {
		return Item{}, &DecodeError{Err: errors.New("no translation returned")}
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	var item Item
	if err := json.Unmarshal([]byte(content), &item); err != nil {
		return Item{}, &DecodeError{Body: content, Err: err}
	}
	if item.Text == "" {
		return Item{}, &DecodeError{Body: content, Err: errors.New("empty translation text")}
	}
	return item, nil
}

func systemPrompt(req *Request) string {
	var b strings.Builder
	b.WriteString("You are a translation engine. Translate the user's message")
	if req.SourceLang != nil {
		fmt.Fprintf(&b, " from %s", req.SourceLang.DisplayName())
	}
	fmt.Fprintf(&b, " into %s (%s).", req.TargetLang.DisplayName(), req.TargetLang)
	b.WriteString(` Respond with only a JSON object of the form {"detected_source_language": "<ISO 639-1 code in upper case>", "text": "<translation>"}.`)
	return b.String()
}
