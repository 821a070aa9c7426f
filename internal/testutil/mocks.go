package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one request received by a fake server
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// MockDeepLServer is an httptest server answering like the DeepL translate endpoint
type MockDeepLServer struct {
	*httptest.Server

	mu         sync.Mutex
	statusCode int
	body       string
	requests   []RecordedRequest
}

// NewMockDeepLServer starts a server that replies with status and body to every request.
// The server is closed when the test finishes.
func NewMockDeepLServer(t *testing.T, status int, body string) *MockDeepLServer {
	t.Helper()

	m := &MockDeepLServer{statusCode: status, body: body}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Close)
	return m
}

func (m *MockDeepLServer) handle(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   data,
	})
	status, body := m.statusCode, m.body
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

// SetReply changes the reply for subsequent requests
func (m *MockDeepLServer) SetReply(status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCode = status
	m.body = body
}

// Requests returns a copy of the received requests
func (m *MockDeepLServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// Endpoint returns the translate URL of the server
func (m *MockDeepLServer) Endpoint() string {
	return m.URL + "/v2/translate"
}

// DeepLReply builds a translate response body from (detected source, text) pairs
func DeepLReply(pairs ...string) string {
	type item struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	}
	items := []item{}
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, item{DetectedSourceLanguage: pairs[i], Text: pairs[i+1]})
	}
	data, _ := json.Marshal(map[string]interface{}{"translations": items})
	return string(data)
}

// MockOpenAIModels are the model ids the fake OpenAI server lists
var MockOpenAIModels = []string{"tts-1", "gpt-4o", "dall-e-3", "gpt-4o-mini", "whisper-1"}

// NewMockOpenAIServer starts a server answering chat completions with content
// as the assistant message, and model listings with MockOpenAIModels. It
// returns the API base URL (ending in /v1).
func NewMockOpenAIServer(t *testing.T, content string) (string, *[]RecordedRequest) {
	t.Helper()

	var mu sync.Mutex
	var requests []RecordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, RecordedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: data})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/chat/completions":
		case "/v1/models":
			data := make([]map[string]string, 0, len(MockOpenAIModels))
			for _, id := range MockOpenAIModels {
				data = append(data, map[string]string{"id": id, "object": "model", "owned_by": "openai"})
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"object": "list", "data": data})
			return
		default:
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]string{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/v1", &requests
}

// MockClipboard records copied text
type MockClipboard struct {
	mu       sync.Mutex
	Contents []string
	Err      error
}

// WriteAll records text, or returns Err when set
func (m *MockClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Contents = append(m.Contents, text)
	return nil
}

// Last returns the most recently copied text
func (m *MockClipboard) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Contents) == 0 {
		return ""
	}
	return m.Contents[len(m.Contents)-1]
}
