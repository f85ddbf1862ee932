package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const advice = `{"summary":"Coba jurusan teknik.","majors":["Teknik Mesin"]}`

func serve(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, `{"error":{"type":"error","message":"nope"}}`)
	}
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var le *Error
	require.True(t, errors.As(err, &le), "got %v", err)
	return le.Kind
}

func anthropicAt(url string) *anthropicProvider {
	return newAnthropic(Config{APIKey: "test", Model: "claude-haiku-4-5-20251001", BaseURL: url}, option.WithMaxRetries(0))
}

func TestAnthropic_Complete(t *testing.T) {
	var got map[string]any
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_1",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-haiku-4-5-20251001",
			"content":     []map[string]any{{"type": "text", "text": advice}},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	})

	reply, err := anthropicAt(url).Complete(context.Background(), Prompt{
		System:    "Kamu konselor karier.",
		User:      "Saran jurusan?",
		Schema:    noteSchema(),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.JSONEq(t, advice, string(reply.JSON))
	assert.Equal(t, 80, reply.Usage.Total())
	assert.Equal(t, "claude-haiku-4-5-20251001", got["model"])
	assert.NotNil(t, got["output_config"])
}

func TestAnthropic_Truncated(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "msg_1", "type": "message", "role": "assistant", "model": "m",
			"content":     []map[string]any{{"type": "text", "text": `{"summary":"Coba`}},
			"stop_reason": "max_tokens",
			"usage":       map[string]any{"input_tokens": 1, "output_tokens": 1},
		})
	})
	_, err := anthropicAt(url).Complete(context.Background(), Prompt{User: "x", MaxTokens: 5})
	assert.Equal(t, KindTruncated, kindOf(t, err))
}

func TestAnthropic_Errors(t *testing.T) {
	_, err := anthropicAt(serve(t, status(http.StatusTooManyRequests))).Complete(context.Background(), Prompt{User: "x", MaxTokens: 5})
	assert.Equal(t, KindRateLimited, kindOf(t, err))

	_, err = anthropicAt(serve(t, status(http.StatusInternalServerError))).Complete(context.Background(), Prompt{User: "x", MaxTokens: 5})
	assert.Equal(t, KindUnavailable, kindOf(t, err))
}

func openaiAt(url string) *openaiProvider {
	return newOpenAI(Config{Provider: ProviderOpenAI, APIKey: "test", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 20, "total_tokens": 60},
	}
}

func TestOpenAI_Complete(t *testing.T) {
	var got map[string]any
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(advice, "stop"))
	})

	reply, err := openaiAt(url).Complete(context.Background(), Prompt{
		System: "Kamu konselor karier.",
		User:   "Saran jurusan?",
		Schema: noteSchema(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, advice, string(reply.JSON))
	assert.Equal(t, 60, reply.Usage.Total())

	msgs, _ := got["messages"].([]any)
	require.Len(t, msgs, 2)
	format, _ := got["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAI_MalformedAndTruncated(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"summary":"x"}`, "stop"))
	})
	_, err := openaiAt(url).Complete(context.Background(), Prompt{User: "x", Schema: noteSchema()})
	assert.Equal(t, KindMalformed, kindOf(t, err))

	url = serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"sum`, "length"))
	})
	_, err = openaiAt(url).Complete(context.Background(), Prompt{User: "x"})
	assert.Equal(t, KindTruncated, kindOf(t, err))
}

func TestOpenAI_Errors(t *testing.T) {
	_, err := openaiAt(serve(t, status(http.StatusTooManyRequests))).Complete(context.Background(), Prompt{User: "x"})
	assert.Equal(t, KindRateLimited, kindOf(t, err))

	_, err = openaiAt(serve(t, status(http.StatusBadGateway))).Complete(context.Background(), Prompt{User: "x"})
	assert.Equal(t, KindUnavailable, kindOf(t, err))
}

func TestOpenRouterUsesItsEndpoint(t *testing.T) {
	p := newOpenAI(Config{Provider: ProviderOpenRouter, APIKey: "k", Model: "openai/gpt-4o-mini"})
	assert.Equal(t, "openai/gpt-4o-mini", p.Model())
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(noteSchema().Definition)

	assert.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 3)
	assert.Equal(t, genai.TypeString, s.Properties["summary"].Type)
	assert.Equal(t, genai.TypeArray, s.Properties["majors"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["majors"].Items.Type)
	require.NotNil(t, s.Properties["majors"].MinItems)
	assert.Equal(t, int64(1), *s.Properties["majors"].MinItems)
	assert.Equal(t, []string{"santai", "formal"}, s.Properties["tone"].Enum)
	assert.ElementsMatch(t, []string{"summary", "majors"}, s.Required)
}
