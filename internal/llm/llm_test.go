package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestStub(t *testing.T) {
	stub := NewStub(ok())
	reply, err := stub.Complete(context.Background(), Prompt{User: "halo"})
	require.NoError(t, err)
	assert.Equal(t, "stub", reply.Model)

	_, err = stub.Complete(context.Background(), Prompt{User: "lagi"})
	var le *Error
	require.ErrorAs(t, err, &le)
	assert.True(t, le.Temporary())

	prompts := stub.Prompts()
	require.Len(t, prompts, 2)
	assert.Equal(t, "lagi", prompts[1].User)
}

func TestPurpose(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
	assert.Equal(t, PurposeAdvice, PurposeFrom(WithPurpose(context.Background(), PurposeAdvice)))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
		model    string
		key      string
	}{
		{"explicit provider and key", map[string]string{
			EnvPrefix + "PROVIDER": "openai",
			EnvPrefix + "API_KEY":  "sk-explicit",
			EnvPrefix + "MODEL":    "gpt-4.1-mini",
			"GEMINI_API_KEY":       "ignored",
		}, ProviderOpenAI, "gpt-4.1-mini", "sk-explicit"},
		{"explicit provider, vendor key", map[string]string{
			EnvPrefix + "PROVIDER": "anthropic",
			"ANTHROPIC_API_KEY":    "sk-ant",
		}, ProviderAnthropic, "claude-haiku", "sk-ant"},
		{"gemini discovered first", map[string]string{"GEMINI_API_KEY": "g", "OPENAI_API_KEY": "o"}, ProviderGemini, "gemini-flash", "g"},
		{"openai before anthropic", map[string]string{"OPENAI_API_KEY": "o", "ANTHROPIC_API_KEY": "a"}, ProviderOpenAI, "gpt-4o-mini", "o"},
		{"openrouter last", map[string]string{"OPENROUTER_API_KEY": "r"}, ProviderOpenRouter, "google/gemini-2.0-flash-001", "r"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := Resolve(envMap(tt.env))
			require.True(t, ok)
			assert.Equal(t, tt.provider, cfg.Provider)
			assert.Equal(t, tt.model, cfg.Model)
			assert.Equal(t, tt.key, cfg.APIKey)
			assert.NoError(t, cfg.Validate())
		})
	}

	_, ok := Resolve(envMap(nil))
	assert.False(t, ok)
}

func TestResolve_Timeout(t *testing.T) {
	cfg, _ := Resolve(envMap(map[string]string{EnvPrefix + "PROVIDER": "stub", EnvPrefix + "TIMEOUT": "5s"}))
	assert.Equal(t, "5s", cfg.Timeout.String())

	cfg, _ = Resolve(envMap(map[string]string{EnvPrefix + "PROVIDER": "stub", EnvPrefix + "TIMEOUT": "soon"}))
	assert.Equal(t, Defaults(ProviderStub).Timeout, cfg.Timeout)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Defaults(ProviderStub).Validate())
	assert.Error(t, Defaults("llama").Validate())
	assert.ErrorContains(t, Defaults(ProviderGemini).Validate(), EnvPrefix+"API_KEY")

	c := Defaults(ProviderOpenAI)
	c.APIKey = "k"
	c.Model = ""
	assert.Error(t, c.Validate())
}

func TestNew(t *testing.T) {
	p, err := New(context.Background(), Defaults(ProviderStub), nil)
	require.NoError(t, err)
	assert.IsType(t, &Stub{}, p)

	c := Defaults(ProviderOpenRouter)
	c.APIKey = "sk-or"
	p, err = New(context.Background(), c, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &retrying{}, p)
	assert.Equal(t, "google/gemini-2.0-flash-001", p.Model())

	c = Defaults(ProviderAnthropic)
	c.APIKey = "sk-ant"
	p, err = New(context.Background(), c, nil)
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.Model())

	_, err = New(context.Background(), Defaults(ProviderAnthropic), nil)
	assert.Error(t, err)
}

func TestPriceOf(t *testing.T) {
	p, ok := PriceOf("gpt-4o-mini")
	require.True(t, ok)
	assert.InDelta(t, 0.75, p.Cost(Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}), 1e-9)

	_, ok = PriceOf("claude-haiku")
	assert.True(t, ok, "aliases resolve before lookup")

	_, ok = PriceOf("stub")
	assert.False(t, ok)
}

func TestWithLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	stub := NewStub(StubReply{
		JSON:  json.RawMessage(`{"summary":"ok","majors":["a"]}`),
		Usage: Usage{InputTokens: 1000, OutputTokens: 500},
	})
	p := WithLogging(stub, ProviderStub, zap.New(core))

	ctx := WithPurpose(context.Background(), PurposeAdvice)
	_, err := p.Complete(ctx, Prompt{Schema: noteSchema()})
	require.NoError(t, err)

	entries := logs.FilterMessage("llm request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, PurposeAdvice, fields["purpose"])
	assert.Equal(t, "note", fields["schema"])
	assert.Equal(t, int64(1000), fields["input_tokens"])
	assert.NotContains(t, fields, "cost_usd")

	_, err = p.Complete(ctx, Prompt{})
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("llm request failed").FilterLevelExact(zapcore.WarnLevel).Len())
}
