package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "openai"}, "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestExtractTextFromResponse(t *testing.T) {
	t.Run("joins text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text(`["Re`), genai.Text(`act"]`)}},
			}},
		}
		text, err := extractTextFromResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, `["React"]`, text)
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := extractTextFromResponse(nil)
		assert.Error(t, err)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
		assert.Error(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
		_, err := extractTextFromResponse(resp)
		assert.Error(t, err)
	})

	t.Run("no text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
			}},
		}
		_, err := extractTextFromResponse(resp)
		assert.Error(t, err)
	})
}
