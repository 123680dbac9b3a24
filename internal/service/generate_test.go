package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripai/tripai-go/internal/genai"
	"github.com/tripai/tripai-go/internal/itinerary"
	"github.com/tripai/tripai-go/internal/model"
)

// mockProvider is a hand-written test double for Provider.
type mockProvider struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return m.generate(ctx, prompt)
}

var _ Provider = (*mockProvider)(nil)

const providerFixture = `{
  "destination": "Paris",
  "days": [
    {"day": 1, "title": "Clássicos", "dayTotal": 350},
    {"day": 2, "title": "Museus", "dayTotal": 200},
    {"day": 3, "title": "Versalhes", "dayTotal": 420}
  ]
}`

func TestGenerate_OK(t *testing.T) {
	var gotPrompt string
	svc := NewGeneratorService(&mockProvider{
		generate: func(_ context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return providerFixture, nil
		},
	})

	resp, err := svc.Generate(context.Background(), 42, model.GenerateRequest{
		Destination: "Paris",
		Days:        3,
	})

	require.NoError(t, err)
	assert.Equal(t, "Paris", resp.Itinerary.Destination)
	assert.Len(t, resp.Itinerary.Days, 3)
	assert.Equal(t, 970.0, resp.TotalBudget)
	assert.Contains(t, gotPrompt, "roteiro de 3 dias para Paris")
	assert.NotContains(t, gotPrompt, "R$")
}

func TestGenerate_BudgetInPrompt(t *testing.T) {
	var gotPrompt string
	svc := NewGeneratorService(&mockProvider{
		generate: func(_ context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return providerFixture, nil
		},
	})

	min, max := int64(1000), int64(5000)
	label := "Moderado"
	_, err := svc.Generate(context.Background(), 42, model.GenerateRequest{
		Destination: "Paris",
		Days:        3,
		BudgetMin:   &min,
		BudgetMax:   &max,
		BudgetLabel: &label,
	})

	require.NoError(t, err)
	assert.Contains(t, gotPrompt, "R$ 1000")
	assert.Contains(t, gotPrompt, "R$ 5000")
	assert.Contains(t, gotPrompt, "Moderado")
}

func TestGenerate_Validation(t *testing.T) {
	called := false
	svc := NewGeneratorService(&mockProvider{
		generate: func(_ context.Context, _ string) (string, error) {
			called = true
			return providerFixture, nil
		},
	})

	t.Run("blank destination", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), 1, model.GenerateRequest{Destination: "   ", Days: 3})
		assert.ErrorIs(t, err, ErrDestinationRequired)
	})

	t.Run("non-positive days", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), 1, model.GenerateRequest{Destination: "Paris", Days: 0})
		assert.ErrorIs(t, err, ErrDaysInvalid)
	})

	t.Run("inverted budget", func(t *testing.T) {
		min, max := int64(9), int64(1)
		_, err := svc.Generate(context.Background(), 1, model.GenerateRequest{
			Destination: "Paris", Days: 1, BudgetMin: &min, BudgetMax: &max,
		})
		assert.ErrorIs(t, err, ErrBudgetRange)
	})

	assert.False(t, called, "provider must not be invoked for invalid input")
}

func TestGenerate_MalformedProviderOutput(t *testing.T) {
	svc := NewGeneratorService(&mockProvider{
		generate: func(_ context.Context, _ string) (string, error) {
			return "not json", nil
		},
	})

	_, err := svc.Generate(context.Background(), 42, model.GenerateRequest{Destination: "Paris", Days: 3})

	assert.ErrorIs(t, err, itinerary.ErrMalformed)
}

func TestGenerate_ProviderErrorsPropagateUnchanged(t *testing.T) {
	for _, sentinel := range []error{
		genai.ErrNotConfigured,
		genai.ErrQuotaExceeded,
		genai.ErrGenerationFailed,
	} {
		svc := NewGeneratorService(&mockProvider{
			generate: func(_ context.Context, _ string) (string, error) {
				return "", sentinel
			},
		})

		_, err := svc.Generate(context.Background(), 42, model.GenerateRequest{Destination: "Paris", Days: 3})

		assert.ErrorIs(t, err, sentinel)
	}
}

func TestGenerate_SingleProviderCall(t *testing.T) {
	calls := 0
	svc := NewGeneratorService(&mockProvider{
		generate: func(_ context.Context, _ string) (string, error) {
			calls++
			return "", genai.ErrGenerationFailed
		},
	})

	_, err := svc.Generate(context.Background(), 42, model.GenerateRequest{Destination: "Paris", Days: 3})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "no retry on provider failure")
}
