package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripai/tripai-go/internal/itinerary"
	"github.com/tripai/tripai-go/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func TestBuildPrompt_NoBudget(t *testing.T) {
	prompt := itinerary.BuildPrompt(model.GenerateRequest{
		Destination: "Paris",
		Days:        3,
	})

	assert.Contains(t, prompt, "roteiro de 3 dias para Paris")
	assert.NotContains(t, prompt, "Orçamento")
	assert.NotContains(t, prompt, "R$")
	assert.Contains(t, prompt, "SOMENTE um objeto JSON")
}

func TestBuildPrompt_WithBudget(t *testing.T) {
	prompt := itinerary.BuildPrompt(model.GenerateRequest{
		Destination: "Paris",
		Days:        3,
		BudgetMin:   int64Ptr(1000),
		BudgetMax:   int64Ptr(5000),
		BudgetLabel: strPtr("Moderado"),
	})

	assert.Contains(t, prompt, "R$ 1000")
	assert.Contains(t, prompt, "R$ 5000")
	assert.Contains(t, prompt, "(Moderado)")
}

func TestBuildPrompt_BudgetLabelDefaults(t *testing.T) {
	prompt := itinerary.BuildPrompt(model.GenerateRequest{
		Destination: "Paris",
		Days:        2,
		BudgetMin:   int64Ptr(500),
		BudgetMax:   int64Ptr(900),
	})

	assert.Contains(t, prompt, "(Moderado)")
}

// A single budget bound is not enough to mention a range.
func TestBuildPrompt_OneBoundOmitsBudget(t *testing.T) {
	prompt := itinerary.BuildPrompt(model.GenerateRequest{
		Destination: "Paris",
		Days:        2,
		BudgetMin:   int64Ptr(500),
	})

	assert.NotContains(t, prompt, "Orçamento")
}

func TestBuildPrompt_TrimsDestination(t *testing.T) {
	prompt := itinerary.BuildPrompt(model.GenerateRequest{
		Destination: "  Rio de Janeiro  ",
		Days:        5,
	})

	assert.Contains(t, prompt, "para Rio de Janeiro.")
}
