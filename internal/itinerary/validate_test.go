package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripai/tripai-go/internal/itinerary"
	"github.com/tripai/tripai-go/internal/model"
)

// validRaw is a minimal two-day provider response. Day entries arrive out of
// order on purpose: the validator must keep provider order.
const validRaw = `{
  "destination": "Paris",
  "country": "França",
  "region": "Europa",
  "summary": "Dois dias clássicos em Paris",
  "month": "Maio 2026",
  "totalActivities": 6,
  "days": [
    {
      "day": 2,
      "title": "Montmartre",
      "subtitle": "Arte e vistas",
      "morning": {"title": "Sacré-Cœur", "description": "Basílica", "estimatedCost": 0},
      "afternoon": {"title": "Museu de Orsay", "description": "Impressionistas", "estimatedCost": 90},
      "evening": {"title": "Jantar em bistrô", "description": "Cozinha francesa", "estimatedCost": 250},
      "dayTotal": 340
    },
    {
      "day": 1,
      "title": "Clássicos",
      "subtitle": "Primeiro contato",
      "morning": {"title": "Torre Eiffel", "description": "Subida", "estimatedCost": 150},
      "evening": {"title": "Cruzeiro no Sena", "description": "Barco", "estimatedCost": 200},
      "dayTotal": 350
    }
  ]
}`

func TestValidate_OK(t *testing.T) {
	it, err := itinerary.Validate(validRaw)

	require.NoError(t, err)
	assert.Equal(t, "Paris", it.Destination)
	assert.Equal(t, "França", it.Country)
	assert.Equal(t, 6, it.TotalActivities)
	require.Len(t, it.Days, 2)

	// Provider order preserved: day 2 first, day 1 second.
	assert.Equal(t, 2, it.Days[0].Day)
	assert.Equal(t, 1, it.Days[1].Day)

	// Absent activity slot stays absent.
	assert.Nil(t, it.Days[1].Afternoon)
	require.NotNil(t, it.Days[0].Morning)
	assert.Equal(t, "Sacré-Cœur", it.Days[0].Morning.Title)
}

func TestValidate_OptionalFieldsStayAbsent(t *testing.T) {
	it, err := itinerary.Validate(`{"destination":"Lima","days":[{"day":1,"title":"Centro","dayTotal":100}]}`)

	require.NoError(t, err)
	assert.Empty(t, it.Country)
	assert.Empty(t, it.Summary)
	assert.Zero(t, it.TotalActivities)
}

func TestValidate_NotJSON(t *testing.T) {
	_, err := itinerary.Validate("not json")

	assert.ErrorIs(t, err, itinerary.ErrMalformed)
}

func TestValidate_TopLevelNotObject(t *testing.T) {
	_, err := itinerary.Validate(`[{"day": 1}]`)

	assert.ErrorIs(t, err, itinerary.ErrSchema)
}

func TestValidate_DaysMissing(t *testing.T) {
	_, err := itinerary.Validate(`{"destination": "Paris"}`)

	assert.ErrorIs(t, err, itinerary.ErrSchema)
}

func TestValidate_DaysEmpty(t *testing.T) {
	_, err := itinerary.Validate(`{"destination": "Paris", "days": []}`)

	assert.ErrorIs(t, err, itinerary.ErrSchema)
}

func TestValidate_DaysNotSequence(t *testing.T) {
	_, err := itinerary.Validate(`{"destination": "Paris", "days": {"day": 1}}`)

	assert.ErrorIs(t, err, itinerary.ErrSchema)
}

func TestValidate_DestinationMissing(t *testing.T) {
	_, err := itinerary.Validate(`{"days": [{"day": 1, "title": "x", "dayTotal": 0}]}`)

	assert.ErrorIs(t, err, itinerary.ErrSchema)
}

func TestValidate_DuplicateDay(t *testing.T) {
	_, err := itinerary.Validate(`{"destination": "Paris", "days": [
		{"day": 1, "title": "a", "dayTotal": 0},
		{"day": 1, "title": "b", "dayTotal": 0}
	]}`)

	assert.ErrorIs(t, err, itinerary.ErrInvalid)
}

func TestValidate_NonPositiveDay(t *testing.T) {
	_, err := itinerary.Validate(`{"destination": "Paris", "days": [{"day": 0, "title": "a", "dayTotal": 0}]}`)

	assert.ErrorIs(t, err, itinerary.ErrInvalid)
}

func TestValidate_NegativeCost(t *testing.T) {
	_, err := itinerary.Validate(`{"destination": "Paris", "days": [
		{"day": 1, "title": "a", "morning": {"title": "x", "estimatedCost": -5}, "dayTotal": 0}
	]}`)

	assert.ErrorIs(t, err, itinerary.ErrInvalid)
}

func TestValidate_NegativeDayTotal(t *testing.T) {
	_, err := itinerary.Validate(`{"destination": "Paris", "days": [{"day": 1, "title": "a", "dayTotal": -1}]}`)

	assert.ErrorIs(t, err, itinerary.ErrInvalid)
}

func TestTotalBudget_SumsDayTotals(t *testing.T) {
	it, err := itinerary.Validate(validRaw)

	require.NoError(t, err)
	assert.Equal(t, 690.0, itinerary.TotalBudget(it))
}

// The provider's per-day arithmetic is trusted even when it disagrees with the
// activity costs; only the aggregate is computed server-side.
func TestTotalBudget_DoesNotRecomputeDayTotals(t *testing.T) {
	it, err := itinerary.Validate(`{"destination": "Paris", "days": [
		{"day": 1, "title": "a", "morning": {"title": "x", "estimatedCost": 100}, "dayTotal": 70}
	]}`)

	require.NoError(t, err)
	assert.Equal(t, 70.0, it.Days[0].DayTotal)
	assert.Equal(t, 70.0, itinerary.TotalBudget(it))
}

func TestValidate_Idempotent(t *testing.T) {
	first, err := itinerary.Validate(validRaw)
	require.NoError(t, err)

	second, err := itinerary.Validate(validRaw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, itinerary.TotalBudget(first), itinerary.TotalBudget(second))
}

func TestTotalBudget_Empty(t *testing.T) {
	assert.Zero(t, itinerary.TotalBudget(model.Itinerary{}))
}
