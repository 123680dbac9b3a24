package itinerary

import (
	"fmt"
	"strings"

	"github.com/tripai/tripai-go/internal/model"
)

// responseFormat is the exact JSON shape the provider is told to return.
// It mirrors model.Itinerary; keep the two in sync.
const responseFormat = `{
  "destination": "Nome do Destino",
  "country": "País",
  "region": "Região/Continente",
  "summary": "Breve resumo do roteiro",
  "month": "Mês e Ano sugerido",
  "totalActivities": <número total de atividades>,
  "days": [
    {
      "day": 1,
      "title": "Título do Dia",
      "subtitle": "Breve descrição das atividades do dia",
      "morning": {
        "title": "Atividade da Manhã",
        "description": "Descrição detalhada...",
        "estimatedCost": <custo em reais>
      },
      "afternoon": {
        "title": "Atividade da Tarde",
        "description": "Descrição detalhada...",
        "estimatedCost": <custo em reais>
      },
      "evening": {
        "title": "Atividade da Noite",
        "description": "Descrição detalhada...",
        "estimatedCost": <custo em reais>
      },
      "dayTotal": <soma dos custos do dia>
    }
  ]
}`

// BuildPrompt assembles the single natural-language request sent to the
// provider. The response language is fixed to Brazilian Portuguese and the
// budget range is mentioned only when both bounds are present.
func BuildPrompt(req model.GenerateRequest) string {
	var b strings.Builder

	b.WriteString("Você é um especialista em viagens. Gere um roteiro de viagem detalhado em português brasileiro.\n\n")
	fmt.Fprintf(&b, "Gere um roteiro de %d dias para %s.", req.Days, strings.TrimSpace(req.Destination))

	if req.BudgetMin != nil && req.BudgetMax != nil {
		label := "Moderado"
		if req.BudgetLabel != nil && *req.BudgetLabel != "" {
			label = *req.BudgetLabel
		}
		fmt.Fprintf(&b, " Orçamento total estimado: de R$ %d a R$ %d (%s).", *req.BudgetMin, *req.BudgetMax, label)
	}

	b.WriteString(" Inclua atividades pela manhã, tarde e noite com custos estimados em reais brasileiros.\n\n")
	b.WriteString("Retorne SOMENTE um objeto JSON válido no seguinte formato exato:\n")
	b.WriteString(responseFormat)

	return b.String()
}
