package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tripai/tripai-go/internal/itinerary"
	"github.com/tripai/tripai-go/internal/model"
)

// Provider is the external generation provider, treated as an opaque
// prompt-to-text function.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorService builds the generation request, invokes the provider once,
// and validates the response. It never persists anything — a generated
// itinerary is disposable until the caller explicitly saves it.
type GeneratorService struct {
	provider Provider
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(provider Provider) *GeneratorService {
	return &GeneratorService{provider: provider}
}

// Generate produces a validated itinerary for the requested trip parameters.
// Provider and validator errors are propagated unchanged; there is no retry.
func (s *GeneratorService) Generate(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return model.GenerateResponse{}, ErrDestinationRequired
	}
	if req.Days < 1 {
		return model.GenerateResponse{}, ErrDaysInvalid
	}
	if err := validateBudget(req.BudgetMin, req.BudgetMax); err != nil {
		return model.GenerateResponse{}, err
	}

	prompt := itinerary.BuildPrompt(req)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("itinerary generation failed",
			"user_id", userID,
			"destination", req.Destination,
			"days", req.Days,
			"error", err,
		)
		return model.GenerateResponse{}, err
	}

	it, err := itinerary.Validate(raw)
	if err != nil {
		slog.Warn("provider response rejected",
			"user_id", userID,
			"destination", req.Destination,
			"error", err,
		)
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Itinerary:   it,
		TotalBudget: itinerary.TotalBudget(it),
	}, nil
}
