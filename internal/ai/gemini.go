package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"nexus-asset-manager/internal/config"
	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
)

const geminiService = "gemini"

// contentGenerator is the part of genai.Models the assistant uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAssistant calls the Gemini API.
type GeminiAssistant struct {
	models contentGenerator
	model  string
}

// New returns a Gemini-backed assistant, or Disabled when no key is configured.
func New(ctx context.Context, cfg config.AIConfig) (Assistant, error) {
	if cfg.APIKey == "" {
		logger.Warn("Gemini API Key is missing. AI features will be disabled.")
		return Disabled{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &GeminiAssistant{models: client.Models, model: cfg.Model}, nil
}

func (g *GeminiAssistant) AnalyzeInventory(ctx context.Context, query string, assets []domain.Asset) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", &domain.ValidationError{Field: "query", Reason: "is required"}
	}
	snapshot, err := Snapshot(assets)
	if err != nil {
		return "", err
	}

	text, err := g.generate(ctx, "analyze_inventory", query, InventoryInstruction(snapshot))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return NoAnswer, nil
	}
	return text, nil
}

func (g *GeminiAssistant) DraftDocument(ctx context.Context, instruction string, current domain.Markup) (domain.Markup, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", &domain.ValidationError{Field: "instruction", Reason: "is required"}
	}
	text, err := g.generate(ctx, "draft_document", DraftPrompt(instruction, current), draftInstruction)
	if err != nil {
		return "", err
	}
	return domain.Markup(StripCodeFences(text)), nil
}

func (g *GeminiAssistant) generate(ctx context.Context, operation, prompt, systemInstruction string) (string, error) {
	logger.ExternalServiceCall(geminiService, operation, "model", g.model)
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	logger.ExternalServiceResult(geminiService, operation, err)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	return resp.Text(), nil
}
