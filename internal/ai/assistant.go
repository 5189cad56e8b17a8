// Package ai answers inventory questions and drafts document HTML through a
// hosted language model.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nexus-asset-manager/internal/domain"
)

// Assistant is the language-model collaborator.
type Assistant interface {
	AnalyzeInventory(ctx context.Context, query string, assets []domain.Asset) (string, error)
	DraftDocument(ctx context.Context, instruction string, current domain.Markup) (domain.Markup, error)
}

// NoAnswer is returned when the model produced no text for a query.
const NoAnswer = "I couldn't generate a response based on the inventory data."

// SnapshotItem is the subset of an asset shared with the model.
type SnapshotItem struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Type         domain.AssetType   `json:"type"`
	Status       domain.AssetStatus `json:"status"`
	Price        float64            `json:"price"`
	PurchaseDate string             `json:"purchaseDate"`
	AssignedTo   string             `json:"assignedTo,omitempty"`
}

// Snapshot serializes the fields the assistant is allowed to see.
func Snapshot(assets []domain.Asset) (string, error) {
	items := make([]SnapshotItem, len(assets))
	for i, a := range assets {
		items[i] = SnapshotItem{
			ID:           a.ID,
			Name:         a.Name,
			Type:         a.Type,
			Status:       a.Status,
			Price:        a.Price,
			PurchaseDate: a.PurchaseDate,
			AssignedTo:   a.AssignedTo,
		}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode inventory snapshot: %w", err)
	}
	return string(data), nil
}

const inventoryInstruction = `You are Nexus, an intelligent IT Asset Management Assistant.
You have access to the current inventory data provided below in JSON format.

Your goal is to answer user questions regarding the inventory, generate insights, summary statistics, or suggestions.

Rules:
1. Base your answers STRICTLY on the provided JSON data.
2. If the user asks for information not in the data, state that you don't have that information.
3. Be concise and professional.
4. You can calculate totals, averages, and count items based on criteria.
5. Format currency in USD.

Current Inventory Data:
`

const draftInstruction = `You are a professional document assistant.
Your task is to help write or improve HTML content for business documents (memos, reports, letters).

Rules:
1. Return ONLY the HTML content. Do not include markdown code blocks or explanations.
2. Use simple inline styles if formatting is needed (e.g. style="font-weight:bold").
3. Keep the tone professional.
4. If the user asks to rewrite, use the provided current content context.
`

// InventoryInstruction builds the system instruction for an inventory query.
func InventoryInstruction(snapshot string) string {
	return inventoryInstruction + snapshot
}

// DraftPrompt builds the user turn for a drafting request.
func DraftPrompt(instruction string, current domain.Markup) string {
	return fmt.Sprintf("User Prompt: %s\n\nCurrent Document Context (if any): %s", instruction, current)
}

// StripCodeFences removes a surrounding Markdown code block the model may
// add despite being told not to.
func StripCodeFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		// drop the language tag line, e.g. ```html
		if !strings.ContainsAny(t[:nl], "<>") {
			t = t[nl+1:]
		}
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

// Disabled is used when no API key is configured.
type Disabled struct{}

func (Disabled) AnalyzeInventory(ctx context.Context, query string, assets []domain.Asset) (string, error) {
	return "", fmt.Errorf("%w: API key is not configured, set the API_KEY environment variable", domain.ErrConfigMissing)
}

func (Disabled) DraftDocument(ctx context.Context, instruction string, current domain.Markup) (domain.Markup, error) {
	return "", fmt.Errorf("%w: API key is not configured, set the API_KEY environment variable", domain.ErrConfigMissing)
}
