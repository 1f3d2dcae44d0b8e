package ui

import (
	"fmt"
	"strings"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/types"
)

// RenderProductTable renders the catalog as an aligned table.
func RenderProductTable(products []types.Product) string {
	if len(products) == 0 {
		return "No products found."
	}

	var b strings.Builder

	header := fmt.Sprintf("%-4s %-24s %-10s %-10s %-6s %-8s %10s %7s",
		"ID", "NAME", "BRAND", "CATEGORY", "SIZE", "COLOR", "PRICE", "STOCK")
	b.WriteString(Styles.TableHeader.Render(header))
	b.WriteString("\n")

	for _, p := range products {
		row := fmt.Sprintf("%-4d %-24s %-10s %-10s %-6s %-8s %10.2f %7d",
			p.ID, truncate(p.Name, 24), truncate(p.Brand, 10), truncate(p.Category, 10),
			p.Size, truncate(p.Color, 8), p.Price, p.Stock)
		if p.Stock == 0 {
			row = Styles.OutOfStock.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}

// RenderProductDetail renders one product with its description.
func RenderProductDetail(p *types.Product) string {
	var b strings.Builder

	b.WriteString(Styles.Bold.Render(fmt.Sprintf("%s (#%d)", p.Name, p.ID)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Brand:    %s\n", p.Brand))
	b.WriteString(fmt.Sprintf("  Category: %s\n", p.Category))
	b.WriteString(fmt.Sprintf("  Size:     %s\n", p.Size))
	b.WriteString(fmt.Sprintf("  Color:    %s\n", p.Color))
	b.WriteString(fmt.Sprintf("  Price:    %.2f\n", p.Price))
	b.WriteString(fmt.Sprintf("  Stock:    %d\n", p.Stock))
	if p.Description != "" {
		b.WriteString(fmt.Sprintf("  %s\n", p.Description))
	}

	return b.String()
}

// RenderChatTurn renders one history message with its speaker label.
func RenderChatTurn(item types.ChatHistoryItem) string {
	if item.Role == "user" {
		return Styles.User.Render("Tú: ") + item.Message
	}
	return Styles.Assistant.Render("Asistente: ") + item.Message
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
