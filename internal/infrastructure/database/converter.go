package database

import (
	"fmt"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// Row-to-entity conversion goes through the validating constructors so
// a corrupt row can never leak an invalid entity into the domain.

func toProductEntity(m *ProductModel) (*entity.Product, error) {
	p, err := entity.NewProduct(m.ID, m.Name, m.Brand, m.Category, m.Size, m.Color, m.Price, m.Stock, m.Description)
	if err != nil {
		return nil, fmt.Errorf("invalid product row %d: %w", m.ID, err)
	}
	return p, nil
}

func toProductEntities(models []ProductModel) ([]*entity.Product, error) {
	result := make([]*entity.Product, 0, len(models))
	for i := range models {
		p, err := toProductEntity(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func toChatMessageEntity(m *ChatMemoryModel) (*entity.ChatMessage, error) {
	msg, err := entity.NewChatMessage(m.ID, m.SessionID, m.Role, m.Message, m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid chat row %d: %w", m.ID, err)
	}
	return msg, nil
}

func toChatMessageEntities(models []ChatMemoryModel) ([]*entity.ChatMessage, error) {
	result := make([]*entity.ChatMessage, 0, len(models))
	for i := range models {
		msg, err := toChatMessageEntity(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, nil
}
