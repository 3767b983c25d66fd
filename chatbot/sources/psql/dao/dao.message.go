package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageDAO struct {
	DB *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{DB: db}
}

func (dao *MessageDAO) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	err := dao.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Limit(listLimit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (dao *MessageDAO) Save(ctx context.Context, sessionID string, role models.Role, content string) (*models.ChatMessage, error) {
	msg, err := newMessage(sessionID, role, content, models.Now())
	if err != nil {
		return nil, err
	}
	if err := dao.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// SaveExchange persists one chat turn atomically: the user message, the
// assistant message, and the session updated_at bump.
func (dao *MessageDAO) SaveExchange(ctx context.Context, sessionID, userText, assistantText string) (*models.ChatMessage, *models.ChatMessage, error) {
	userAt := models.Now()
	assistantAt := models.Now()
	// clock resolution can tie the pair; the reply must sort after the prompt
	if !assistantAt.After(userAt.Time) {
		assistantAt = models.NewISOTime(userAt.Add(time.Microsecond))
	}

	userMsg, err := newMessage(sessionID, models.RoleUser, userText, userAt)
	if err != nil {
		return nil, nil, err
	}
	assistantMsg, err := newMessage(sessionID, models.RoleAssistant, assistantText, assistantAt)
	if err != nil {
		return nil, nil, err
	}

	err = dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userMsg).Error; err != nil {
			return err
		}
		if err := tx.Create(assistantMsg).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatSession{}).
			Where("session_id = ?", sessionID).
			Update("updated_at", assistantAt).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return userMsg, assistantMsg, nil
}

func newMessage(sessionID string, role models.Role, content string, at models.ISOTime) (*models.ChatMessage, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unsupported message role %q", role)
	}
	return &models.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: at,
	}, nil
}
