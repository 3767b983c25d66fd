package dao

import (
	"context"

	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listLimit caps every unbounded listing query.
const listLimit = 1000

type SessionDAO struct {
	DB *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{DB: db}
}

func (dao *SessionDAO) Create(ctx context.Context) (*models.ChatSession, error) {
	now := models.Now()
	session := &models.ChatSession{
		SessionID: uuid.New().String(),
		Title:     models.DefaultSessionTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := dao.DB.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (dao *SessionDAO) List(ctx context.Context) ([]models.ChatSession, error) {
	sessions := make([]models.ChatSession, 0)
	err := dao.DB.WithContext(ctx).
		Order("updated_at DESC").
		Limit(listLimit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (dao *SessionDAO) Touch(ctx context.Context, sessionID string, at models.ISOTime) error {
	return dao.DB.WithContext(ctx).
		Model(&models.ChatSession{}).
		Where("session_id = ?", sessionID).
		Update("updated_at", at).Error
}

// DeleteWithMessages removes a session and everything it owns. Messages go
// first so a failure cannot orphan them. Unknown session ids are a no-op.
func (dao *SessionDAO) DeleteWithMessages(ctx context.Context, sessionID string) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).Delete(&models.ChatSession{}).Error
	})
}
