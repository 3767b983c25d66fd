package dao

import (
	"context"

	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusDAO struct {
	DB *gorm.DB
}

func NewStatusDAO(db *gorm.DB) *StatusDAO {
	return &StatusDAO{DB: db}
}

func (dao *StatusDAO) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  models.Now(),
	}
	if err := dao.DB.WithContext(ctx).Create(check).Error; err != nil {
		return nil, err
	}
	return check, nil
}

func (dao *StatusDAO) List(ctx context.Context) ([]models.StatusCheck, error) {
	checks := make([]models.StatusCheck, 0)
	err := dao.DB.WithContext(ctx).
		Limit(listLimit).
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}
