package controllers

import (
	"context"

	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/dao"
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"
)

type StatusController struct {
	statusDAO *dao.StatusDAO
}

func NewStatusController(statusDAO *dao.StatusDAO) *StatusController {
	return &StatusController{statusDAO: statusDAO}
}

func (c *StatusController) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	return c.statusDAO.Create(ctx, clientName)
}

func (c *StatusController) List(ctx context.Context) ([]models.StatusCheck, error) {
	return c.statusDAO.List(ctx)
}
