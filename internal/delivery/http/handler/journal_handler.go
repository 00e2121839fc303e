package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/amap-gateway/internal/pkg/utils"
	"github.com/amap-gateway/internal/usecase"
)

// JournalHandler отдает журнал вызовов AMap
type JournalHandler struct {
	amapUC *usecase.AmapUseCase
	logger *zap.Logger
}

// NewJournalHandler создает новый экземпляр JournalHandler
func NewJournalHandler(amapUC *usecase.AmapUseCase, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		amapUC: amapUC,
		logger: logger,
	}
}

// GetJournal godoc
// @Summary Журнал вызовов AMap
// @Description Последние вызовы AMap и статистика по операциям за сутки
// @Tags Journal
// @Produce json
// @Param limit query int false "Количество записей" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.JournalResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/journal [get]
func (h *JournalHandler) GetJournal(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	h.logger.Debug("Handling get journal request", zap.Int("limit", limit))

	journal, err := h.amapUC.Journal(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, journal, &utils.Meta{
		Total: len(journal.Calls),
		Limit: limit,
	})
}
