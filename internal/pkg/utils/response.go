package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/amap-gateway/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error     *errors.AppError `json:"error"`
	RequestID string           `json:"request_id,omitempty"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendXML отдает XML ответ без изменений
func SendXML(c *fiber.Ctx, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.SendString(body)
}

// SendError отдает AppError с его статусом, любую другую ошибку как 500.
// request_id берется из Locals, его кладет middleware.Logger.
func SendError(c *fiber.Ctx, err error) error {
	reqID, _ := c.Locals("request_id").(string)

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.ErrInternalServer
	}

	status := appErr.StatusCode
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(ErrorResponse{
		Error:     appErr,
		RequestID: reqID,
	})
}
