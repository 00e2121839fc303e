package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/amap-gateway/internal/delivery/http/middleware"
	"github.com/amap-gateway/internal/infrastructure/amap"
	"github.com/amap-gateway/internal/pkg/errors"
	"github.com/amap-gateway/internal/pkg/utils"
	"github.com/amap-gateway/internal/usecase"
	"github.com/amap-gateway/internal/usecase/dto"
)

// AmapHandler - прокси к AMap WebService API
type AmapHandler struct {
	amapUC *usecase.AmapUseCase
	logger *zap.Logger
}

// NewAmapHandler создает новый экземпляр AmapHandler
func NewAmapHandler(amapUC *usecase.AmapUseCase, logger *zap.Logger) *AmapHandler {
	return &AmapHandler{
		amapUC: amapUC,
		logger: logger,
	}
}

// Geo godoc
// @Summary Геокодирование адреса
// @Description Преобразует структурированный адрес в координаты (AMap /v3/geocode/geo)
// @Tags AMap
// @Produce json,xml
// @Param address query string true "Адрес"
// @Param city query string false "Город: название, citycode или adcode"
// @Param output query string false "Формат ответа (json, xml)" default(json)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/amap/geo [get]
func (h *AmapHandler) Geo(c *fiber.Ctx) error {
	var req dto.GeoRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.InvalidParameter("invalid query: %v", err))
	}

	start := time.Now()
	resp, err := h.amapUC.Geo(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, resp, start)
}

// Regeo godoc
// @Summary Обратное геокодирование
// @Description Преобразует координаты "lng,lat" в адрес (AMap /v3/geocode/regeo)
// @Tags AMap
// @Produce json,xml
// @Param location query string true "Координаты lng,lat"
// @Param poitype query string false "Типы POI"
// @Param radius query string false "Радиус поиска в метрах" default(1000)
// @Param roadlevel query string false "Уровень дорог"
// @Param homeorcorp query string false "Сортировка POI (0, 1, 2)" default(0)
// @Param extensions query string false "base или all" default(base)
// @Param output query string false "Формат ответа (json, xml)" default(json)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/amap/regeo [get]
func (h *AmapHandler) Regeo(c *fiber.Ctx) error {
	var req dto.RegeoRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.InvalidParameter("invalid query: %v", err))
	}

	start := time.Now()
	resp, err := h.amapUC.Regeo(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, resp, start)
}

// Weather godoc
// @Summary Погода
// @Description Текущая погода (extensions=base) или прогноз (extensions=all) по adcode города
// @Tags AMap
// @Produce json,xml
// @Param city query string true "adcode города"
// @Param extensions query string false "base или all" default(base)
// @Param output query string false "Формат ответа (json, xml)" default(json)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/amap/weather [get]
func (h *AmapHandler) Weather(c *fiber.Ctx) error {
	var req dto.WeatherRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.InvalidParameter("invalid query: %v", err))
	}

	start := time.Now()
	resp, err := h.amapUC.Weather(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, resp, start)
}

// Operations godoc
// @Summary Список операций AMap
// @Description Имена операций, пути и параметры, которые принимает /api/v1/amap/{operation}
// @Tags AMap
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.OperationInfo}
// @Router /api/v1/amap/operations [get]
func (h *AmapHandler) Operations(c *fiber.Ctx) error {
	ops := h.amapUC.Operations()
	return utils.SendSuccess(c, ops, &utils.Meta{Total: len(ops)})
}

// Call godoc
// @Summary Вызов операции AMap по имени
// @Description Параметры строки запроса передаются в AMap без изменений, output задает формат ответа
// @Tags AMap
// @Produce json,xml
// @Param operation path string true "Имя операции (geo, regeo, walking, driving, text_search, ...)"
// @Param output query string false "Формат ответа (json, xml)" default(json)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/amap/{operation} [get]
func (h *AmapHandler) Call(c *fiber.Ctx) error {
	// строки fiber ссылаются на буфер запроса, а имя операции и параметры уходят в журнал
	operation := fiberutils.CopyString(c.Params("operation"))

	params := amap.Params{}
	for name, value := range c.Queries() {
		if name == "output" {
			continue
		}
		params[fiberutils.CopyString(name)] = fiberutils.CopyString(value)
	}

	h.logger.Debug("Proxying AMap operation",
		zap.String("request_id", middleware.RequestID(c)),
		zap.String("operation", operation),
		zap.Int("params", len(params)))

	start := time.Now()
	resp, err := h.amapUC.Call(c.Context(), operation, params, fiberutils.CopyString(c.Query("output")))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, resp, start)
}

// send отдает ответ AMap: JSON оборачивается в data, XML - как есть
func (h *AmapHandler) send(c *fiber.Ctx, resp *amap.Response, start time.Time) error {
	if resp.Format == amap.FormatXML {
		return utils.SendXML(c, resp.Raw)
	}

	return utils.SendSuccess(c, resp.Data, &utils.Meta{
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}
