package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amap-gateway/internal/domain"
	"github.com/amap-gateway/internal/domain/repository"
	"github.com/amap-gateway/internal/infrastructure/amap"
	"github.com/amap-gateway/internal/pkg/errors"
	"github.com/amap-gateway/internal/pkg/validator"
	"github.com/amap-gateway/internal/usecase/dto"
)

const (
	defaultJournalLimit = 50
	usageWindow         = 24 * time.Hour
)

var _ repository.AmapRepository = (*amap.Client)(nil)

// AmapUseCase - вызовы AMap с журналированием
type AmapUseCase struct {
	amapRepo    repository.AmapRepository
	journalRepo repository.JournalRepository // nil - журнал выключен
	logger      *zap.Logger
}

// NewAmapUseCase создает новый экземпляр AmapUseCase.
// journalRepo может быть nil.
func NewAmapUseCase(
	amapRepo repository.AmapRepository,
	journalRepo repository.JournalRepository,
	logger *zap.Logger,
) *AmapUseCase {
	return &AmapUseCase{
		amapRepo:    amapRepo,
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// JournalEnabled сообщает, ведется ли журнал вызовов
func (uc *AmapUseCase) JournalEnabled() bool {
	return uc.journalRepo != nil
}

// parseOutput - формат ответа шлюза: пустой output означает json
func parseOutput(output string) (amap.Format, error) {
	if output == "" {
		return amap.FormatJSON, nil
	}
	return amap.ParseFormat(output)
}

// Call выполняет операцию AMap по имени. output - json, xml или пусто.
func (uc *AmapUseCase) Call(ctx context.Context, operation string, params amap.Params, output string) (*amap.Response, error) {
	format, err := parseOutput(output)
	if err != nil {
		return nil, err
	}

	if operation == amap.OpGraspRoad {
		if params, err = normalizeTrack(params); err != nil {
			return nil, err
		}
	}

	return uc.track(ctx, operation, params, format, func() (*amap.Response, error) {
		return uc.amapRepo.Call(ctx, operation, params, format)
	})
}

// normalizeTrack проверяет трек до обращения к AMap и кодирует его заново
// в компактный JSON. Пустой points оставляется клиенту.
func normalizeTrack(params amap.Params) (amap.Params, error) {
	raw := params["points"]
	if raw == "" {
		return params, nil
	}

	points, err := amap.TrackPointsFromJSON(raw)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(points)
	if err != nil {
		return nil, errors.InvalidParameter("invalid track points: %v", err)
	}

	result := make(amap.Params, len(params))
	for k, v := range params {
		result[k] = v
	}
	result["points"] = string(encoded)
	return result, nil
}

// Geo - геокодирование адреса
func (uc *AmapUseCase) Geo(ctx context.Context, req dto.GeoRequest) (*amap.Response, error) {
	req.Normalize()
	if err := validator.ValidateAs(req, errors.ErrInvalidParameter); err != nil {
		return nil, err
	}
	format, err := parseOutput(req.Output)
	if err != nil {
		return nil, err
	}

	params := amap.Params{"address": req.Address, "city": req.City}
	return uc.track(ctx, amap.OpGeo, params, format, func() (*amap.Response, error) {
		return uc.amapRepo.Geo(ctx, req.Address, req.City, format)
	})
}

// Regeo - обратное геокодирование
func (uc *AmapUseCase) Regeo(ctx context.Context, req dto.RegeoRequest) (*amap.Response, error) {
	req.Normalize()
	if err := validator.ValidateAs(req, errors.ErrInvalidParameter); err != nil {
		return nil, err
	}
	format, err := parseOutput(req.Output)
	if err != nil {
		return nil, err
	}

	p := amap.RegeoParams{
		Location:   req.Location,
		PoiType:    req.PoiType,
		Radius:     req.Radius,
		RoadLevel:  req.RoadLevel,
		HomeOrCorp: req.HomeOrCorp,
	}
	params := amap.Params{
		"location":   p.Location,
		"poitype":    p.PoiType,
		"radius":     p.Radius,
		"roadlevel":  p.RoadLevel,
		"homeorcorp": p.HomeOrCorp,
		"extensions": req.Extensions,
	}
	return uc.track(ctx, amap.OpRegeo, params, format, func() (*amap.Response, error) {
		return uc.amapRepo.Regeo(ctx, p, req.Extensions, format)
	})
}

// Weather - погода по adcode города
func (uc *AmapUseCase) Weather(ctx context.Context, req dto.WeatherRequest) (*amap.Response, error) {
	req.Normalize()
	if err := validator.ValidateAs(req, errors.ErrInvalidParameter); err != nil {
		return nil, err
	}
	format, err := parseOutput(req.Output)
	if err != nil {
		return nil, err
	}

	params := amap.Params{"city": req.City, "extensions": req.Extensions}
	return uc.track(ctx, amap.OpWeather, params, format, func() (*amap.Response, error) {
		return uc.amapRepo.Weather(ctx, req.City, req.Extensions, format)
	})
}

// Operations возвращает описание всех операций AMap
func (uc *AmapUseCase) Operations() []dto.OperationInfo {
	endpoints := amap.Endpoints()
	result := make([]dto.OperationInfo, 0, len(endpoints))
	for _, ep := range endpoints {
		info := dto.OperationInfo{
			Name:     ep.Name,
			Path:     string(ep.Service) + ep.Path,
			Required: ep.Required,
			AnyOf:    ep.AnyOf,
		}
		for _, p := range ep.Optional {
			info.Optional = append(info.Optional, p.Name)
		}
		result = append(result, info)
	}
	return result
}

// Journal возвращает последние вызовы и статистику за сутки
func (uc *AmapUseCase) Journal(ctx context.Context, limit int) (*dto.JournalResponse, error) {
	if uc.journalRepo == nil {
		return nil, errors.ErrJournalDisabled
	}
	if limit <= 0 {
		limit = defaultJournalLimit
	}

	calls, err := uc.journalRepo.Recent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to read call journal", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap("failed to read call journal", err)
	}

	usage, err := uc.journalRepo.UsageSince(ctx, time.Now().Add(-usageWindow))
	if err != nil {
		uc.logger.Error("Failed to read operation usage", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap("failed to read operation usage", err)
	}

	return &dto.JournalResponse{Calls: calls, Usage: usage}, nil
}

// track выполняет вызов, логирует ошибку и пишет запись в журнал
func (uc *AmapUseCase) track(
	ctx context.Context,
	operation string,
	params amap.Params,
	format amap.Format,
	call func() (*amap.Response, error),
) (*amap.Response, error) {
	start := time.Now()
	resp, err := call()
	elapsed := time.Since(start)

	if err != nil {
		fields := []zap.Field{
			zap.String("operation", operation),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		}
		if isClientError(err) {
			uc.logger.Warn("AMap call rejected", fields...)
			// до AMap запрос не дошел - в журнал не пишем
			return nil, err
		}
		uc.logger.Error("AMap call failed", fields...)
	} else if resp.Data != nil && !resp.OK() {
		uc.logger.Warn("AMap returned error status",
			zap.String("operation", operation),
			zap.String("info", resp.Info()),
			zap.String("infocode", resp.InfoCode()))
	}

	if uc.journalRepo != nil {
		uc.record(ctx, buildCall(operation, params, format, uc.amapRepo.Signing(), resp, err, elapsed))
	}
	return resp, err
}

func (uc *AmapUseCase) record(ctx context.Context, call *domain.UpstreamCall) {
	// запись в журнал не должна отменяться вместе с запросом клиента
	if err := uc.journalRepo.Record(context.WithoutCancel(ctx), call); err != nil {
		uc.logger.Warn("Failed to record upstream call",
			zap.String("operation", call.Operation),
			zap.Error(err))
	}
}

func buildCall(
	operation string,
	params amap.Params,
	format amap.Format,
	signed bool,
	resp *amap.Response,
	err error,
	elapsed time.Duration,
) *domain.UpstreamCall {
	call := &domain.UpstreamCall{
		ID:         uuid.New(),
		Operation:  operation,
		Format:     string(format),
		Params:     paramNames(params),
		Signed:     signed,
		Status:     domain.CallStatusOK,
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  time.Now(),
	}

	switch {
	case err != nil:
		call.Status = domain.CallStatusFailed
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			call.ErrorCode = appErr.Code
		}
	case resp.Data != nil:
		call.InfoCode = resp.InfoCode()
		if !resp.OK() {
			call.Status = domain.CallStatusRejected
		}
	}

	return call
}

// paramNames - отсортированные имена непустых параметров (значения не журналируются)
func paramNames(params amap.Params) []string {
	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isClientError(err error) bool {
	return stderrors.Is(err, errors.ErrInvalidParameter) ||
		stderrors.Is(err, errors.ErrOperationNotFound) ||
		stderrors.Is(err, errors.ErrConfiguration)
}
