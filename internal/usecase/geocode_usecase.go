package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amap-gateway/internal/domain"
	"github.com/amap-gateway/internal/infrastructure/amap"
	"github.com/amap-gateway/internal/usecase/dto"
)

// GeocodeUseCase - геокодирование событий из стрима через AMap
type GeocodeUseCase struct {
	amapUC *AmapUseCase
	logger *zap.Logger
}

// NewGeocodeUseCase создает новый GeocodeUseCase
func NewGeocodeUseCase(amapUC *AmapUseCase, logger *zap.Logger) *GeocodeUseCase {
	return &GeocodeUseCase{
		amapUC: amapUC,
		logger: logger,
	}
}

// Resolve обрабатывает событие. Ошибки AMap попадают в поле Error результата,
// error возвращается только при отмене контекста.
func (uc *GeocodeUseCase) Resolve(ctx context.Context, event *domain.GeocodeRequestEvent) (*domain.GeocodeDoneEvent, error) {
	result := &domain.GeocodeDoneEvent{
		RequestID: event.RequestID,
	}

	if !event.Validate() {
		result.Error = "address or valid location must be set"
		return result, nil
	}

	var err error
	if event.IsReverse() {
		err = uc.reverse(ctx, event, result)
	} else {
		err = uc.forward(ctx, event, result)
	}

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		uc.logger.Warn("Failed to geocode event",
			zap.String("request_id", event.RequestID.String()),
			zap.Bool("reverse", event.IsReverse()),
			zap.Error(err))
		result.Error = err.Error()
	}

	return result, nil
}

// forward - адрес -> координаты
func (uc *GeocodeUseCase) forward(ctx context.Context, event *domain.GeocodeRequestEvent, result *domain.GeocodeDoneEvent) error {
	resp, err := uc.amapUC.Geo(ctx, dto.GeoRequest{
		Address: event.Address,
		City:    event.City,
	})
	if err != nil {
		return err
	}
	obj, err := checkResponse(resp)
	if err != nil {
		return err
	}

	geocodes, _ := obj["geocodes"].([]interface{})
	if len(geocodes) == 0 {
		return fmt.Errorf("no geocoding results for %q", event.Address)
	}
	first, _ := geocodes[0].(map[string]interface{})

	result.FormattedAddress = stringField(first, "formatted_address")
	result.Province = stringField(first, "province")
	result.City = stringField(first, "city")
	result.District = stringField(first, "district")
	result.Adcode = stringField(first, "adcode")

	if loc := stringField(first, "location"); loc != "" {
		point, err := domain.ParsePoint(loc)
		if err != nil {
			return err
		}
		result.Location = &point
	}

	return nil
}

// reverse - координаты -> адрес
func (uc *GeocodeUseCase) reverse(ctx context.Context, event *domain.GeocodeRequestEvent, result *domain.GeocodeDoneEvent) error {
	resp, err := uc.amapUC.Regeo(ctx, dto.RegeoRequest{
		Location: event.Location.String(),
	})
	if err != nil {
		return err
	}
	obj, err := checkResponse(resp)
	if err != nil {
		return err
	}

	regeocode, _ := obj["regeocode"].(map[string]interface{})
	if regeocode == nil {
		return fmt.Errorf("no reverse geocoding result for %s", event.Location)
	}
	component, _ := regeocode["addressComponent"].(map[string]interface{})

	location := *event.Location
	result.Location = &location
	result.FormattedAddress = stringField(regeocode, "formatted_address")
	result.Province = stringField(component, "province")
	result.City = stringField(component, "city")
	result.District = stringField(component, "district")
	result.Adcode = stringField(component, "adcode")

	return nil
}

func checkResponse(resp *amap.Response) (map[string]interface{}, error) {
	obj, ok := resp.Object()
	if !ok {
		return nil, fmt.Errorf("unexpected AMap response: %.200s", resp.Raw)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("amap: %s (infocode %s)", resp.Info(), resp.InfoCode())
	}
	return obj, nil
}

// stringField - строковое поле объекта. AMap отдает [] вместо пустых строк.
func stringField(obj map[string]interface{}, name string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[name].(string)
	return s
}
