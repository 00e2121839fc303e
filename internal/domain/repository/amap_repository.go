package repository

import (
	"context"

	"github.com/amap-gateway/internal/infrastructure/amap"
)

// AmapRepository определяет методы для работы с AMap WebService API
type AmapRepository interface {
	// Call выполняет операцию по имени из таблицы эндпоинтов
	Call(ctx context.Context, operation string, params amap.Params, format amap.Format) (*amap.Response, error)

	// Geo - геокодирование адреса
	Geo(ctx context.Context, address, city string, format amap.Format) (*amap.Response, error)

	// Regeo - обратное геокодирование
	Regeo(ctx context.Context, p amap.RegeoParams, extensions string, format amap.Format) (*amap.Response, error)

	// Weather - погода (base - текущая, all - прогноз)
	Weather(ctx context.Context, city, extensions string, format amap.Format) (*amap.Response, error)

	// Signing сообщает, подписываются ли запросы
	Signing() bool
}
