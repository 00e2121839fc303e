package amap

import "context"

// RegeoParams - параметры обратного геокодирования
type RegeoParams struct {
	Location   string // "lng,lat"
	PoiType    string
	Radius     string // по умолчанию 1000
	RoadLevel  string
	Callback   string
	HomeOrCorp string // по умолчанию 0
}

// Geo - геокодирование адреса
func (c *Client) Geo(ctx context.Context, address, city string, format Format) (*Response, error) {
	return c.Call(ctx, OpGeo, Params{
		"address": address,
		"city":    city,
	}, format)
}

// Regeo - обратное геокодирование. extensions: base или all (пусто - base).
func (c *Client) Regeo(ctx context.Context, p RegeoParams, extensions string, format Format) (*Response, error) {
	return c.Call(ctx, OpRegeo, Params{
		"location":   p.Location,
		"poitype":    p.PoiType,
		"radius":     p.Radius,
		"roadlevel":  p.RoadLevel,
		"callback":   p.Callback,
		"homeorcorp": p.HomeOrCorp,
		"extensions": extensions,
	}, format)
}
