package amap

import "context"

// DistrictParams - запрос административного деления
type DistrictParams struct {
	Keywords    string
	SubDistrict string
	Page        string
	Offset      string
	Extensions  string
	Filter      string
}

// StaticMapParams - параметры статической карты
type StaticMapParams struct {
	Location string
	Zoom     string
	Size     string
	Scale    string
	Markers  string
	Labels   string
	Paths    string
	Traffic  string
}

// District - административное деление
func (c *Client) District(ctx context.Context, p DistrictParams, format Format) (*Response, error) {
	return c.Call(ctx, OpDistrict, Params{
		"keywords":    p.Keywords,
		"subdistrict": p.SubDistrict,
		"page":        p.Page,
		"offset":      p.Offset,
		"extensions":  p.Extensions,
		"filter":      p.Filter,
	}, format)
}

// IP - определение местоположения по IP. Пустой ip - адрес вызывающего.
func (c *Client) IP(ctx context.Context, ip string, format Format) (*Response, error) {
	return c.Call(ctx, OpIP, Params{"ip": ip}, format)
}

// StaticMap - статическая карта. Тело ответа не интерпретируется.
func (c *Client) StaticMap(ctx context.Context, p StaticMapParams, format Format) (*Response, error) {
	return c.Call(ctx, OpStaticMap, Params{
		"location": p.Location,
		"zoom":     p.Zoom,
		"size":     p.Size,
		"scale":    p.Scale,
		"markers":  p.Markers,
		"labels":   p.Labels,
		"paths":    p.Paths,
		"traffic":  p.Traffic,
	}, format)
}

// Convert - конвертация координат в систему AMap.
// coordsys: gps, mapbar, baidu, autonavi (по умолчанию).
func (c *Client) Convert(ctx context.Context, locations, coordsys string, format Format) (*Response, error) {
	return c.Call(ctx, OpConvert, Params{
		"locations": locations,
		"coordsys":  coordsys,
	}, format)
}
