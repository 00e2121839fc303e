package amap

import "context"

// TextSearchParams - поиск POI по ключевым словам
type TextSearchParams struct {
	Keywords   string
	Types      string
	City       string
	CityLimit  string
	Children   string
	Offset     string
	Page       string
	Extensions string
}

// AroundSearchParams - поиск POI вокруг точки
type AroundSearchParams struct {
	Location   string
	Keywords   string
	Types      string
	City       string
	Radius     string
	SortRule   string
	Offset     string
	Page       string
	Extensions string
}

// PolygonSearchParams - поиск POI внутри полигона
type PolygonSearchParams struct {
	Polygon    string
	Keywords   string
	Types      string
	Offset     string
	Page       string
	Extensions string
}

// InputTipsParams - подсказки при вводе
type InputTipsParams struct {
	Keywords  string
	Type      string
	Location  string
	City      string
	CityLimit string
	DataType  string
}

// TextSearch - поиск POI по ключевым словам или типам
func (c *Client) TextSearch(ctx context.Context, p TextSearchParams, format Format) (*Response, error) {
	return c.Call(ctx, OpTextSearch, Params{
		"keywords":   p.Keywords,
		"types":      p.Types,
		"city":       p.City,
		"citylimit":  p.CityLimit,
		"children":   p.Children,
		"offset":     p.Offset,
		"page":       p.Page,
		"extensions": p.Extensions,
	}, format)
}

// AroundSearch - поиск POI вокруг точки
func (c *Client) AroundSearch(ctx context.Context, p AroundSearchParams, format Format) (*Response, error) {
	return c.Call(ctx, OpAroundSearch, Params{
		"location":   p.Location,
		"keywords":   p.Keywords,
		"types":      p.Types,
		"city":       p.City,
		"radius":     p.Radius,
		"sortrule":   p.SortRule,
		"offset":     p.Offset,
		"page":       p.Page,
		"extensions": p.Extensions,
	}, format)
}

// PolygonSearch - поиск POI внутри полигона
func (c *Client) PolygonSearch(ctx context.Context, p PolygonSearchParams, format Format) (*Response, error) {
	return c.Call(ctx, OpPolygonSearch, Params{
		"polygon":    p.Polygon,
		"keywords":   p.Keywords,
		"types":      p.Types,
		"offset":     p.Offset,
		"page":       p.Page,
		"extensions": p.Extensions,
	}, format)
}

// DetailSearch - POI по идентификатору
func (c *Client) DetailSearch(ctx context.Context, id string, format Format) (*Response, error) {
	return c.Call(ctx, OpDetailSearch, Params{"id": id}, format)
}

// InputTips - подсказки при вводе
func (c *Client) InputTips(ctx context.Context, p InputTipsParams, format Format) (*Response, error) {
	return c.Call(ctx, OpInputTips, Params{
		"keywords":  p.Keywords,
		"type":      p.Type,
		"location":  p.Location,
		"city":      p.City,
		"citylimit": p.CityLimit,
		"datatype":  p.DataType,
	}, format)
}
