package amap

import (
	"context"
	"encoding/json"

	"github.com/amap-gateway/internal/pkg/errors"
)

// TrafficParams - общие параметры запросов о дорожной ситуации
type TrafficParams struct {
	Level      string
	Extensions string
}

// TrackPoint - точка трека для коррекции
type TrackPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"sp"`
	Angle float64 `json:"ag"`
	Time  int64   `json:"tm"`
}

// EventByAdcode - дорожные события по коду административной единицы
func (c *Client) EventByAdcode(ctx context.Context, adcode, eventType string, format Format) (*Response, error) {
	return c.Call(ctx, OpEventByAdcode, Params{
		"adcode":    adcode,
		"eventType": eventType,
	}, format)
}

// TrafficRectangle - дорожная ситуация в прямоугольнике "lng,lat;lng,lat"
func (c *Client) TrafficRectangle(ctx context.Context, rectangle string, p TrafficParams, format Format) (*Response, error) {
	return c.Call(ctx, OpTrafficRectangle, Params{
		"rectangle":  rectangle,
		"level":      p.Level,
		"extensions": p.Extensions,
	}, format)
}

// TrafficCircle - дорожная ситуация в круге
func (c *Client) TrafficCircle(ctx context.Context, location, radius string, p TrafficParams, format Format) (*Response, error) {
	return c.Call(ctx, OpTrafficCircle, Params{
		"location":   location,
		"radius":     radius,
		"level":      p.Level,
		"extensions": p.Extensions,
	}, format)
}

// TrafficRoad - дорожная ситуация на дороге. Нужен adcode или city.
func (c *Client) TrafficRoad(ctx context.Context, name, adcode, city string, p TrafficParams, format Format) (*Response, error) {
	return c.Call(ctx, OpTrafficRoad, Params{
		"name":       name,
		"adcode":     adcode,
		"city":       city,
		"level":      p.Level,
		"extensions": p.Extensions,
	}, format)
}

// GraspRoad - коррекция трека по дорогам. Точки передаются JSON массивом в параметре points.
func (c *Client) GraspRoad(ctx context.Context, points []TrackPoint, format Format) (*Response, error) {
	if len(points) == 0 {
		return nil, errors.InvalidParameter("points property must be set")
	}
	encoded, err := json.Marshal(points)
	if err != nil {
		return nil, errors.InvalidParameter("invalid track points: %v", err)
	}
	return c.Call(ctx, OpGraspRoad, Params{"points": string(encoded)}, format)
}

// TrackPointsFromJSON разбирает точки трека, пришедшие строкой (параметр points шлюза)
func TrackPointsFromJSON(s string) ([]TrackPoint, error) {
	var points []TrackPoint
	if err := json.Unmarshal([]byte(s), &points); err != nil {
		return nil, errors.InvalidParameter("invalid track points: %v", err)
	}
	if len(points) == 0 {
		return nil, errors.InvalidParameter("points property must be set")
	}
	return points, nil
}
