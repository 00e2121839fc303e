package amap

import "context"

// TransitParams - параметры маршрута на общественном транспорте
type TransitParams struct {
	Origin      string
	Destination string
	City        string
	CityD       string
	Extensions  string
	Strategy    string
	NightFlag   string
	Date        string
	Time        string
}

// DrivingParams - параметры автомобильного маршрута
type DrivingParams struct {
	Origin          string
	Destination     string
	OriginID        string
	DestinationID   string
	OriginType      string
	Strategy        string
	Waypoints       string
	AvoidPolygons   string
	AvoidRoad       string
	Province        string
	Number          string
	CarType         string
	Ferry           string
	RoadAggregation string
	NoSteps         string
	Extensions      string
}

// FutureDrivingParams - параметры маршрута с будущим временем выезда
type FutureDrivingParams struct {
	Origin      string
	Destination string
	FirstTime   string // unix timestamp первого выезда
	Interval    string
	Count       string
	Strategy    string
	Province    string
	Number      string
	CarType     string
}

// Walking - пешеходный маршрут
func (c *Client) Walking(ctx context.Context, origin, destination string, format Format) (*Response, error) {
	return c.Call(ctx, OpWalking, Params{
		"origin":      origin,
		"destination": destination,
	}, format)
}

// Transit - маршрут на общественном транспорте
func (c *Client) Transit(ctx context.Context, p TransitParams, format Format) (*Response, error) {
	return c.Call(ctx, OpTransit, Params{
		"origin":      p.Origin,
		"destination": p.Destination,
		"city":        p.City,
		"cityd":       p.CityD,
		"extensions":  p.Extensions,
		"strategy":    p.Strategy,
		"nightflag":   p.NightFlag,
		"date":        p.Date,
		"time":        p.Time,
	}, format)
}

// Driving - автомобильный маршрут
func (c *Client) Driving(ctx context.Context, p DrivingParams, format Format) (*Response, error) {
	return c.Call(ctx, OpDriving, Params{
		"origin":          p.Origin,
		"destination":     p.Destination,
		"originid":        p.OriginID,
		"destinationid":   p.DestinationID,
		"origintype":      p.OriginType,
		"strategy":        p.Strategy,
		"waypoints":       p.Waypoints,
		"avoidpolygons":   p.AvoidPolygons,
		"avoidroad":       p.AvoidRoad,
		"province":        p.Province,
		"number":          p.Number,
		"cartype":         p.CarType,
		"ferry":           p.Ferry,
		"roadaggregation": p.RoadAggregation,
		"nosteps":         p.NoSteps,
		"extensions":      p.Extensions,
	}, format)
}

// Bicycling - велосипедный маршрут (API v4)
func (c *Client) Bicycling(ctx context.Context, origin, destination string, format Format) (*Response, error) {
	return c.Call(ctx, OpBicycling, Params{
		"origin":      origin,
		"destination": destination,
	}, format)
}

// Electrobike - маршрут на электровелосипеде (API v5)
func (c *Client) Electrobike(ctx context.Context, origin, destination, showFields string, format Format) (*Response, error) {
	return c.Call(ctx, OpElectrobike, Params{
		"origin":      origin,
		"destination": destination,
		"show_fields": showFields,
	}, format)
}

// FutureDriving - автомобильный маршрут с прогнозом на будущее время выезда
func (c *Client) FutureDriving(ctx context.Context, p FutureDrivingParams, format Format) (*Response, error) {
	return c.Call(ctx, OpFutureDriving, Params{
		"origin":      p.Origin,
		"destination": p.Destination,
		"firsttime":   p.FirstTime,
		"interval":    p.Interval,
		"count":       p.Count,
		"strategy":    p.Strategy,
		"province":    p.Province,
		"number":      p.Number,
		"cartype":     p.CarType,
	}, format)
}

// Distance - измерение расстояния. origins - до 100 точек через "|".
// distanceType: 0 - по прямой, 1 - по дорогам (по умолчанию), 3 - пешком.
func (c *Client) Distance(ctx context.Context, origins, destination, distanceType string, format Format) (*Response, error) {
	return c.Call(ctx, OpDistance, Params{
		"origins":     origins,
		"destination": destination,
		"type":        distanceType,
	}, format)
}
