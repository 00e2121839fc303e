package amap

import "context"

// Weather - погода по adcode города. extensions: base - текущая, all - прогноз.
func (c *Client) Weather(ctx context.Context, city, extensions string, format Format) (*Response, error) {
	return c.Call(ctx, OpWeather, Params{
		"city":       city,
		"extensions": extensions,
	}, format)
}

// LiveWeather - текущая погода
func (c *Client) LiveWeather(ctx context.Context, city string, format Format) (*Response, error) {
	return c.Weather(ctx, city, ExtensionsBase, format)
}

// ForecastWeather - прогноз погоды
func (c *Client) ForecastWeather(ctx context.Context, city string, format Format) (*Response, error) {
	return c.Weather(ctx, city, ExtensionsAll, format)
}
