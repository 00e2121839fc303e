package dto

import (
	"strings"

	"github.com/amap-gateway/internal/domain"
)

// GeoRequest - запрос на геокодирование адреса
type GeoRequest struct {
	Address string `json:"address" query:"address" validate:"required"`
	City    string `json:"city,omitempty" query:"city"`
	Output  string `json:"output,omitempty" query:"output" validate:"omitempty,oneof=json xml"`
}

// Normalize приводит перечислимые поля к нижнему регистру
func (r *GeoRequest) Normalize() {
	r.Output = strings.ToLower(r.Output)
}

// RegeoRequest - запрос на обратное геокодирование
type RegeoRequest struct {
	Location   string `json:"location" query:"location" validate:"required"` // "lng,lat"
	PoiType    string `json:"poitype,omitempty" query:"poitype"`
	Radius     string `json:"radius,omitempty" query:"radius" validate:"omitempty,numeric"`
	RoadLevel  string `json:"roadlevel,omitempty" query:"roadlevel"`
	HomeOrCorp string `json:"homeorcorp,omitempty" query:"homeorcorp" validate:"omitempty,oneof=0 1 2"`
	Extensions string `json:"extensions,omitempty" query:"extensions" validate:"omitempty,oneof=base all"`
	Output     string `json:"output,omitempty" query:"output" validate:"omitempty,oneof=json xml"`
}

// Normalize приводит перечислимые поля к нижнему регистру
func (r *RegeoRequest) Normalize() {
	r.Extensions = strings.ToLower(r.Extensions)
	r.Output = strings.ToLower(r.Output)
}

// WeatherRequest - запрос погоды
type WeatherRequest struct {
	City       string `json:"city" query:"city" validate:"required"` // adcode
	Extensions string `json:"extensions,omitempty" query:"extensions" validate:"omitempty,oneof=base all"`
	Output     string `json:"output,omitempty" query:"output" validate:"omitempty,oneof=json xml"`
}

// Normalize приводит перечислимые поля к нижнему регистру
func (r *WeatherRequest) Normalize() {
	r.Extensions = strings.ToLower(r.Extensions)
	r.Output = strings.ToLower(r.Output)
}

// JournalResponse - последние вызовы AMap и статистика по операциям
type JournalResponse struct {
	Calls []domain.UpstreamCall   `json:"calls"`
	Usage []domain.OperationUsage `json:"usage"`
}

// OperationInfo - описание операции AMap для API
type OperationInfo struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Required []string `json:"required,omitempty"`
	AnyOf    []string `json:"any_of,omitempty"`
	Optional []string `json:"optional,omitempty"`
}
