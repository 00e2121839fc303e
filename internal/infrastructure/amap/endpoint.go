package amap

import (
	"sort"
	"strings"
)

// Service - корень REST API, к которому относится эндпоинт
type Service string

const (
	ServiceV3    Service = "/v3"
	ServiceV4    Service = "/v4"
	ServiceV5    Service = "/v5"
	ServiceEvent Service = "/event"
)

// Имена операций
const (
	OpGeo              = "geo"
	OpRegeo            = "regeo"
	OpWalking          = "walking"
	OpTransit          = "transit"
	OpDriving          = "driving"
	OpBicycling        = "bicycling"
	OpElectrobike      = "electrobike"
	OpFutureDriving    = "etd_driving"
	OpDistance         = "distance"
	OpDistrict         = "district"
	OpTextSearch       = "text_search"
	OpAroundSearch     = "around_search"
	OpPolygonSearch    = "polygon_search"
	OpDetailSearch     = "detail_search"
	OpEventByAdcode    = "event_by_adcode"
	OpIP               = "ip"
	OpStaticMap        = "staticmap"
	OpConvert          = "convert"
	OpWeather          = "weather"
	OpInputTips        = "input_tips"
	OpTrafficRectangle = "traffic_rectangle"
	OpTrafficCircle    = "traffic_circle"
	OpTrafficRoad      = "traffic_road"
	OpGraspRoad        = "grasproad"
)

// Значения extensions
const (
	ExtensionsBase = "base"
	ExtensionsAll  = "all"
)

// Param - необязательный параметр и его значение по умолчанию
type Param struct {
	Name    string
	Default string
}

// Endpoint - статическое описание операции AMap
type Endpoint struct {
	Name     string
	Service  Service
	Path     string
	Required []string
	// AnyOf - хотя бы один из параметров должен быть задан
	AnyOf    []string
	Optional []Param
}

// enums - допустимые значения перечислимых параметров
var enums = map[string][]string{
	"extensions": {ExtensionsBase, ExtensionsAll},
}

func opt(name string) Param { return Param{Name: name} }
func def(name, value string) Param { return Param{Name: name, Default: value} }
func names(list ...string) []string { return list }

var endpoints = map[string]Endpoint{
	OpGeo: {
		Name: OpGeo, Service: ServiceV3, Path: "/geocode/geo",
		Required: names("address"),
		Optional: []Param{opt("city")},
	},
	OpRegeo: {
		Name: OpRegeo, Service: ServiceV3, Path: "/geocode/regeo",
		Required: names("location"),
		Optional: []Param{
			opt("poitype"), def("radius", "1000"), opt("roadlevel"), opt("callback"),
			def("homeorcorp", "0"), def("extensions", ExtensionsBase),
		},
	},
	OpWalking: {
		Name: OpWalking, Service: ServiceV3, Path: "/direction/walking",
		Required: names("origin", "destination"),
		Optional: []Param{opt("callback")},
	},
	OpTransit: {
		Name: OpTransit, Service: ServiceV3, Path: "/direction/transit/integrated",
		Required: names("origin", "destination", "city"),
		Optional: []Param{
			opt("cityd"), def("extensions", ExtensionsBase), opt("strategy"),
			opt("nightflag"), opt("date"), opt("time"),
		},
	},
	OpDriving: {
		Name: OpDriving, Service: ServiceV3, Path: "/direction/driving",
		Required: names("origin", "destination"),
		Optional: []Param{
			opt("originid"), opt("destinationid"), opt("origintype"), opt("strategy"),
			opt("waypoints"), opt("avoidpolygons"), opt("avoidroad"), opt("province"),
			opt("number"), opt("cartype"), opt("ferry"), opt("roadaggregation"),
			opt("nosteps"), def("extensions", ExtensionsBase),
		},
	},
	OpBicycling: {
		Name: OpBicycling, Service: ServiceV4, Path: "/direction/bicycling",
		Required: names("origin", "destination"),
	},
	OpElectrobike: {
		Name: OpElectrobike, Service: ServiceV5, Path: "/direction/electrobike",
		Required: names("origin", "destination"),
		Optional: []Param{opt("show_fields"), opt("alternative_route")},
	},
	OpFutureDriving: {
		Name: OpFutureDriving, Service: ServiceV4, Path: "/etd/driving",
		Required: names("origin", "destination", "firsttime", "interval", "count"),
		Optional: []Param{opt("strategy"), opt("province"), opt("number"), opt("cartype")},
	},
	OpDistance: {
		Name: OpDistance, Service: ServiceV3, Path: "/distance",
		Required: names("origins", "destination"),
		Optional: []Param{def("type", "1")},
	},
	OpDistrict: {
		Name: OpDistrict, Service: ServiceV3, Path: "/config/district",
		Optional: []Param{
			opt("keywords"), def("subdistrict", "1"), opt("page"), opt("offset"),
			def("extensions", ExtensionsBase), opt("filter"),
		},
	},
	OpTextSearch: {
		Name: OpTextSearch, Service: ServiceV3, Path: "/place/text",
		AnyOf:    names("keywords", "types"),
		Optional: []Param{
			opt("city"), opt("citylimit"), opt("children"), opt("offset"), opt("page"),
			def("extensions", ExtensionsBase),
		},
	},
	OpAroundSearch: {
		Name: OpAroundSearch, Service: ServiceV3, Path: "/place/around",
		Required: names("location"),
		Optional: []Param{
			opt("keywords"), opt("types"), opt("city"), opt("radius"), opt("sortrule"),
			opt("offset"), opt("page"), def("extensions", ExtensionsBase),
		},
	},
	OpPolygonSearch: {
		Name: OpPolygonSearch, Service: ServiceV3, Path: "/place/polygon",
		Required: names("polygon"),
		Optional: []Param{
			opt("keywords"), opt("types"), opt("offset"), opt("page"),
			def("extensions", ExtensionsBase),
		},
	},
	OpDetailSearch: {
		Name: OpDetailSearch, Service: ServiceV3, Path: "/place/detail",
		Required: names("id"),
	},
	OpEventByAdcode: {
		Name: OpEventByAdcode, Service: ServiceEvent, Path: "/queryByAdcode",
		Required: names("adcode"),
		Optional: []Param{opt("clientKey"), opt("timestamp"), opt("eventType"), opt("isExpressway")},
	},
	OpIP: {
		Name: OpIP, Service: ServiceV3, Path: "/ip",
		Optional: []Param{opt("ip"), opt("type")},
	},
	OpStaticMap: {
		Name: OpStaticMap, Service: ServiceV3, Path: "/staticmap",
		AnyOf:    names("location", "markers", "paths", "labels"),
		Optional: []Param{opt("zoom"), opt("size"), opt("scale"), opt("traffic")},
	},
	OpConvert: {
		Name: OpConvert, Service: ServiceV3, Path: "/assistant/coordinate/convert",
		Required: names("locations"),
		Optional: []Param{def("coordsys", "autonavi")},
	},
	OpWeather: {
		Name: OpWeather, Service: ServiceV3, Path: "/weather/weatherInfo",
		Required: names("city"),
		Optional: []Param{def("extensions", ExtensionsBase), opt("callback")},
	},
	OpInputTips: {
		Name: OpInputTips, Service: ServiceV3, Path: "/assistant/inputtips",
		Required: names("keywords"),
		Optional: []Param{opt("type"), opt("location"), opt("city"), opt("citylimit"), opt("datatype")},
	},
	OpTrafficRectangle: {
		Name: OpTrafficRectangle, Service: ServiceV3, Path: "/traffic/status/rectangle",
		Required: names("rectangle"),
		Optional: []Param{opt("level"), def("extensions", ExtensionsBase)},
	},
	OpTrafficCircle: {
		Name: OpTrafficCircle, Service: ServiceV3, Path: "/traffic/status/circle",
		Required: names("location"),
		Optional: []Param{opt("radius"), opt("level"), def("extensions", ExtensionsBase)},
	},
	OpTrafficRoad: {
		Name: OpTrafficRoad, Service: ServiceV3, Path: "/traffic/status/road",
		Required: names("name"),
		AnyOf:    names("adcode", "city"),
		Optional: []Param{opt("level"), def("extensions", ExtensionsBase)},
	},
	OpGraspRoad: {
		Name: OpGraspRoad, Service: ServiceV4, Path: "/grasproad/driving",
		Required: names("points"),
	},
}

// LookupEndpoint возвращает описание операции по имени
func LookupEndpoint(name string) (Endpoint, bool) {
	ep, ok := endpoints[name]
	if !ok {
		return Endpoint{}, false
	}
	return ep.clone(), true
}

// Endpoints возвращает копию таблицы эндпоинтов, отсортированную по имени
func Endpoints() []Endpoint {
	list := make([]Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		list = append(list, ep.clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

func (e Endpoint) clone() Endpoint {
	e.Required = append([]string(nil), e.Required...)
	e.AnyOf = append([]string(nil), e.AnyOf...)
	e.Optional = append([]Param(nil), e.Optional...)
	return e
}

// Accepts сообщает, объявлен ли параметр у операции
func (e Endpoint) Accepts(name string) bool {
	for _, n := range e.Required {
		if n == name {
			return true
		}
	}
	for _, n := range e.AnyOf {
		if n == name {
			return true
		}
	}
	for _, p := range e.Optional {
		if p.Name == name {
			return true
		}
	}
	return false
}

// URL собирает полный адрес эндпоинта от корня сервиса
func (e Endpoint) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + string(e.Service) + e.Path
}
