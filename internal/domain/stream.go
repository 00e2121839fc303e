package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamGeocodeRequest = "stream:amap:geocode"
	StreamGeocodeDone    = "stream:amap:geocode:done"
)

// GeocodeRequestEvent - входящее событие на геокодирование.
// Если задан Location - выполняется обратное геокодирование, иначе по Address.
type GeocodeRequestEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Location  *Point    `json:"location,omitempty"`
}

// IsReverse проверяет, нужно ли обратное геокодирование
func (e *GeocodeRequestEvent) IsReverse() bool {
	return e.Location != nil
}

// Validate проверяет, что событие можно обработать
func (e *GeocodeRequestEvent) Validate() bool {
	if e.IsReverse() {
		return e.Location.Valid()
	}
	return e.Address != ""
}

// GeocodeDoneEvent - результат геокодирования
type GeocodeDoneEvent struct {
	RequestID        uuid.UUID `json:"request_id"`
	FormattedAddress string    `json:"formatted_address,omitempty"`
	Location         *Point    `json:"location,omitempty"`
	Adcode           string    `json:"adcode,omitempty"`
	Province         string    `json:"province,omitempty"`
	City             string    `json:"city,omitempty"`
	District         string    `json:"district,omitempty"`
	Error            string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
