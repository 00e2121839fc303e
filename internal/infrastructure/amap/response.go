package amap

import (
	"strconv"
)

// Response - результат вызова AMap.
// Data содержит разобранный JSON (map/slice/string/float64/bool/nil), для xml - nil.
// Raw всегда содержит тело ответа без изменений.
type Response struct {
	Format     Format
	StatusCode int
	Raw        string
	Data       interface{}
}

// Object возвращает корневой JSON объект ответа
func (r *Response) Object() (map[string]interface{}, bool) {
	if r == nil {
		return nil, false
	}
	obj, ok := r.Data.(map[string]interface{})
	return obj, ok
}

// Status - поле status ответа ("1" - успех, "0" - ошибка)
func (r *Response) Status() string {
	return r.field("status")
}

// Info - текстовое описание статуса
func (r *Response) Info() string {
	if info := r.field("info"); info != "" {
		return info
	}
	return r.field("errmsg")
}

// InfoCode - код статуса AMap ("10000" - успех). API v4 отдает errcode.
func (r *Response) InfoCode() string {
	if code := r.field("infocode"); code != "" {
		return code
	}
	return r.field("errcode")
}

// OK сообщает, что AMap вернул успешный статус
func (r *Response) OK() bool {
	if status := r.Status(); status != "" {
		return status == "1"
	}
	code := r.field("errcode")
	return code == "0" || code == "10000"
}

func (r *Response) field(name string) string {
	obj, ok := r.Object()
	if !ok {
		return ""
	}
	switch v := obj[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
