package amap

import (
	"net/url"
	"strings"
)

// Params - параметры операции по имени. Пустая строка означает "не задано".
type Params map[string]string

// Query - параметры запроса с сохранением порядка добавления.
// Пустые значения не хранятся: Set с пустой строкой удаляет параметр.
type Query struct {
	keys   []string
	values map[string]string
}

// NewQuery создает пустой Query
func NewQuery() *Query {
	return &Query{values: make(map[string]string)}
}

// isEmpty - единственный предикат "значение не задано" для всех эндпоинтов.
// "0" и "false" считаются заданными значениями.
func isEmpty(value string) bool {
	return value == ""
}

// Set задает значение параметра. Повторный Set сохраняет исходную позицию.
func (q *Query) Set(name, value string) {
	if isEmpty(value) {
		q.Del(name)
		return
	}
	if _, ok := q.values[name]; !ok {
		q.keys = append(q.keys, name)
	}
	q.values[name] = value
}

// Get возвращает значение параметра
func (q *Query) Get(name string) (string, bool) {
	v, ok := q.values[name]
	return v, ok
}

// Del удаляет параметр
func (q *Query) Del(name string) {
	if _, ok := q.values[name]; !ok {
		return
	}
	delete(q.values, name)
	for i, k := range q.keys {
		if k == name {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)
			break
		}
	}
}

// Len возвращает количество параметров
func (q *Query) Len() int {
	return len(q.keys)
}

// Keys возвращает имена параметров в порядке добавления
func (q *Query) Keys() []string {
	keys := make([]string, len(q.keys))
	copy(keys, q.keys)
	return keys
}

// Clone возвращает независимую копию
func (q *Query) Clone() *Query {
	cp := NewQuery()
	for _, k := range q.keys {
		cp.Set(k, q.values[k])
	}
	return cp
}

// Encode кодирует параметры в строку запроса в порядке добавления
func (q *Query) Encode() string {
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[k]))
	}
	return b.String()
}
