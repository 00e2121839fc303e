package amap

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign вычисляет цифровую подпись (sig) запроса AMap:
// параметры сортируются по имени побайтово, склеиваются в "k1=v1&k2=v2"
// без URL-кодирования, к строке дописывается приватный ключ, результат - md5 в hex.
func Sign(q *Query, privateKey string) string {
	keys := q.Keys()
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		v, _ := q.Get(k)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	b.WriteString(privateKey)

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
