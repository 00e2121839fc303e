package amap

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	t.Run("empty values are filtered before signing", func(t *testing.T) {
		q := NewQuery()
		q.Set("address", "beijing")
		q.Set("city", "")
		q.Set("key", "k1")

		assert.Equal(t, "a04a3c97556794b22a73734b670afd25", Sign(q, "pk"))
	})

	t.Run("matches md5 of raw concatenation", func(t *testing.T) {
		q := NewQuery()
		q.Set("key", "k1")
		q.Set("address", "beijing")
		q.Set("output", "json")

		sum := md5.Sum([]byte("address=beijing&key=k1&output=jsonpk"))
		assert.Equal(t, hex.EncodeToString(sum[:]), Sign(q, "pk"))
		assert.Equal(t, "348dc83480f167f8f270d365bd007328", Sign(q, "pk"))
	})

	t.Run("insertion order does not matter", func(t *testing.T) {
		a := NewQuery()
		a.Set("location", "116.48,39.99")
		a.Set("key", "k")
		a.Set("extensions", "all")

		b := NewQuery()
		b.Set("extensions", "all")
		b.Set("location", "116.48,39.99")
		b.Set("key", "k")

		assert.Equal(t, Sign(a, "secret"), Sign(b, "secret"))
	})

	t.Run("values are not url encoded", func(t *testing.T) {
		q := NewQuery()
		q.Set("address", "北京市朝阳区 阜通东大街6号")
		q.Set("key", "k")

		sum := md5.Sum([]byte("address=北京市朝阳区 阜通东大街6号&key=ks"))
		assert.Equal(t, hex.EncodeToString(sum[:]), Sign(q, "s"))
	})

	t.Run("byte order sort", func(t *testing.T) {
		q := NewQuery()
		q.Set("b", "2")
		q.Set("B", "1")
		q.Set("a", "3")

		sum := md5.Sum([]byte("B=1&a=3&b=2pk"))
		assert.Equal(t, hex.EncodeToString(sum[:]), Sign(q, "pk"))
	})

	t.Run("different private key gives different signature", func(t *testing.T) {
		q := NewQuery()
		q.Set("key", "k1")

		assert.NotEqual(t, Sign(q, "pk1"), Sign(q, "pk2"))
		assert.Len(t, Sign(q, "pk1"), 32)
	})
}
