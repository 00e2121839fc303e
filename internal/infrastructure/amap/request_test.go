package amap

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amap-gateway/internal/pkg/errors"
)

// recorder - тестовый апстрим, запоминающий параметры запросов
type recorder struct {
	mu      sync.Mutex
	queries []url.Values
	paths   []string
	status  int
	body    string
}

func (rec *recorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.queries = append(rec.queries, r.URL.Query())
		rec.paths = append(rec.paths, r.URL.Path)
		status, body := rec.status, rec.body
		rec.mu.Unlock()

		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func (rec *recorder) calls() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.queries)
}

func (rec *recorder) last() (string, url.Values) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	n := len(rec.queries)
	return rec.paths[n-1], rec.queries[n-1]
}

func newRecorder(t *testing.T, body string) (*recorder, *httptest.Server) {
	t.Helper()
	rec := &recorder{body: body}
	server := httptest.NewServer(rec.handler())
	t.Cleanup(server.Close)
	return rec, server
}

func TestClient_GetRequest(t *testing.T) {
	const geoBody = `{"status":"1","info":"OK","infocode":"10000","count":"1","geocodes":[{"formatted_address":"北京市朝阳区","location":"116.48,39.99"}]}`

	t.Run("json is decoded into a tree", func(t *testing.T) {
		_, server := newRecorder(t, geoBody)
		client := newTestClient(t, server.URL, false)

		q := NewQuery()
		q.Set("key", "test_key")
		q.Set("address", "beijing")

		result, err := client.GetRequest(context.Background(), q, server.URL+"/v3/geocode/geo", FormatJSON)
		require.NoError(t, err)

		obj, ok := result.Object()
		require.True(t, ok)
		assert.Equal(t, "1", obj["status"])
		geocodes := obj["geocodes"].([]interface{})
		assert.Len(t, geocodes, 1)
		assert.Equal(t, "116.48,39.99", geocodes[0].(map[string]interface{})["location"])
		assert.True(t, result.OK())
		assert.Equal(t, "10000", result.InfoCode())
		assert.Equal(t, "OK", result.Info())
	})

	t.Run("xml is returned as raw body", func(t *testing.T) {
		const xmlBody = `<?xml version="1.0" encoding="UTF-8"?><response><status>1</status></response>`
		rec, server := newRecorder(t, xmlBody)
		client := newTestClient(t, server.URL, false)

		result, err := client.GetRequest(context.Background(), NewQuery(), server.URL+"/v3/geocode/geo", FormatXML)
		require.NoError(t, err)
		assert.Equal(t, xmlBody, result.Raw)
		assert.Nil(t, result.Data)
		assert.Equal(t, FormatXML, result.Format)

		_, query := rec.last()
		assert.Equal(t, "xml", query.Get("output"))
	})

	t.Run("format is case insensitive", func(t *testing.T) {
		rec, server := newRecorder(t, `{"status":"1"}`)
		client := newTestClient(t, server.URL, false)

		result, err := client.GetRequest(context.Background(), NewQuery(), server.URL+"/v3/ip", Format("JSON"))
		require.NoError(t, err)
		assert.NotNil(t, result.Data)

		_, query := rec.last()
		assert.Equal(t, "json", query.Get("output"))
	})

	t.Run("unsupported format", func(t *testing.T) {
		rec, server := newRecorder(t, `{}`)
		client := newTestClient(t, server.URL, false)

		result, err := client.GetRequest(context.Background(), NewQuery(), server.URL+"/v3/ip", Format("yaml"))
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errors.ErrInvalidParameter)
		assert.Contains(t, err.Error(), "yaml")
		assert.Equal(t, 0, rec.calls())
	})

	t.Run("empty format", func(t *testing.T) {
		rec, server := newRecorder(t, `{}`)
		client := newTestClient(t, server.URL, false)

		result, err := client.GetRequest(context.Background(), NewQuery(), server.URL+"/v3/ip", Format(""))
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errors.ErrInvalidParameter)
		assert.Contains(t, err.Error(), "Invalid response format")
		assert.Equal(t, 0, rec.calls())
	})

	t.Run("empty url", func(t *testing.T) {
		client := newTestClient(t, "http://127.0.0.1:1", false)

		result, err := client.GetRequest(context.Background(), NewQuery(), "", FormatJSON)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errors.ErrInvalidParameter)
		assert.Contains(t, err.Error(), "url property must be set")
	})

	t.Run("caller query is not modified", func(t *testing.T) {
		_, server := newRecorder(t, `{}`)
		client := newTestClient(t, server.URL, true)

		q := NewQuery()
		q.Set("key", "test_key")

		_, err := client.GetRequest(context.Background(), q, server.URL+"/v3/ip", FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, []string{"key"}, q.Keys())
	})

	t.Run("invalid json", func(t *testing.T) {
		_, server := newRecorder(t, `<html>not json</html>`)
		client := newTestClient(t, server.URL, false)

		result, err := client.GetRequest(context.Background(), NewQuery(), server.URL+"/v3/ip", FormatJSON)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errors.ErrDecode)
	})

	t.Run("non 2xx status", func(t *testing.T) {
		rec, server := newRecorder(t, `{"info":"INVALID_USER_KEY"}`)
		rec.status = http.StatusForbidden
		client := newTestClient(t, server.URL, false)

		result, err := client.GetRequest(context.Background(), NewQuery(), server.URL+"/v3/ip", FormatJSON)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errors.ErrRequestFailed)
		assert.Contains(t, err.Error(), "status 403")

		var appErr *errors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, http.StatusForbidden, appErr.Details["status"])
	})

	t.Run("connection error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		addr := server.URL
		server.Close()

		client := newTestClient(t, addr, false)
		result, err := client.GetRequest(context.Background(), NewQuery(), addr+"/v3/ip", FormatJSON)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errors.ErrRequestFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		_, server := newRecorder(t, `{}`)
		client := newTestClient(t, server.URL, false)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetRequest(ctx, NewQuery(), server.URL+"/v3/ip", FormatJSON)
		assert.ErrorIs(t, err, errors.ErrRequestFailed)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_Signature(t *testing.T) {
	t.Run("unsigned requests never carry sig", func(t *testing.T) {
		rec, server := newRecorder(t, `{"status":"1"}`)
		client := newTestClient(t, server.URL, false)

		_, err := client.Geo(context.Background(), "beijing", "", FormatJSON)
		require.NoError(t, err)

		_, query := rec.last()
		_, hasSig := query["sig"]
		assert.False(t, hasSig)
		assert.Equal(t, "json", query.Get("output"))
	})

	t.Run("signed requests carry sig over the pre-sig parameters", func(t *testing.T) {
		rec, server := newRecorder(t, `{"status":"1"}`)
		client := newTestClient(t, server.URL, true)

		_, err := client.Geo(context.Background(), "beijing", "", FormatJSON)
		require.NoError(t, err)

		_, query := rec.last()
		sig := query.Get("sig")
		require.NotEmpty(t, sig)

		expected := NewQuery()
		for name := range query {
			if name != "sig" {
				expected.Set(name, query.Get(name))
			}
		}
		_, hasOutput := expected.Get("output")
		assert.True(t, hasOutput)
		assert.Equal(t, Sign(expected, "test_private_key"), sig)
		assert.Equal(t, Sign(expected, "test_private_key"),
			Sign(queryOf("key", "test_key", "address", "beijing", "output", "json"), "test_private_key"))
	})

	t.Run("extensions are sent and signed in lower case", func(t *testing.T) {
		rec, server := newRecorder(t, `{"status":"1"}`)
		client := newTestClient(t, server.URL, true)

		_, err := client.Weather(context.Background(), "110101", "ALL", FormatJSON)
		require.NoError(t, err)

		_, query := rec.last()
		assert.Equal(t, "all", query.Get("extensions"))
		assert.Equal(t,
			Sign(queryOf("key", "test_key", "city", "110101", "extensions", "all", "output", "json"), "test_private_key"),
			query.Get("sig"))
	})
}

func queryOf(kv ...string) *Query {
	q := NewQuery()
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}
