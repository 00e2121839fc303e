package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amap-gateway/internal/pkg/errors"
	"go.uber.org/zap"
)

// Format - формат ответа AMap
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat нормализует формат ответа. Допустимы только json и xml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatXML):
		return FormatXML, nil
	default:
		return "", errors.InvalidParameter("Invalid response format: %s", s)
	}
}

const (
	outcomeSuccess       = "success"
	outcomeRequestFailed = "request_failed"
	outcomeDecodeError   = "decode_error"
	customOperation      = "custom"
)

// Call выполняет операцию по имени из таблицы эндпоинтов
func (c *Client) Call(ctx context.Context, operation string, params Params, format Format) (*Response, error) {
	ep, ok := endpoints[operation]
	if !ok {
		return nil, errors.ErrOperationNotFound.Newf("unknown operation: %s", operation)
	}

	query, err := c.buildQuery(ep, params)
	if err != nil {
		return nil, err
	}

	return c.dispatch(ctx, ep.Name, query, c.EndpointURL(ep), format)
}

// buildQuery проверяет параметры по описанию эндпоинта и собирает запрос
func (c *Client) buildQuery(ep Endpoint, params Params) (*Query, error) {
	for name := range params {
		if !ep.Accepts(name) {
			return nil, errors.InvalidParameter("unknown parameter %q for %s", name, ep.Name)
		}
	}

	for _, name := range ep.Required {
		if isEmpty(params[name]) {
			return nil, errors.InvalidParameter("%s property must be set", name)
		}
	}

	if len(ep.AnyOf) > 0 {
		found := false
		for _, name := range ep.AnyOf {
			if !isEmpty(params[name]) {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.InvalidParameter("one of %s property must be set", strings.Join(ep.AnyOf, "/"))
		}
	}

	query := NewQuery()
	query.Set("key", c.key)
	for _, name := range ep.Required {
		query.Set(name, params[name])
	}
	for _, name := range ep.AnyOf {
		query.Set(name, params[name])
	}
	for _, p := range ep.Optional {
		value := params[p.Name]
		if isEmpty(value) {
			value = p.Default
		}
		if allowed, ok := enums[p.Name]; ok && !isEmpty(value) {
			normalized, err := checkEnum(p.Name, value, allowed)
			if err != nil {
				return nil, err
			}
			value = normalized
		}
		query.Set(p.Name, value)
	}

	return query, nil
}

// checkEnum сравнивает без учета регистра и возвращает значение в нижнем регистре,
// поэтому в запрос и подпись уходит "all", даже если передали "ALL"
func checkEnum(name, value string, allowed []string) (string, error) {
	lower := strings.ToLower(value)
	for _, a := range allowed {
		if lower == a {
			return lower, nil
		}
	}
	return "", errors.InvalidParameter("Invalid %s value(%s): %s", name, strings.Join(allowed, "/"), value)
}

// GetRequest выполняет GET запрос к произвольному адресу AMap с готовыми параметрами
func (c *Client) GetRequest(ctx context.Context, query *Query, endpointURL string, format Format) (*Response, error) {
	return c.dispatch(ctx, customOperation, query, endpointURL, format)
}

func (c *Client) dispatch(ctx context.Context, operation string, query *Query, endpointURL string, format Format) (*Response, error) {
	if endpointURL == "" {
		return nil, errors.InvalidParameter("url property must be set")
	}

	f, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	if query == nil {
		query = NewQuery()
	} else {
		query = query.Clone()
	}
	query.Set("output", string(f))

	// sig считается по всем параметрам, включая output, но без самого sig
	if c.sign {
		query.Set("sig", Sign(query, c.privateKey))
	}

	reqURL := endpointURL
	if query.Len() > 0 {
		sep := "?"
		if strings.Contains(endpointURL, "?") {
			sep = "&"
		}
		reqURL += sep + query.Encode()
	}

	httpClient, headers := c.transport()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.RequestFailed(fmt.Sprintf("failed to create request: %v", err), 0, err)
	}
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	c.logger.Debug("Calling AMap API",
		zap.String("operation", operation),
		zap.String("path", req.URL.Path),
		zap.String("format", string(f)),
		zap.Bool("signed", c.sign))

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		c.metrics.observe(operation, outcomeRequestFailed, time.Since(start))
		return nil, errors.RequestFailed(fmt.Sprintf("failed to execute request: %v", err), 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(operation, outcomeRequestFailed, time.Since(start))
		return nil, errors.RequestFailed(fmt.Sprintf("failed to read response: %v", err), resp.StatusCode, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.observe(operation, outcomeRequestFailed, time.Since(start))
		return nil, errors.RequestFailed(
			fmt.Sprintf("amap API error: status %d, body: %s", resp.StatusCode, string(body)),
			resp.StatusCode,
			nil,
		)
	}

	result, err := decode(f, resp.StatusCode, body)
	if err != nil {
		c.metrics.observe(operation, outcomeDecodeError, time.Since(start))
		return nil, err
	}

	c.metrics.observe(operation, outcomeSuccess, time.Since(start))
	c.logger.Debug("AMap API call successful",
		zap.String("operation", operation),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_size", len(body)),
		zap.Duration("duration", time.Since(start)))

	return result, nil
}

// decode разбирает тело ответа: json - в дерево значений, xml возвращается как есть
func decode(format Format, statusCode int, body []byte) (*Response, error) {
	result := &Response{
		Format:     format,
		StatusCode: statusCode,
		Raw:        string(body),
	}
	if format != FormatJSON {
		return result, nil
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, errors.Decode(fmt.Sprintf("failed to decode response: %v", err), err)
	}
	result.Data = data

	return result, nil
}
