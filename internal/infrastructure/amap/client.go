package amap

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/amap-gateway/internal/config"
	"github.com/amap-gateway/internal/pkg/errors"
	"github.com/amap-gateway/internal/pkg/validator"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL      = "https://restapi.amap.com"
	DefaultEventBaseURL = "https://et-api.amap.com"
	defaultTimeout      = 10 * time.Second
)

// TransportOptions - настройки HTTP транспорта
type TransportOptions struct {
	Timeout time.Duration
	Proxy   string
	Headers map[string]string
}

// Client - клиент AMap WebService API. Безопасен для конкурентного использования.
type Client struct {
	key          string
	sign         bool
	privateKey   string
	baseURL      string
	eventBaseURL string
	metrics      *Metrics
	logger       *zap.Logger

	mu         sync.RWMutex
	httpClient *http.Client
	headers    http.Header
}

// Option - дополнительная настройка клиента
type Option func(*Client)

// WithMetrics подключает Prometheus метрики
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создает новый клиент для AMap API.
// Возвращает CONFIGURATION_ERROR, если не задан key или включена подпись без private_key.
func NewClient(cfg *config.AmapConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.Configuration("amap config must be set")
	}
	if err := validator.ValidateAs(cfg, errors.ErrConfiguration); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		key:          cfg.Key,
		sign:         cfg.Sign,
		privateKey:   cfg.PrivateKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		eventBaseURL: strings.TrimRight(cfg.EventBaseURL, "/"),
		logger:       logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.eventBaseURL == "" {
		c.eventBaseURL = DefaultEventBaseURL
	}

	if err := c.SetTransportOptions(TransportOptions{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		Proxy:   cfg.Proxy,
		Headers: cfg.Headers,
	}); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetTransportOptions заменяет настройки транспорта.
// Действует только на запросы, начатые после вызова.
func (c *Client) SetTransportOptions(opts TransportOptions) error {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil || proxyURL.Host == "" {
			return errors.Configuration("invalid proxy url: %q", opts.Proxy)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	headers := make(http.Header, len(opts.Headers))
	for name, value := range opts.Headers {
		headers.Set(name, value)
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	c.mu.Lock()
	c.httpClient = httpClient
	c.headers = headers
	c.mu.Unlock()

	return nil
}

// transport возвращает текущий HTTP клиент и заголовки
func (c *Client) transport() (*http.Client, http.Header) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.httpClient, c.headers
}

// EndpointURL возвращает полный адрес операции
func (c *Client) EndpointURL(ep Endpoint) string {
	if ep.Service == ServiceEvent {
		return ep.URL(c.eventBaseURL)
	}
	return ep.URL(c.baseURL)
}

// Signing сообщает, подписываются ли запросы
func (c *Client) Signing() bool {
	return c.sign
}
