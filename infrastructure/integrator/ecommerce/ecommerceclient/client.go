package ecommerceclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	ecommercedomain "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce/domain"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	totalSalesPath             = "/orders/total-sales/monthly"
	newCustomersPath           = "/customers/new-customers/monthly"
	repeatCustomersPath        = "/orders/repeat-customers/monthly"
	geographicDistributionPath = "/customers/geographical-distribution"
	ltvCohortsPath             = "/customers/ltv/cohorts"

	// Limite de leitura do corpo de erro incluído na mensagem
	maxErrorBodySize = 512
)

type Client interface {
	GetMonthlyTotalSales(ctx context.Context) ([]ecommercedomain.MonthlySales, error)
	GetMonthlyNewCustomers(ctx context.Context) ([]ecommercedomain.MonthlyCount, error)
	GetMonthlyRepeatCustomers(ctx context.Context) ([]ecommercedomain.RepeatCustomer, error)
	GetGeographicDistribution(ctx context.Context) ([]ecommercedomain.MonthlyCount, error)
	GetLTVCohorts(ctx context.Context) (*ecommercedomain.CohortsResponse, error)
	Ping(ctx context.Context) error
}

type EcommerceClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// NewClient cria o cliente da API de métricas. As chamadas passam por um circuit breaker
// para que uma API fora do ar falhe rápido em vez de segurar cada montagem do painel.
func NewClient(cfg *config.Config) Client {
	return newClient(cfg, &http.Client{Timeout: cfg.Ecommerce.Timeout})
}

func newClient(cfg *config.Config, httpClient *http.Client) *EcommerceClient {
	failures := cfg.Ecommerce.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	settings := gobreaker.Settings{
		Name:        "ecommerce-api",
		MaxRequests: 1,
		Timeout:     cfg.Ecommerce.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Cancelamento pelo chamador não indica falha da API
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetBreakerState(name, int(to))
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("ecommerce: estado do circuit breaker alterado")
		},
	}

	return &EcommerceClient{
		httpClient: httpClient,
		baseURL:    cfg.Ecommerce.URL,
		breaker:    gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Ping verifica se a API responde, usado para manter o host acordado
func (c *EcommerceClient) Ping(ctx context.Context) error {
	_, err := c.get(ctx, totalSalesPath)
	return err
}

// getJSON executa um GET no caminho informado e decodifica a resposta em dest
func (c *EcommerceClient) getJSON(ctx context.Context, endpointPath string, dest any) error {
	body, err := c.get(ctx, endpointPath)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.Wrapf(err, "ecommerce: erro ao decodificar a resposta de %s", endpointPath)
	}

	return nil
}

func (c *EcommerceClient) get(ctx context.Context, endpointPath string) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		// Construir a URL da requisição.
		endpoint, err := url.Parse(c.baseURL)
		if err != nil {
			return nil, errors.Wrap(err, "ecommerce: erro ao analisar a URL base")
		}
		endpoint.Path = path.Join(endpoint.Path, endpointPath)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, errors.Wrap(err, "ecommerce: erro ao criar a requisição")
		}
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "ecommerce: erro ao executar a requisição %s", endpointPath)
		}
		defer resp.Body.Close()

		logrus.WithFields(logrus.Fields{
			"path":        endpointPath,
			"status_code": resp.StatusCode,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("ecommerce: resposta recebida")

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			return nil, &ecommercedomain.StatusError{
				Path:       endpointPath,
				StatusCode: resp.StatusCode,
				Body:       string(body),
			}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "ecommerce: erro ao ler a resposta de %s", endpointPath)
		}

		return body, nil
	})
}
