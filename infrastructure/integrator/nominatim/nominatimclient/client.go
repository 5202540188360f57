package nominatimclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	nominatimdomain "github.com/vfg2006/ecom-dashboard/infrastructure/integrator/nominatim/domain"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Search(ctx context.Context, params nominatimdomain.SearchParams) ([]nominatimdomain.Place, error)
}

type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient cria o cliente do Nominatim. O limitador permite uma rajada do tamanho
// da cota de cidades, de modo que um lote inteiro sai em paralelo.
func NewClient(cfg *config.Config) Client {
	return newClient(cfg, &http.Client{Timeout: cfg.Geocoder.Timeout})
}

func newClient(cfg *config.Config, httpClient *http.Client) *NominatimClient {
	limit := rate.Inf
	if cfg.Geocoder.RatePerSecond > 0 {
		limit = rate.Limit(cfg.Geocoder.RatePerSecond)
	}

	burst := cfg.Geocoder.Limit
	if burst <= 0 {
		burst = 1
	}

	return &NominatimClient{
		httpClient: httpClient,
		baseURL:    cfg.Geocoder.URL,
		userAgent:  cfg.Geocoder.UserAgent,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

func (c *NominatimClient) Search(ctx context.Context, params nominatimdomain.SearchParams) ([]nominatimdomain.Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "nominatim: aguardando o limitador de requisições")
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim: erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/search")

	query := endpoint.Query()
	query.Set("q", params.Query)
	query.Set("format", "json")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim: erro ao criar a requisição")
	}

	// A política de uso do Nominatim exige um User-Agent identificável
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim: erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &nominatimdomain.StatusError{
			Query:      params.Query,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var places []nominatimdomain.Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, errors.Wrap(err, "nominatim: erro ao decodificar a resposta")
	}

	logrus.WithFields(logrus.Fields{
		"query":      params.Query,
		"candidates": len(places),
	}).Debug("nominatim: busca concluída")

	return places, nil
}
