package serpapiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidPayload = errors.New("resposta da SerpApi não é um JSON válido")
	ErrResultsNotList = errors.New("caminho de resultados não contém uma lista")
)

type ChartParams struct {
	Engine   string
	Chart    string
	Category string
	Country  string
}

// ChartEntry é uma linha do chart: id numérico da App Store e posição (1 = topo)
type ChartEntry struct {
	ID   string
	Rank int
}

func (c *SerpApiClient) GetChart(ctx context.Context, params ChartParams) ([]ChartEntry, error) {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Chart.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/search.json")

	query := endpoint.Query()
	query.Set("engine", params.Engine)
	query.Set("chart", params.Chart)
	query.Set("category", params.Category)
	query.Set("country", params.Country)
	query.Set("api_key", c.config.Chart.APIKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		// A SerpApi devolve {"error": "..."} em falhas de autenticação e cota
		if msg := gjson.GetBytes(body, "error").String(); msg != "" {
			return nil, errors.Errorf("requisição falhou com status %s: %s", resp.Status, msg)
		}
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidPayload
	}

	if msg := gjson.GetBytes(body, "error").String(); msg != "" {
		return nil, errors.Errorf("SerpApi retornou erro: %s", msg)
	}

	results := gjson.GetBytes(body, c.config.Chart.ResultsPath)
	if !results.IsArray() {
		return nil, errors.Wrapf(ErrResultsNotList, "caminho %q", c.config.Chart.ResultsPath)
	}

	entries := make([]ChartEntry, 0, len(results.Array()))
	results.ForEach(func(_, item gjson.Result) bool {
		entries = append(entries, ChartEntry{
			ID:   item.Get("id").String(),
			Rank: int(item.Get("rank").Int()),
		})
		return true
	})

	return entries, nil
}
