package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/database"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

const priceCacheTTL = 5 * time.Minute

// PriceFetcher es el contrato del proveedor de cotizaciones: ticker → precio.
// El agregador no depende de ninguna implementación concreta ni de que la
// consulta tenga éxito.
type PriceFetcher interface {
	GetPrice(ticker string) (decimal.Decimal, error)
}

// quoteResponse es la forma de la respuesta del proveedor (estilo Alpha Vantage)
type quoteResponse struct {
	GlobalQuote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
}

// HTTPPriceFetcher consulta la cotización a una API externa, con una caché
// en Redis por delante para reducir llamadas al proveedor
type HTTPPriceFetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *redis.Client
}

func NewHTTPPriceFetcher(cache *redis.Client) *HTTPPriceFetcher {
	baseURL := os.Getenv("PRICE_API_URL")
	if baseURL == "" {
		baseURL = "https://www.alphavantage.co"
	}

	return &HTTPPriceFetcher{
		baseURL: baseURL,
		apiKey:  os.Getenv("PRICE_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
	}
}

func (f *HTTPPriceFetcher) GetPrice(ticker string) (decimal.Decimal, error) {
	// Verificar primero la caché
	if f.cache != nil {
		cached, err := f.cache.Get(database.Ctx, priceCacheKey(ticker)).Result()
		if err == nil {
			if price, perr := decimal.NewFromString(cached); perr == nil {
				return price, nil
			}
		}
	}

	requestURL := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		f.baseURL, url.QueryEscape(ticker), f.apiKey)

	resp, err := f.client.Get(requestURL)
	if err != nil {
		log.Printf("Error al obtener cotización de %s: %v", ticker, err)
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("el proveedor de cotizaciones respondió %d", resp.StatusCode)
	}

	var quote quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		log.Printf("Error al parsear cotización de %s: %v", ticker, err)
		return decimal.Zero, err
	}

	if quote.GlobalQuote.Price == "" {
		return decimal.Zero, fmt.Errorf("no se encontró cotización para %s", ticker)
	}

	price, err := decimal.NewFromString(quote.GlobalQuote.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cotización inválida para %s: %v", ticker, err)
	}
	if price.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("cotización no positiva para %s", ticker)
	}
	price = price.Round(2)

	// Guardar en caché; un fallo de Redis no invalida la cotización obtenida
	if f.cache != nil {
		if err := f.cache.Set(database.Ctx, priceCacheKey(ticker), price.String(), priceCacheTTL).Err(); err != nil {
			log.Printf("No se pudo cachear la cotización de %s: %v", ticker, err)
		}
	}

	return price, nil
}

func priceCacheKey(ticker string) string {
	return "price:" + ticker
}
