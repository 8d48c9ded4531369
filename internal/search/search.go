package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/lieferspatz/internal/models"
)

// MenuIndex keeps menu items in an Elasticsearch index for full-text search.
type MenuIndex struct {
	ES    *elasticsearch.Client
	Index string
}

type menuDocument struct {
	ID           uint    `json:"id"`
	RestaurantID uint    `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        string  `json:"price"`
	Image        *string `json:"image,omitempty"`
}

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	slog.Info("connecting to elasticsearch", "url", url)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: new client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch: info: %s: %s", res.Status(), body)
	}
	return client, nil
}

func NewMenuIndex(es *elasticsearch.Client, index string) *MenuIndex {
	return &MenuIndex{ES: es, Index: index}
}

func (m *MenuIndex) IndexMenuItem(ctx context.Context, item models.MenuItem) error {
	doc := menuDocument{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price.String(),
		Image:        item.Image,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("elasticsearch: encode menu item: %w", err)
	}

	res, err := m.ES.Index(
		m.Index,
		&buf,
		m.ES.Index.WithContext(ctx),
		m.ES.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
		m.ES.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: index menu item: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch: index menu item: %s", res.Status())
	}
	return nil
}

func (m *MenuIndex) SearchMenu(ctx context.Context, query string, from, size int) (int64, []models.MenuItem, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: encode query: %w", err)
	}

	res, err := m.ES.Search(
		m.ES.Search.WithContext(ctx),
		m.ES.Search.WithIndex(m.Index),
		m.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("elasticsearch: search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source menuDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: decode response: %w", err)
	}

	items := make([]models.MenuItem, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		price, err := decimal.NewFromString(h.Source.Price)
		if err != nil {
			return 0, nil, fmt.Errorf("elasticsearch: menu item %d price: %w", h.Source.ID, err)
		}
		items = append(items, models.MenuItem{
			ID:           h.Source.ID,
			RestaurantID: h.Source.RestaurantID,
			Name:         h.Source.Name,
			Description:  h.Source.Description,
			Price:        price,
			Image:        h.Source.Image,
		})
	}
	return r.Hits.Total.Value, items, nil
}
