// Package search indexes matches into Elasticsearch for full-text queries.
// PostgreSQL stays the source of truth; the index only serves GET
// /api/matches?query=.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"ticketfoot/internal/config"
	"ticketfoot/internal/models"
)

type ElasticsearchClient struct {
	client *elasticsearch.Client
	config config.SearchConfig
}

func NewElasticsearchClient(cfg config.SearchConfig) (*ElasticsearchClient, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     []string{cfg.URL},
		Username:      cfg.Username,
		Password:      cfg.Password,
		RetryOnStatus: []int{502, 503, 504, 429},
		MaxRetries:    cfg.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	client := &ElasticsearchClient{
		client: es,
		config: cfg,
	}

	if err := client.ensureIndex(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return client, nil
}

func (c *ElasticsearchClient) ensureIndex(ctx context.Context) error {
	req := esapi.IndicesExistsRequest{
		Index: []string{c.config.Index},
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	mapping := map[string]interface{}{
		"settings": map[string]interface{}{
			"number_of_shards":   1,
			"number_of_replicas": 0,
		},
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"id":         map[string]interface{}{"type": "keyword"},
				"homeTeam":   map[string]interface{}{"type": "text"},
				"awayTeam":   map[string]interface{}{"type": "text"},
				"stadium":    map[string]interface{}{"type": "text"},
				"city":       map[string]interface{}{"type": "text"},
				"category":   map[string]interface{}{"type": "keyword"},
				"date":       map[string]interface{}{"type": "date", "format": "yyyy-MM-dd"},
				"time":       map[string]interface{}{"type": "keyword"},
				"price":      map[string]interface{}{"type": "double"},
				"availableTickets": map[string]interface{}{"type": "integer"},
				"totalTickets":     map[string]interface{}{"type": "integer"},
			},
		},
	}

	mappingJSON, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	createReq := esapi.IndicesCreateRequest{
		Index: c.config.Index,
		Body:  strings.NewReader(string(mappingJSON)),
	}

	createRes, err := createReq.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("failed to create index: %s", createRes.String())
	}

	slog.Info("Created Elasticsearch index", "index", c.config.Index)
	return nil
}

// IndexMatch stores a match document, replacing any previous version.
func (c *ElasticsearchClient) IndexMatch(ctx context.Context, match models.Match) error {
	doc := models.MatchItemFrom(match)

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      c.config.Index,
		DocumentID: match.ID,
		Body:       strings.NewReader(string(docJSON)),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to index match: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index match: %s", res.String())
	}

	return nil
}

// DeleteAll drops the index contents; used by the destructive reseed.
func (c *ElasticsearchClient) DeleteAll(ctx context.Context) error {
	body := `{"query": {"match_all": {}}}`
	req := esapi.DeleteByQueryRequest{
		Index: []string{c.config.Index},
		Body:  strings.NewReader(body),
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to clear index: %s", res.String())
	}

	return nil
}

// Search finds matches by free text over teams, stadium and city, restricted
// to the given date window (from inclusive, to exclusive).
func (c *ElasticsearchClient) Search(ctx context.Context, query, from, to string) ([]models.MatchItem, error) {
	searchRequest := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":     query,
							"fields":    []string{"homeTeam^2", "awayTeam^2", "stadium", "city"},
							"fuzziness": "AUTO",
						},
					},
					{
						"range": map[string]interface{}{
							"date": map[string]interface{}{
								"gte": from,
								"lt":  to,
							},
						},
					},
				},
			},
		},
		"sort": []map[string]interface{}{
			{"_score": map[string]interface{}{"order": "desc"}},
			{"date": map[string]interface{}{"order": "asc"}},
		},
		"size": 100,
	}

	searchJSON, err := json.Marshal(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{c.config.Index},
		Body:  strings.NewReader(string(searchJSON)),
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var response struct {
		Hits struct {
			Hits []struct {
				Source models.MatchItem `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	items := make([]models.MatchItem, len(response.Hits.Hits))
	for i, hit := range response.Hits.Hits {
		items[i] = hit.Source
	}

	return items, nil
}
