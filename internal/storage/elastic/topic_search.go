package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/models"
)

// TopicSearchRepo indexes topic names for prefix search in the authoring
// sidebar. Mapping uses an edge-ngram analyzer so partial words match.
type TopicSearchRepo struct {
	client *elasticsearch.Client
	index  string
}

func NewTopicSearchRepository(client *elasticsearch.Client, index string) *TopicSearchRepo {
	return &TopicSearchRepo{client: client, index: index}
}

func (r *TopicSearchRepo) CreateIndexIfNotExist(ctx context.Context) error {
	existsReq := esapi.IndicesExistsRequest{Index: []string{r.index}}
	existsRes, err := existsReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error checking index existence: %w", err)
	}
	defer existsRes.Body.Close()

	if existsRes.StatusCode == 404 {
		mapping := map[string]interface{}{
			"settings": map[string]interface{}{
				"analysis": map[string]interface{}{
					"analyzer": map[string]interface{}{
						"edge_ngram_analyzer": map[string]interface{}{
							"tokenizer": "edge_ngram_tokenizer",
							"filter":    []string{"lowercase"},
						},
					},
					"tokenizer": map[string]interface{}{
						"edge_ngram_tokenizer": map[string]interface{}{
							"type":        "edge_ngram",
							"min_gram":    2,
							"max_gram":    20,
							"token_chars": []string{"letter", "digit"},
						},
					},
				},
			},
			"mappings": map[string]interface{}{
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":            "text",
						"analyzer":        "edge_ngram_analyzer",
						"search_analyzer": "standard",
					},
				},
			},
		}

		body, err := json.Marshal(mapping)
		if err != nil {
			return fmt.Errorf("marshal mapping: %w", err)
		}
		req := esapi.IndicesCreateRequest{Index: r.index, Body: bytes.NewReader(body)}
		res, err := req.Do(ctx, r.client)
		if err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
		defer res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("mapping creation failed: %s", res.String())
		}
	}

	if existsRes.StatusCode >= 300 && existsRes.StatusCode != 404 {
		return fmt.Errorf("index existence check failed with status code %d", existsRes.StatusCode)
	}

	return nil
}

func (r *TopicSearchRepo) Index(ctx context.Context, topic models.Topic) error {
	doc := map[string]interface{}{
		"name": topic.Name,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal doc: %w", err)
	}
	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: topic.ID.String(),
		Refresh:    "true",
		Body:       bytes.NewReader(data),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (r *TopicSearchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	req := esapi.DeleteRequest{
		Index:      r.index,
		DocumentID: id.String(),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete error: %s", res.String())
	}
	return nil
}

func (r *TopicSearchRepo) Search(ctx context.Context, query string, size int) ([]uuid.UUID, error) {
	if size <= 0 {
		size = 10
	}
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"name": map[string]interface{}{
					"query":     query,
					"fuzziness": "AUTO",
					"operator":  "or",
				},
			},
		},
		"size": size,
	}
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(q); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}
	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search error: %s", string(bodyBytes))
	}
	var esRes struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esRes); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(esRes.Hits.Hits))
	for _, hit := range esRes.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
