package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
)

// ErrDisabled is returned when no Elasticsearch client is configured.
var ErrDisabled = errors.New("search disabled")

// ArtworkIndex keeps a searchable copy of artwork listings.
type ArtworkIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewArtworkIndex(es *elasticsearch.Client, index string) *ArtworkIndex {
	return &ArtworkIndex{ES: es, Index: index}
}

func (x *ArtworkIndex) enabled() bool {
	return x != nil && x.ES != nil && x.Index != ""
}

// artworkMapping gives the text fields an analyzer and keeps ids and status
// as exact keywords.
const artworkMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "keyword"},
      "title":       {"type": "text"},
      "description": {"type": "text"},
      "label":       {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "status":      {"type": "keyword"},
      "price":       {"type": "double"},
      "seller_id":   {"type": "keyword"},
      "created_at":  {"type": "date"}
    }
  }
}`

// EnsureIndex creates the index with its mapping unless it already exists.
func (x *ArtworkIndex) EnsureIndex(ctx context.Context) error {
	if !x.enabled() {
		return ErrDisabled
	}
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := esapi.IndicesExistsRequest{Index: []string{x.Index}}.Do(c, x.ES)
	if err != nil {
		return err
	}
	_ = exists.Body.Close()
	if exists.StatusCode == 200 {
		return nil
	}

	res, err := esapi.IndicesCreateRequest{Index: x.Index, Body: strings.NewReader(artworkMapping)}.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", x.Index, res.Status())
	}
	return nil
}

// Put indexes or replaces the document for a.
func (x *ArtworkIndex) Put(ctx context.Context, a entity.Artwork) error {
	if !x.enabled() {
		return ErrDisabled
	}
	doc := map[string]any{
		"id":          a.ID,
		"title":       a.Title,
		"description": a.Description,
		"label":       a.Category,
		"status":      string(a.Status),
		"price":       a.Price,
		"seller_id":   a.SellerID,
		"created_at":  a.CreatedAt.Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.Index, DocumentID: a.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index artwork %s: %s", a.ID, res.Status())
	}
	return nil
}

// Remove deletes the document for id. A missing document is not an error.
func (x *ArtworkIndex) Remove(ctx context.Context, id string) error {
	if !x.enabled() {
		return ErrDisabled
	}
	req := esapi.DeleteRequest{Index: x.Index, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete artwork %s: %s", id, res.Status())
	}
	return nil
}

// SearchIDs runs a multi_match over title, description and label and returns
// matching artwork ids by relevance.
func (x *ArtworkIndex) SearchIDs(ctx context.Context, q string, size int) ([]string, error) {
	if !x.enabled() {
		return nil, ErrDisabled
	}
	if size <= 0 || size > 100 {
		size = 50
	}
	b, err := json.Marshal(buildQuery(q, size))
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.Index),
		x.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search artworks: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

func buildQuery(q string, size int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"title^3", "label^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}
}
