// Package search maintains a user directory in Elasticsearch for the
// admin search endpoint. Indexing is best-effort; the directory is a
// projection, never the source of truth.
package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/takumi-dev/go-user-management/internal/domain/entity"
)

// UserDirectory indexes and searches user profiles. A nil client turns
// both operations into no-ops.
type UserDirectory struct {
	es     *elasticsearch.Client
	index  string
	logger *logrus.Logger
}

func NewUserDirectory(es *elasticsearch.Client, index string, logger *logrus.Logger) *UserDirectory {
	return &UserDirectory{es: es, index: index, logger: logger}
}

// Index writes the user's public profile into the directory.
func (d *UserDirectory) Index(ctx context.Context, u *entity.User) error {
	if d.es == nil || d.index == "" {
		return nil
	}
	doc := map[string]any{
		"id":         u.ID,
		"email":      u.Email.String(),
		"name":       u.Name,
		"role":       u.Role.String(),
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": u.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: d.index, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, d.es)
	if err != nil {
		if d.logger != nil {
			d.logger.WithError(err).WithField("user_id", u.ID).Warn("user directory index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && d.logger != nil {
		d.logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("user directory index response error")
	}
	return nil
}

// Search runs a multi_match query over email and name.
func (d *UserDirectory) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if d.es == nil || d.index == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := d.es.Search(
		d.es.Search.WithContext(c),
		d.es.Search.WithIndex(d.index),
		d.es.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
