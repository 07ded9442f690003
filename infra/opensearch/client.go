// Package opensearch ships detection audit records to an OpenSearch cluster,
// one index per gateway.
package opensearch

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	"github.com/rs/zerolog"

	"github.com/syncads/paydetect/infra/config"
)

// Client wraps the OpenSearch client
type Client struct {
	client *opensearch.Client
	log    zerolog.Logger
}

// NewClient creates a new OpenSearch client and ensures an audit index
// exists for every given gateway slug.
func NewClient(cfg *config.AppConfig, slugs []string, log zerolog.Logger) (*Client, error) {
	opensearchConfig := opensearch.Config{
		Addresses: []string{cfg.OpenSearchURL},
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, // For development/testing
			},
		},
		MaxRetries:    3,
		RetryOnStatus: []int{502, 503, 504, 429},
		RetryBackoff: func(i int) time.Duration {
			return time.Duration(i) * 100 * time.Millisecond
		},
	}

	if cfg.OpenSearchUser != "" && cfg.OpenSearchPass != "" {
		opensearchConfig.Username = cfg.OpenSearchUser
		opensearchConfig.Password = cfg.OpenSearchPass
	}

	client, err := opensearch.NewClient(opensearchConfig)
	if err != nil {
		return nil, err
	}

	osClient := &Client{client: client, log: log}

	if err := osClient.setupIndices(slugs); err != nil {
		log.Warn().Err(err).Msg("failed to setup audit indices")
	}

	return osClient, nil
}

// GetClient returns the underlying OpenSearch client
func (c *Client) GetClient() *opensearch.Client {
	return c.client
}

// setupIndices creates the audit index for every gateway slug.
func (c *Client) setupIndices(slugs []string) error {
	for _, slug := range slugs {
		indexName := c.IndexName(slug)

		exists, err := c.indexExists(indexName)
		if err != nil {
			c.log.Warn().Err(err).Str("index", indexName).Msg("failed to check audit index")
			continue
		}

		if !exists {
			if err := c.createAuditIndex(indexName); err != nil {
				c.log.Warn().Err(err).Str("index", indexName).Msg("failed to create audit index")
				continue
			}
			c.log.Info().Str("index", indexName).Msg("created audit index")
		}
	}

	return nil
}

// indexExists checks if an index exists
func (c *Client) indexExists(indexName string) (bool, error) {
	req := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}

	res, err := req.Do(context.Background(), c.client)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	return res.StatusCode == 200, nil
}

// createAuditIndex creates an index with the detection attempt mapping.
func (c *Client) createAuditIndex(indexName string) error {
	mapping := `{
		"mappings": {
			"properties": {
				"timestamp": {
					"type": "date",
					"format": "strict_date_optional_time||epoch_millis"
				},
				"attempt_id": {
					"type": "keyword"
				},
				"gateway": {
					"type": "keyword"
				},
				"success": {
					"type": "boolean"
				},
				"http_status": {
					"type": "integer"
				},
				"message": {
					"type": "text"
				},
				"duration_ms": {
					"type": "integer"
				}
			}
		},
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		}
	}`

	req := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mapping),
	}

	res, err := req.Do(context.Background(), c.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index creation error: %s", res.String())
	}

	return nil
}

// IndexName returns the audit index name for a gateway.
func (c *Client) IndexName(gateway string) string {
	return "paydetect-" + gateway + "-logs"
}
