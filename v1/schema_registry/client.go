package schema_registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Registry provides read access to a Confluent Schema Registry.
// It serves registered schema documents by identifier and referenced schema
// documents by subject and version.
//
// Implementations must be safe for concurrent use. Callers are expected to
// cache results themselves (the protodecode package does); the client does
// not cache.
type Registry interface {
	// GetSchemaByID retrieves a registered schema, including its
	// reference list, by its registry-assigned identifier.
	GetSchemaByID(ctx context.Context, id uint32) (*RegisteredSchema, error)

	// GetReferencedSchema retrieves the schema a reference points to,
	// by subject name and version.
	GetReferencedSchema(ctx context.Context, ref Reference) (*RegisteredSchema, error)
}

// Client is the default implementation of Registry
// that communicates with Confluent Schema Registry over HTTP.
type Client struct {
	url        string
	httpClient *http.Client

	// Authentication
	username string
	password string
}

// NewClient creates a new schema registry client.
// Returns the concrete *Client type.
func NewClient(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("schema registry URL is required")
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		url: config.URL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		username: config.Username,
		password: config.Password,
	}, nil
}

// GetSchemaByID retrieves a schema from the registry by its ID.
// Soft-deleted schemas are included so payloads produced before a deletion
// remain decodable.
func (c *Client) GetSchemaByID(ctx context.Context, id uint32) (*RegisteredSchema, error) {
	url := fmt.Sprintf("%s/schemas/ids/%d?deleted=true", c.url, id)
	schema, err := c.fetchSchema(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching schema id %d: %w", id, err)
	}
	if schema.ID == 0 {
		schema.ID = id
	}
	return schema, nil
}

// GetReferencedSchema retrieves the schema a reference points to, by the
// subject and version named in the reference.
func (c *Client) GetReferencedSchema(ctx context.Context, ref Reference) (*RegisteredSchema, error) {
	url := fmt.Sprintf("%s/subjects/%s/versions/%d", c.url, ref.Subject, ref.Version)
	schema, err := c.fetchSchema(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching referenced schema %s/%d: %w", ref.Subject, ref.Version, err)
	}
	return schema, nil
}

// fetchSchema performs a registry GET and decodes the schema document from
// the response body.
func (c *Client) fetchSchema(ctx context.Context, url string) (*RegisteredSchema, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRegistryUnavailable, err)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	req.Header.Set("Accept", "application/vnd.schemaregistry.v1+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decoding
	case resp.StatusCode == http.StatusNotFound:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: registry returned status %d: %s", ErrRegistryUnavailable, resp.StatusCode, string(body))
	}

	var schema RegisteredSchema
	if err := json.NewDecoder(resp.Body).Decode(&schema); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrRegistryUnavailable, err)
	}

	return &schema, nil
}
