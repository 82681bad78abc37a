package schema_registry

// Reference is a named pointer from one registered schema to another.
// Name is the import path the referencing schema uses (e.g. "result.proto"),
// Subject and Version identify the registry entry that satisfies it.
type Reference struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Version int    `json:"version"`
}

// RegisteredSchema is one schema document as served by the registry:
// its source text plus the ordered list of schemas it references.
type RegisteredSchema struct {
	ID         uint32      `json:"id"`
	Schema     string      `json:"schema"`
	SchemaType string      `json:"schemaType,omitempty"`
	References []Reference `json:"references,omitempty"`
}
