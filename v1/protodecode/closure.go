package protodecode

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/protodecode/v1/schema_registry"
)

// rootFileName is the synthetic file name assigned to the root schema of a
// closure. The registry serves the root by identifier without a file name;
// referenced schemas keep the import path their parents declared for them.
const rootFileName = "root.proto"

// SchemaFile is one schema source text in a closure, under the file name the
// compiler must see it as.
type SchemaFile struct {
	Name   string
	Source string
}

// Closure is the dependency-ordered source set for one registered schema:
// every file appears after all files it depends on, and the root schema is
// the final element. A Closure is immutable after construction and shared
// across all decode calls for its identifier; callers must not modify the
// returned slices.
type Closure struct {
	files []SchemaFile
}

// Files returns the closure's files in dependency order, root last.
func (c *Closure) Files() []SchemaFile {
	return c.files
}

// Root returns the root schema file, the closure's final element.
func (c *Closure) Root() SchemaFile {
	return c.files[len(c.files)-1]
}

// Len returns the number of files in the closure, duplicates included.
func (c *Closure) Len() int {
	return len(c.files)
}

// resolveClosure fetches the transitive reference graph of root and
// linearizes it depth-first: each referenced schema's sub-closure is
// appended before the schema that references it, so dependencies always
// precede dependents and the root ends up last.
//
// The same schema may appear more than once when it is reachable through
// multiple reference paths; the context builder deduplicates by file name.
// A cycle in the reference graph fails with ErrReferenceCycle.
func (d *Decoder) resolveClosure(ctx context.Context, root *schema_registry.RegisteredSchema) (*Closure, error) {
	var files []SchemaFile
	onPath := make(map[string]bool)
	if err := d.appendSchema(ctx, rootFileName, root, &files, onPath); err != nil {
		return nil, err
	}
	return &Closure{files: files}, nil
}

func (d *Decoder) appendSchema(ctx context.Context, name string, schema *schema_registry.RegisteredSchema, files *[]SchemaFile, onPath map[string]bool) error {
	if onPath[name] {
		return newNonRetryable(fmt.Sprintf("resolving references of %q", name), ErrReferenceCycle)
	}
	onPath[name] = true
	defer delete(onPath, name)

	for _, ref := range schema.References {
		child, err := d.registry.GetReferencedSchema(ctx, ref)
		if err != nil {
			return fromRegistryError(fmt.Sprintf("fetching referenced schema %q", ref.Name), err)
		}
		if err := d.appendSchema(ctx, ref.Name, child, files, onPath); err != nil {
			return err
		}
	}

	*files = append(*files, SchemaFile{Name: name, Source: schema.Schema})
	return nil
}
