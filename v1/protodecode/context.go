package protodecode

import (
	"context"
	"fmt"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/linker"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// DecodeContext is the compiled, queryable view of one schema closure: a
// descriptor set covering every file in the closure plus the standard
// well-known types, and a name resolver over the root file's message
// nesting. A DecodeContext is immutable after construction and shared across
// all decode calls for its identifier.
type DecodeContext struct {
	// Resolver maps wire message-index paths to fully-qualified names
	// against the root schema file.
	Resolver *NameResolver

	files linker.Files
}

// buildDecodeContext compiles a closure into a DecodeContext. It is a pure
// function of the closure: the root is the closure's final element, the
// compiled set is the closure deduplicated by file name, and imports of the
// standard well-known types resolve against built-in definitions without
// involving the registry.
func buildDecodeContext(ctx context.Context, closure *Closure) (*DecodeContext, error) {
	sources := make(map[string]string, closure.Len())
	names := make([]string, 0, closure.Len())
	for _, file := range closure.Files() {
		if _, seen := sources[file.Name]; !seen {
			names = append(names, file.Name)
		}
		// Later entries win so the root, always last, cannot be shadowed
		// by a reference that reuses its name.
		sources[file.Name] = file.Source
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(sources),
		}),
	}
	compiled, err := compiler.Compile(ctx, names...)
	if err != nil {
		return nil, newNonRetryable("compiling schema closure", fmt.Errorf("%w: %v", ErrSchemaParse, err))
	}

	rootName := closure.Root().Name
	var root protoreflect.FileDescriptor
	for _, file := range compiled {
		if file.Path() == rootName {
			root = file
			break
		}
	}
	if root == nil {
		// The compiler was asked for rootName and reported success.
		panic(fmt.Sprintf("protodecode: compiled closure is missing root file %q", rootName))
	}

	return &DecodeContext{
		Resolver: newNameResolver(root),
		files:    compiled,
	}, nil
}

// MessageByName returns the message descriptor for a fully-qualified name
// from the compiled closure.
func (c *DecodeContext) MessageByName(name protoreflect.FullName) (protoreflect.MessageDescriptor, error) {
	desc, err := c.files.AsResolver().FindDescriptorByName(name)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", name, err)
	}
	message, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%q is not a message", name)
	}
	return message, nil
}
