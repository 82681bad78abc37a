package protodecode

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// NameResolver maps a wire message-index path onto the root schema file's
// declared message nesting: the first path element indexes the file's
// top-level messages in declaration order, each subsequent element indexes
// the nested messages of the message selected so far.
type NameResolver struct {
	root protoreflect.FileDescriptor
}

func newNameResolver(root protoreflect.FileDescriptor) *NameResolver {
	return &NameResolver{root: root}
}

// Resolve walks path through the root file's message declarations and
// returns the fully-qualified name of the message it selects. An index that
// is out of range for its nesting level indicates payload corruption or a
// schema/payload version mismatch and fails with ErrNameResolution.
func (r *NameResolver) Resolve(path []int64) (protoreflect.FullName, error) {
	if len(path) == 0 {
		return "", newNonRetryable("empty message index path", ErrNameResolution)
	}

	messages := r.root.Messages()
	var message protoreflect.MessageDescriptor
	for depth, index := range path {
		if index < 0 || index >= int64(messages.Len()) {
			return "", newNonRetryable(
				fmt.Sprintf("index %d at depth %d exceeds %d declared messages", index, depth, messages.Len()),
				ErrNameResolution,
			)
		}
		message = messages.Get(int(index))
		messages = message.Messages()
	}
	return message.FullName(), nil
}
