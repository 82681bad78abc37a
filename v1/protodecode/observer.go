package protodecode

import (
	"strconv"
	"time"

	"github.com/Aleph-Alpha/protodecode/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track decode pipeline operations for metrics and tracing.
//
// Notes:
//   - resource: schema identifier
//   - subResource: resolved fully-qualified message name, when known
func (d *Decoder) observeOperation(operation string, id uint32, fullName string, duration time.Duration, err error, size int64) {
	if d == nil || d.observer == nil {
		return
	}

	d.observer.ObserveOperation(observability.OperationContext{
		Component:   "protodecode",
		Operation:   operation,
		Resource:    strconv.FormatUint(uint64(id), 10),
		SubResource: fullName,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
