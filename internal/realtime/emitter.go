package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"zenwell-client/pkg/log"
)

// emitter is the ordered observer list for inbound messages. Registration is
// append-only for the life of the channel.
type emitter struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   log.Logger
}

func newEmitter(logger log.Logger) *emitter {
	return &emitter{logger: logger}
}

func (e *emitter) add(h Handler) {
	if h == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, h)
}

// dispatch invokes every handler in registration order. Each invocation is
// isolated: a panicking handler is logged and the rest still run.
func (e *emitter) dispatch(ctx context.Context, kind MessageKind, payload json.RawMessage) {
	e.mu.RLock()
	handlers := make([]Handler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	for i, h := range handlers {
		e.invoke(ctx, i, h, kind, payload)
	}
}

func (e *emitter) invoke(ctx context.Context, index int, h Handler, kind MessageKind, payload json.RawMessage) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf(ctx, "message handler %d panicked on %s message: %v", index, kind, r)
		}
	}()
	h(kind, payload)
}
