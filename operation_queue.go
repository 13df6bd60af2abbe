package stockpile

import (
	"fmt"

	"go.uber.org/zap"
)

// Creates and attaches queue separately; there are no destroy operations
// because the store has no deletion path.
type operation struct {
	components map[string]Component
	entity     int64
	name       string
	component  Component
}

type attachKey struct {
	entity int64
	name   string
}

type opQueue struct {
	createOps []operation
	attachOps []operation

	// pendingAttach dedupes queued attaches per (entity, name); the first
	// enqueued wins, mirroring the store's first-write-wins attach rule.
	pendingAttach map[attachKey]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingAttach: make(map[attachKey]struct{}),
	}
}

func (q *opQueue) EnqueueAttach(id int64, name string, c Component) {
	key := attachKey{entity: id, name: name}
	if _, exists := q.pendingAttach[key]; exists {
		return
	}
	q.pendingAttach[key] = struct{}{}
	q.attachOps = append(q.attachOps, operation{
		entity:    id,
		name:      name,
		component: c,
	})
}

func (sto *storage) processOperationQueue() error {
	if len(sto.opQueue.createOps) == 0 && len(sto.opQueue.attachOps) == 0 {
		return nil
	}

	// Creates first, then attaches
	for _, op := range sto.opQueue.createOps {
		if _, err := sto.NewEntity(op.components); err != nil {
			return fmt.Errorf("failed to process queued entity creation: %w", err)
		}
	}

	for _, op := range sto.opQueue.attachOps {
		if err := sto.AttachComponent(op.entity, op.name, op.component); err != nil {
			return fmt.Errorf("failed to process queued attach: %w", err)
		}
	}

	sto.log.Debug("operation queue drained",
		zap.Int("creates", len(sto.opQueue.createOps)),
		zap.Int("attaches", len(sto.opQueue.attachOps)),
	)

	sto.opQueue.createOps = sto.opQueue.createOps[:0]
	sto.opQueue.attachOps = sto.opQueue.attachOps[:0]
	clear(sto.opQueue.pendingAttach)
	return nil
}
