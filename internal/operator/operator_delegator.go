package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

var ErrStopped = errors.New("operator: stopped")

// OperatorDelegator owns the queue and the single Operator that drains it.
type OperatorDelegator struct {
	storage  *storage.Storage
	queue    chan ActionItem
	logger   *logrus.Logger
	wg       sync.WaitGroup
	mutex    sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage, queueSize int, logger *logrus.Logger) *OperatorDelegator {
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		storage: s,
		queue:   make(chan ActionItem, queueSize),
		logger:  logger,
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.storage, d.queue, d.logger)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

// Stop closes the queue, lets the operator finish what is queued, and waits
// for it. Process calls after Stop return ErrStopped.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mutex.Lock()
		d.stopped = true
		close(d.queue)
		d.mutex.Unlock()
		d.wg.Wait()
	})
}

// Process queues action and waits for it to be performed and committed.
// Cancelling ctx before the commit starts abandons the action. Once the
// commit has started its result is reported, even if ctx ends meanwhile.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	defer logging.TimedTotal(ctx, "operatorMs")()

	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
		state:    new(atomic.Int32),
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		select {
		case resp := <-respCh:
			return resp.err
		default:
		}

		if item.abandon() {
			return ctx.Err()
		}
		// The operator is already committing.
		return (<-respCh).err
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
