package operator

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

// Operator is the worker that processes items from the queue. Exactly one
// runs per document, so read-modify-write cycles never interleave.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller already gave up; don't touch the document on its behalf.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		o.logFailure(item, err)
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		o.logFailure(item, err)
		item.response <- ActionItemResponse{err: err}
		return
	}

	if item.ctx.Err() != nil || !item.startCommit() {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: item.ctx.Err()}
		return
	}
	// The caller now waits for this result, so a late cancel must not cut
	// the write short.
	if err = writer.Commit(context.WithoutCancel(item.ctx)); err != nil {
		o.logFailure(item, err)
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

func (o *Operator) logFailure(item ActionItem, err error) {
	if o.logger == nil {
		return
	}
	o.logger.WithError(err).WithField("action", item.action.ActionName()).Warn("Operator.processItem.failed")
}

const (
	itemPending int32 = iota
	itemCommitting
	itemAbandoned
)

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
	// state decides between the operator committing and the caller giving up.
	state *atomic.Int32
}

func (i ActionItem) startCommit() bool {
	return i.state.CompareAndSwap(itemPending, itemCommitting)
}

func (i ActionItem) abandon() bool {
	return i.state.CompareAndSwap(itemPending, itemAbandoned)
}


type ActionItemResponse struct {
	err error
}
