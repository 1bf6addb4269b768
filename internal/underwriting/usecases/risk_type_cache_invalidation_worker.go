package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"insurance-server/internal/infra/async"
	"insurance-server/internal/infra/pubsub"
	"insurance-server/internal/shared_kernel/avro"
	shareddomain "insurance-server/internal/shared_kernel/domain"
)

func NewRiskTypeCacheInvalidationWorker(
	consumerFactory pubsub.ConsumerFactory,
	riskTypeService RiskTypeService,
) *RiskTypeCacheInvalidationWorker {
	return &RiskTypeCacheInvalidationWorker{
		consumerFactory: consumerFactory,
		riskTypeService: riskTypeService,
		stop:            make(chan struct{}),
	}
}

var _ async.Worker = (*RiskTypeCacheInvalidationWorker)(nil)

// RiskTypeCacheInvalidationWorker evicts cached risk types whenever any replica publishes a change.
type RiskTypeCacheInvalidationWorker struct {
	consumerFactory pubsub.ConsumerFactory
	riskTypeService RiskTypeService
	stop            chan struct{}
}

func (w *RiskTypeCacheInvalidationWorker) Run(ctx context.Context, done func()) {
	defer done()
	slog.Info("risk type cache invalidation worker started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	consumer := w.consumerFactory.New()
	err := consumer.Consume(ctx, RiskTypesTopic, w.handle, &avro.AvroRiskType{})
	if err != nil {
		slog.Error("consuming risk type events", slog.String("error", err.Error()))
		return
	}

	<-ctx.Done()
	slog.Info("risk type cache invalidation worker stopped")
}

func (w *RiskTypeCacheInvalidationWorker) Shutdown() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
}

func (w *RiskTypeCacheInvalidationWorker) handle(ctx context.Context, key pubsub.Key, message pubsub.Prototype) error {
	id := shareddomain.ID(key)
	if event, ok := message.(*avro.AvroRiskType); ok && event.ID != "" {
		id = shareddomain.ID(event.ID)
	}

	if id == "" {
		return fmt.Errorf("risk type event without ID")
	}

	slog.Debug("invalidating cached risk type", slog.String("risk_type_id", id.String()))
	return w.riskTypeService.InvalidateRiskType(ctx, id)
}
