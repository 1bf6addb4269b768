package usecases_test

import (
	"context"
	"sync"
	"sync/atomic"

	"insurance-server/internal/infra/pubsub"
	"insurance-server/internal/shared_kernel/avro"
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/usecases"
	mockusecases "insurance-server/test/unit/doubles/underwriting/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RiskTypeCacheInvalidationWorker", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockRiskTypeService
		broker      *pubsub.MemoryBroker
		worker      *usecases.RiskTypeCacheInvalidationWorker
		wg          sync.WaitGroup
		cancel      context.CancelFunc
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockService = mockusecases.NewMockRiskTypeService(ctrl)
		broker = pubsub.NewMemoryBroker()
		worker = usecases.NewRiskTypeCacheInvalidationWorker(
			pubsub.NewMemoryConsumerFactoryWithBroker(broker, "cache-invalidation"),
			mockService,
		)

		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		wg.Add(1)
		go worker.Run(ctx, wg.Done)
	})

	ginkgo.AfterEach(func() {
		cancel()
		wg.Wait()
		ctrl.Finish()
	})

	ginkgo.It("evicts the risk type named by the event", func() {
		invalidated := make(chan shareddomain.ID, 1)
		// published until the worker has subscribed
		mockService.EXPECT().InvalidateRiskType(gomock.Any(), shareddomain.ID("rt-1")).
			DoAndReturn(func(_ context.Context, id shareddomain.ID) error {
				select {
				case invalidated <- id:
				default:
				}
				return nil
			}).
			AnyTimes()

		gomega.Eventually(func() bool {
			_ = broker.Publish(context.Background(), usecases.RiskTypesTopic, "rt-1", &avro.AvroRiskType{ID: "rt-1"})
			select {
			case id := <-invalidated:
				return id == "rt-1"
			default:
				return false
			}
		}).Should(gomega.BeTrue())
	})

	ginkgo.It("prefers the ID carried by the event", func() {
		var calls atomic.Int32
		mockService.EXPECT().InvalidateRiskType(gomock.Any(), shareddomain.ID("rt-2")).
			DoAndReturn(func(context.Context, shareddomain.ID) error {
				calls.Add(1)
				return nil
			}).
			AnyTimes()

		gomega.Eventually(func() int32 {
			_ = broker.Publish(context.Background(), usecases.RiskTypesTopic, "other-key", &avro.AvroRiskType{ID: "rt-2"})
			return calls.Load()
		}).Should(gomega.BeNumerically(">=", 1))
	})

	ginkgo.It("stops on Shutdown", func() {
		worker.Shutdown()

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		gomega.Eventually(done).Should(gomega.BeClosed())
	})
})
