package pubsub_test

import (
	"context"

	"insurance-server/internal/infra/pubsub"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ = ginkgo.Describe("Trace Propagation", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		_ = tp.Shutdown(context.Background())
	})

	ginkgo.It("should round trip a span context through headers", func() {
		ctx, span := tp.Tracer("test").Start(context.Background(), "test.span")
		defer span.End()

		headers := pubsub.ExtractTraceFromContext(ctx)
		gomega.Expect(headers.TraceID).To(gomega.Equal(span.SpanContext().TraceID().String()))
		gomega.Expect(headers.SpanID).To(gomega.Equal(span.SpanContext().SpanID().String()))

		injected := oteltrace.SpanContextFromContext(pubsub.InjectTraceIntoContext(context.Background(), headers))
		gomega.Expect(injected.TraceID()).To(gomega.Equal(span.SpanContext().TraceID()))
		gomega.Expect(injected.IsRemote()).To(gomega.BeTrue())
	})

	ginkgo.It("should return empty headers without a span", func() {
		gomega.Expect(pubsub.ExtractTraceFromContext(context.Background())).To(gomega.Equal(pubsub.TraceHeaders{}))
	})

	ginkgo.It("should ignore malformed headers", func() {
		ctx := context.Background()
		gomega.Expect(pubsub.InjectTraceIntoContext(ctx, pubsub.TraceHeaders{TraceID: "zz", SpanID: "zz"})).To(gomega.Equal(ctx))
	})

	ginkgo.It("should create child spans under the current span", func() {
		parentCtx, parentSpan := tp.Tracer("test").Start(context.Background(), "parent.span")
		defer parentSpan.End()

		childCtx, childSpan := pubsub.CreateChildSpan(parentCtx, "child.span")
		childSpan.End()

		gomega.Expect(childSpan.SpanContext().TraceID()).To(gomega.Equal(parentSpan.SpanContext().TraceID()))
		gomega.Expect(oteltrace.SpanFromContext(childCtx).SpanContext().SpanID()).To(gomega.Equal(childSpan.SpanContext().SpanID()))
		gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
	})

	ginkgo.It("should carry the publisher's trace to memory subscribers", func() {
		broker := pubsub.NewMemoryBroker()
		var received oteltrace.SpanContext
		gomega.Expect(broker.Subscribe("topic", "group", func(ctx context.Context, _ pubsub.Key, _ pubsub.Prototype) error {
			received = oteltrace.SpanContextFromContext(ctx)
			return nil
		})).To(gomega.Succeed())

		ctx, span := tp.Tracer("test").Start(context.Background(), "publish")
		defer span.End()
		gomega.Expect(broker.Publish(ctx, "topic", "k", "v")).To(gomega.Succeed())

		gomega.Expect(received.TraceID()).To(gomega.Equal(span.SpanContext().TraceID()))
	})
})
