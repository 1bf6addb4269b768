package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

const _memoryHistorySize = 100

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

// In-memory implementation for local runs and tests
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return NewMemoryPublisherFactoryWithBroker(GetMemoryBroker())
}

func NewMemoryPublisherFactoryWithBroker(broker *MemoryBroker) *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: broker,
	}
}

func (f *MemoryPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return NewMemoryConsumerFactoryWithBroker(GetMemoryBroker(), group)
}

func NewMemoryConsumerFactoryWithBroker(broker *MemoryBroker, group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: broker,
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

var _ Consumer = (*MemoryConsumer)(nil)

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(_ context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	return c.broker.Subscribe(topic, c.group, handler)
}

// MemoryBroker delivers every message synchronously to one handler per consumer group,
// in publish order.
type MemoryBroker struct {
	mu      sync.RWMutex
	groups  map[Topic]map[string]MessageHandler
	history map[Topic][]MessageEvent
}

type MessageEvent struct {
	Key     Key
	Message Message
	Topic   Topic
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		groups:  make(map[Topic]map[string]MessageHandler),
		history: make(map[Topic][]MessageEvent),
	}
}

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = NewMemoryBroker()
	})
	return memoryBroker
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	event := MessageEvent{
		Key:     key,
		Message: message,
		Topic:   topic,
	}

	b.mu.Lock()
	history := append(b.history[topic], event)
	if len(history) > _memoryHistorySize {
		history = history[len(history)-_memoryHistorySize:]
	}
	b.history[topic] = history

	handlers := make([]MessageHandler, 0, len(b.groups[topic]))
	for _, handler := range b.groups[topic] {
		handlers = append(handlers, handler)
	}
	b.mu.Unlock()

	// handlers outlive the publishing request, so only the trace is carried over
	handlerCtx := InjectTraceIntoContext(context.Background(), ExtractTraceFromContext(ctx))
	for _, handler := range handlers {
		b.deliver(handlerCtx, handler, event)
	}

	return nil
}

func (b *MemoryBroker) deliver(ctx context.Context, handler MessageHandler, event MessageEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler",
				slog.String("topic", string(event.Topic)),
				slog.String("panic", fmt.Sprint(r)))
		}
	}()

	if err := handler(ctx, event.Key, event.Message); err != nil {
		slog.Error("handling message",
			slog.String("topic", string(event.Topic)),
			slog.String("key", string(event.Key)),
			slog.String("error", err.Error()))
	}
}

// Subscribe registers handler for group. A later subscription for the same group replaces it.
func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) error {
	if handler == nil {
		return fmt.Errorf("subscribing %s to %s: nil handler", group, topic)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.groups[topic]; !exists {
		b.groups[topic] = make(map[string]MessageHandler)
	}
	b.groups[topic][group] = handler
	return nil
}

// Reset clears all topics and consumers (useful for testing)
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.groups = make(map[Topic]map[string]MessageHandler)
	b.history = make(map[Topic][]MessageEvent)
}

// Messages returns the most recent messages published to topic, oldest first.
func (b *MemoryBroker) Messages(topic Topic) []MessageEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]MessageEvent, len(b.history[topic]))
	copy(result, b.history[topic])
	return result
}

func (b *MemoryBroker) GetMessageCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.history[topic])
}
