package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/plaquexpress/internal/types"
)

// Kafka publishes jobs to a topic and feeds the jobs channel from a
// consumer group, so jobs survive restarts and can be spread across
// several service instances.
type Kafka struct {
	producer sarama.SyncProducer
	group    sarama.ConsumerGroup
	topic    string

	jobs   chan types.OrderSummary
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// Bounds for a publish made on the order request path.
const (
	produceTimeout    = 2 * time.Second
	produceRetries    = 2
	produceRetryDelay = 100 * time.Millisecond
	brokerNetTimeout  = 3 * time.Second
)

func newConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Net.DialTimeout = brokerNetTimeout
	config.Net.ReadTimeout = brokerNetTimeout
	config.Net.WriteTimeout = brokerNetTimeout
	config.Metadata.Retry.Max = 1
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = produceTimeout
	config.Producer.Retry.Max = produceRetries
	config.Producer.Retry.Backoff = produceRetryDelay
	config.Producer.Return.Successes = true
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Version = sarama.V2_6_0_0
	return config
}

func NewKafka(brokers []string, topic string, groupID string) (*Kafka, error) {
	config := newConfig()

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer %w", err)
	}
	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create kafka consumer group %w", err)
	}
	return newKafka(producer, group, topic), nil
}

func newKafka(producer sarama.SyncProducer, group sarama.ConsumerGroup, topic string) *Kafka {
	return &Kafka{
		producer: producer,
		group:    group,
		topic:    topic,
		jobs:     make(chan types.OrderSummary),
	}
}

func (k *Kafka) Enqueue(ctx context.Context, summary types.OrderSummary) error {
	k.mu.Lock()
	closed := k.closed
	k.mu.Unlock()
	if closed {
		return ErrQueueClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(summary.OrderID),
		Value: sarama.ByteEncoder(data),
	}

	type sendResult struct {
		partition int32
		offset    int64
		err       error
	}
	// SendMessage takes no context; the buffered channel lets it finish
	// in the background once ctx gives up.
	sent := make(chan sendResult, 1)
	go func() {
		partition, offset, err := k.producer.SendMessage(msg)
		sent <- sendResult{partition: partition, offset: offset, err: err}
	}()

	var res sendResult
	select {
	case <-ctx.Done():
		return fmt.Errorf("failed to publish notification job %w", ctx.Err())
	case res = <-sent:
	}
	if res.err != nil {
		return fmt.Errorf("failed to publish notification job %w", res.err)
	}
	partition, offset := res.partition, res.offset

	logger.WithFields(logger.Fields{
		"topic":     k.topic,
		"partition": partition,
		"offset":    offset,
		"order_id":  summary.OrderID,
	}).Debug("Notification job published")
	return nil
}

func (k *Kafka) Jobs() <-chan types.OrderSummary {
	return k.jobs
}

// Start consumes the topic in the background until Close is called or ctx
// is cancelled.
func (k *Kafka) Start(ctx context.Context) {
	ctx, k.cancel = context.WithCancel(ctx)
	k.done = make(chan struct{})

	go func() {
		defer close(k.done)
		for {
			if err := k.group.Consume(ctx, []string{k.topic}, k); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				logger.Errorf("Error consuming notification jobs %s", err.Error())
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (k *Kafka) Close() error {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	k.mu.Unlock()

	if k.cancel != nil {
		k.cancel()
		<-k.done
	}

	var errs []error
	if k.group != nil {
		errs = append(errs, k.group.Close())
	}
	errs = append(errs, k.producer.Close())
	close(k.jobs)
	return errors.Join(errs...)
}

func (k *Kafka) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("Notification consumer session setup")
	return nil
}

func (k *Kafka) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("Notification consumer session cleanup")
	return nil
}

// ConsumeClaim hands every decoded job to the workers and marks it only
// after a worker took it.
func (k *Kafka) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			var summary types.OrderSummary
			if err := json.Unmarshal(message.Value, &summary); err != nil {
				logger.WithFields(logger.Fields{
					"partition": message.Partition,
					"offset":    message.Offset,
				}).Errorf("Skipping malformed notification job %s", err.Error())
				session.MarkMessage(message, "")
				continue
			}
			select {
			case k.jobs <- summary:
				session.MarkMessage(message, "")
			case <-session.Context().Done():
				return nil
			}
		case <-session.Context().Done():
			return nil
		}
	}
}
