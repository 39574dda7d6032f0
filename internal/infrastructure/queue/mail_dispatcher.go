package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dashgrid/dashgrid-api/internal/api/metrics"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
	deliverTimeout = 30 * time.Second
)

// MailDispatcher hands outbound mail to a fixed set of workers. Messages are
// sharded on the recipient so mail to one address is delivered in order.
type MailDispatcher struct {
	workers []chan ports.MailMessage
	sender  ports.MailSender
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewMailDispatcher creates a MailDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, sender ports.MailSender, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan ports.MailMessage, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.MailMessage, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel until
// Shutdown closes it.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Send enqueues msg without blocking. A full queue or a stopped dispatcher
// drops the message with a warning.
func (d *MailDispatcher) Send(msg ports.MailMessage) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(msg, "dispatcher stopped")
		return
	}

	idx := d.shardIndex(msg.To)
	select {
	case d.workers[idx] <- msg:
		metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.drop(msg, "queue full")
	}
}

// Shutdown stops accepting mail and waits for queued messages to be
// delivered or for ctx to expire.
func (d *MailDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *MailDispatcher) drop(msg ports.MailMessage, reason string) {
	metrics.MailsSentTotal.WithLabelValues("dropped").Inc()
	d.log.Warn().Str("to", msg.To).Str("subject", msg.Subject).Str("reason", reason).Msg("mail dropped")
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(to)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.MailMessage) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for msg := range ch {
		metrics.MailQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deliverTimeout)
		start := time.Now()
		err := d.sender.Send(sendCtx, msg)
		cancel()
		metrics.MailDeliveryDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.MailsSentTotal.WithLabelValues("failed").Inc()
			d.log.Error().Err(err).
				Str("to", msg.To).
				Int("worker_id", id).
				Msg("mail delivery failed")
			continue
		}
		metrics.MailsSentTotal.WithLabelValues("sent").Inc()
		d.log.Debug().Str("to", msg.To).Int("worker_id", id).Msg("mail delivered")
	}
}
