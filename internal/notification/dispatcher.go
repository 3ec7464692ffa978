package notification

import (
	"context"
	"log"
	"sync"
	"time"

	"hotelbooking/internal/domain"
)

const (
	defaultQueueSize = 64
	maxAttempts      = 3
	sendTimeout      = 30 * time.Second
)

type confirmationJob struct {
	email   string
	booking domain.Booking
}

// Dispatcher delivers booking confirmations out-of-band. Enqueue never
// blocks the booking path: the transaction has already committed when
// a confirmation is queued, and a delivery failure only logs.
type Dispatcher struct {
	mailer     Mailer
	queue      chan confirmationJob
	retryDelay time.Duration

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer:     mailer,
		queue:      make(chan confirmationJob, defaultQueueSize),
		retryDelay: 2 * time.Second,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Enqueue queues a confirmation for delivery. When the queue is full
// or the dispatcher is already closed the job is dropped with a
// warning; the booking itself is unaffected either way.
func (d *Dispatcher) Enqueue(email string, b domain.Booking) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		log.Printf("notification dispatcher closed, dropping confirmation booking_id=%d email=%s", b.ID, email)
		return
	}

	select {
	case d.queue <- confirmationJob{email: email, booking: b}:
	default:
		log.Printf("notification queue full, dropping confirmation booking_id=%d email=%s", b.ID, email)
	}
}

// Close stops accepting jobs and drains what is already queued.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.queue {
		d.deliver(job)
	}
}

func (d *Dispatcher) deliver(job confirmationJob) {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err = d.mailer.SendBookingConfirmation(ctx, job.email, job.booking)
		cancel()
		if err == nil {
			return
		}
		log.Printf("confirmation send failed booking_id=%d email=%s attempt=%d error=%q",
			job.booking.ID, job.email, attempt, err)
		if attempt < maxAttempts {
			time.Sleep(d.retryDelay)
		}
	}
	log.Printf("confirmation gave up booking_id=%d email=%s attempts=%d", job.booking.ID, job.email, maxAttempts)
}
