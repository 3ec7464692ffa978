package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelbooking/internal/domain"
)

// recordingMailer counts delivery attempts and fails the first failN of
// them.
type recordingMailer struct {
	mu    sync.Mutex
	sent  []string
	calls int
	failN int
}

func (m *recordingMailer) SendBookingConfirmation(_ context.Context, email string, _ domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls <= m.failN {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *recordingMailer) snapshot() (int, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls, append([]string(nil), m.sent...)
}

func TestDispatcher_DeliversQueuedConfirmations(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(mailer)

	d.Enqueue("anna@example.com", domain.Booking{ID: 1})
	d.Enqueue("boris@example.com", domain.Booking{ID: 2})
	d.Close()

	calls, sent := mailer.snapshot()
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"anna@example.com", "boris@example.com"}, sent)
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	mailer := &recordingMailer{failN: 2}
	d := NewDispatcher(mailer)
	d.retryDelay = time.Millisecond

	d.Enqueue("anna@example.com", domain.Booking{ID: 1})
	d.Close()

	calls, sent := mailer.snapshot()
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"anna@example.com"}, sent)
}

func TestDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	mailer := &recordingMailer{failN: 100}
	d := NewDispatcher(mailer)
	d.retryDelay = time.Millisecond

	d.Enqueue("anna@example.com", domain.Booking{ID: 1})
	d.Close()

	calls, sent := mailer.snapshot()
	assert.Equal(t, maxAttempts, calls)
	assert.Empty(t, sent)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingMailer{})
	d.Close()

	assert.NotPanics(t, func() {
		d.Close()
	})
}

func TestDispatcher_EnqueueAfterCloseIsDropped(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(mailer)
	d.Close()

	assert.NotPanics(t, func() {
		d.Enqueue("anna@example.com", domain.Booking{ID: 1})
	})

	calls, _ := mailer.snapshot()
	assert.Zero(t, calls)
}

func TestDevConsoleMailer_NeverFails(t *testing.T) {
	m := NewDevConsoleMailer(true)
	err := m.SendBookingConfirmation(context.Background(), "anna@example.com", domain.Booking{ID: 1})
	assert.NoError(t, err)
}
