package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	"github.com/dreamwell/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *fakeQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.IsReadyToProcess() {
			out = append(out, job)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (q *fakeQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return q.jobs[id], nil
}

func (q *fakeQueue) GetByRecipient(_ context.Context, email string) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *fakeQueue) DeletePendingByRecipient(_ context.Context, email string) (int64, error) {
	var n int64
	for id, job := range q.jobs {
		if job.RecipientEmail == email && job.Status != entity.EmailStatusSent {
			delete(q.jobs, id)
			n++
		}
	}
	return n, nil
}

func (q *fakeQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *fakeSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_test"}, nil
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorkerProcessing(t *testing.T) {
	t.Run("sends a queued verification email", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{}
		svc := NewService(queue, "https://app.dreamwell.example")

		err := svc.QueueVerificationEmail(context.Background(), adapter.QueueVerificationInput{
			UserEmail: "mira@example.com",
			UserName:  "Mira",
			VerifyURL: "https://app.dreamwell.example/verify?token=abc",
			ExpiresIn: "24 hours",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(context.Background())

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.sent))
		}
		sent := sender.sent[0]
		if sent.To != "mira@example.com" {
			t.Errorf("unexpected recipient %q", sent.To)
		}
		if !strings.Contains(sent.HTML, "https://app.dreamwell.example/verify?token=abc") {
			t.Error("expected the verification URL in the HTML body")
		}
		if !strings.Contains(sent.Text, "Mira") {
			t.Error("expected the user name in the text body")
		}

		jobs, _ := queue.GetByRecipient(context.Background(), "mira@example.com")
		if len(jobs) != 1 || jobs[0].Status != entity.EmailStatusSent {
			t.Errorf("expected the job to be marked sent, got %+v", jobs)
		}
	})

	t.Run("sends a queued password reset email", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{}
		svc := NewService(queue, "https://app.dreamwell.example")

		err := svc.QueuePasswordResetEmail(context.Background(), adapter.QueuePasswordResetInput{
			UserEmail: "ben@example.com",
			UserName:  "Ben",
			ResetURL:  "https://app.dreamwell.example/reset?token=xyz",
			ExpiresIn: "1 hour",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(context.Background())

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.sent))
		}
		if !strings.Contains(sender.sent[0].HTML, "https://app.dreamwell.example/reset?token=xyz") {
			t.Error("expected the reset URL in the HTML body")
		}
	})

	t.Run("sends a queued ticket reply notification", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{}
		svc := NewService(queue, "https://app.dreamwell.example")

		err := svc.QueueTicketReplyEmail(context.Background(), adapter.QueueTicketReplyInput{
			UserEmail:     "luna@example.com",
			UserName:      "Luna",
			TicketSubject: "Export stuck",
			Reply:         "We are looking into the export job.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(context.Background())

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.sent))
		}
		sent := sender.sent[0]
		if !strings.Contains(sent.HTML, "Export stuck") {
			t.Error("expected the ticket subject in the HTML body")
		}
		if !strings.Contains(sent.Text, "We are looking into the export job.") {
			t.Error("expected the reply in the text body")
		}
	})

	t.Run("a transient failure schedules a retry", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{err: errors.New("connection refused")}
		svc := NewService(queue, "https://app.dreamwell.example")

		err := svc.QueueVerificationEmail(context.Background(), adapter.QueueVerificationInput{
			UserEmail: "retry@example.com",
			UserName:  "Retry",
			VerifyURL: "https://app.dreamwell.example/verify?token=r",
			ExpiresIn: "24 hours",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(context.Background())

		jobs, _ := queue.GetByRecipient(context.Background(), "retry@example.com")
		if len(jobs) != 1 {
			t.Fatalf("expected 1 job, got %d", len(jobs))
		}
		job := jobs[0]
		if job.Status != entity.EmailStatusPending {
			t.Errorf("expected the job back in pending, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
	})

	t.Run("exhausting retries marks the job failed", func(t *testing.T) {
		job := entity.NewEmailJob(entity.TemplateEmailVerification, "fail@example.com", "Fail", "subject", map[string]interface{}{
			"user_name": "Fail", "verify_url": "https://x", "expires_in": "24 hours",
		})
		sendErr := errors.New("mailbox unavailable")
		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(sendErr, false)
		}
		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed, got %s", job.Status)
		}
		if job.CanRetry() {
			t.Error("expected no retries left")
		}
	})
}
