package contact

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// FeedbackDraft is the user-entered feedback form.
type FeedbackDraft struct {
	Name    string
	Email   string
	Message string
}

// Validate checks required fields and the email format.
func (d FeedbackDraft) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.required("name", d.Name, maxNameLength)
	errs.email("email", d.Email)
	errs.required("message", d.Message, maxMessageLength)
	return errs
}

// Relay delivers an email through the external provider.
type Relay interface {
	Send(ctx context.Context, email Email) error
}

// SubmitterConfig configures a Submitter.
type SubmitterConfig struct {
	Credentials Credentials
	Recipient   string
	Subject     string
	Logger      *slog.Logger
}

// Submitter sends feedback drafts through a relay, one attempt per submit.
type Submitter struct {
	relay       Relay
	credentials Credentials
	recipient   string
	subject     string
	logger      *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewSubmitter builds a submitter. Empty recipient and subject take the defaults.
func NewSubmitter(relay Relay, cfg SubmitterConfig) *Submitter {
	recipient := strings.TrimSpace(cfg.Recipient)
	if recipient == "" {
		recipient = DefaultRecipient
	}
	subject := strings.TrimSpace(cfg.Subject)
	if subject == "" {
		subject = DefaultSubject
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{
		relay:       relay,
		credentials: cfg.Credentials,
		recipient:   recipient,
		subject:     subject,
		logger:      logger,
		inFlight:    make(map[string]struct{}),
	}
}

// Available reports whether submits can reach the relay.
func (s *Submitter) Available() bool {
	return s != nil && s.relay != nil && len(s.credentials.Missing()) == 0
}

// SubmitFeedback sends draft once. Missing credentials fail before any I/O,
// and a second call with an unresolved submissionID gets ErrSubmissionInFlight.
func (s *Submitter) SubmitFeedback(ctx context.Context, submissionID string, draft FeedbackDraft) error {
	if s == nil {
		return ConfigurationError{Missing: Credentials{}.Missing()}
	}
	if missing := s.credentials.Missing(); len(missing) > 0 {
		return ConfigurationError{Missing: missing}
	}
	if s.relay == nil {
		return ConfigurationError{Missing: []string{"relay"}}
	}
	if !s.acquire(submissionID) {
		return ErrSubmissionInFlight
	}
	defer s.release(submissionID)

	email := Email{
		ServiceID:  s.credentials.ServiceID,
		TemplateID: s.credentials.TemplateID,
		PublicKey:  s.credentials.PublicKey,
		Params: TemplateParams{
			FromName:  strings.TrimSpace(draft.Name),
			FromEmail: strings.TrimSpace(draft.Email),
			Message:   draft.Message,
			ToEmail:   s.recipient,
			Subject:   s.subject,
		},
	}
	if err := s.relay.Send(ctx, email); err != nil {
		s.logger.ErrorContext(ctx, "feedback delivery failed", "submission_id", submissionID, "error", err)
		return DeliveryError{Err: err}
	}
	s.logger.InfoContext(ctx, "feedback delivered", "submission_id", submissionID)
	return nil
}

func (s *Submitter) acquire(id string) bool {
	if id == "" {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *Submitter) release(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()
}

// FeedbackSubmitter is the dependency FeedbackForm submits through.
type FeedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, submissionID string, draft FeedbackDraft) error
}

// FeedbackForm is the view state of the feedback form.
type FeedbackForm struct {
	Status
	Draft FeedbackDraft
}

// Submit runs one submit attempt. On success the draft resets and the
// success window opens. On failure the draft is kept for a retry.
func (f *FeedbackForm) Submit(ctx context.Context, submissionID string, submitter FeedbackSubmitter, now func() time.Time) error {
	if errs := f.Draft.Validate(); len(errs) > 0 {
		f.Err = errs
		return errs
	}
	f.begin()
	err := submitter.SubmitFeedback(ctx, submissionID, f.Draft)
	f.finish(err, now)
	if err == nil {
		f.Draft = FeedbackDraft{}
	}
	return err
}
