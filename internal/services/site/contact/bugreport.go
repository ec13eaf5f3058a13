package contact

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// BugReportDraft is the user-entered bug report form.
type BugReportDraft struct {
	Name        string
	Email       string
	Title       string
	Description string
	Steps       string
}

// Validate checks required fields and the email format.
func (d BugReportDraft) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.required("name", d.Name, maxNameLength)
	errs.email("email", d.Email)
	errs.required("title", d.Title, maxTitleLength)
	errs.required("description", d.Description, maxMessageLength)
	errs.required("steps", d.Steps, maxMessageLength)
	return errs
}

// BugReportSink records bug reports.
type BugReportSink interface {
	Record(ctx context.Context, report BugReportDraft) error
}

// LogSink records bug reports as structured log entries. Reports are not
// delivered anywhere else.
type LogSink struct {
	Logger *slog.Logger
}

// Record logs report.
func (s LogSink) Record(ctx context.Context, report BugReportDraft) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "bug report received",
		"name", strings.TrimSpace(report.Name),
		"email", strings.TrimSpace(report.Email),
		"title", strings.TrimSpace(report.Title),
		"description", report.Description,
		"steps", report.Steps,
	)
	return nil
}

// BugReportForm is the view state of the bug report form.
type BugReportForm struct {
	Status
	Draft BugReportDraft
}

// Submit validates the draft and hands it to sink.
func (f *BugReportForm) Submit(ctx context.Context, sink BugReportSink, now func() time.Time) error {
	if errs := f.Draft.Validate(); len(errs) > 0 {
		f.Err = errs
		return errs
	}
	if sink == nil {
		sink = LogSink{}
	}
	f.begin()
	err := sink.Record(ctx, f.Draft)
	f.finish(err, now)
	if err == nil {
		f.Draft = BugReportDraft{}
	}
	return err
}
