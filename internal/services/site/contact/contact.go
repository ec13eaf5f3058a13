// Package contact owns the about-page contact flows: feedback relayed by email
// and bug reports recorded by a local sink.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultRecipient receives every feedback email.
	DefaultRecipient = "kathou.trg@gmail.com"
	// DefaultSubject is the fixed feedback email subject.
	DefaultSubject = "Nouveau Feedback - TFT Rival Bot"
	// SuccessDisplayDuration is how long a success notice stays visible.
	SuccessDisplayDuration = 3 * time.Second
)

// ErrSubmissionInFlight reports a duplicate submit of an unresolved submission.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// ConfigurationError reports missing relay credentials. Nothing was sent.
type ConfigurationError struct {
	Missing []string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("email relay is not configured: missing %s", strings.Join(e.Missing, ", "))
}

// DeliveryError reports a relay call that failed or was rejected.
type DeliveryError struct {
	Err error
}

func (e DeliveryError) Error() string {
	if e.Err == nil {
		return "deliver feedback"
	}
	return "deliver feedback: " + e.Err.Error()
}

func (e DeliveryError) Unwrap() error {
	return e.Err
}

// Credentials identify the relay service, template and account.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Missing lists the names of the empty credentials.
func (c Credentials) Missing() []string {
	var missing []string
	if strings.TrimSpace(c.ServiceID) == "" {
		missing = append(missing, "service_id")
	}
	if strings.TrimSpace(c.TemplateID) == "" {
		missing = append(missing, "template_id")
	}
	if strings.TrimSpace(c.PublicKey) == "" {
		missing = append(missing, "public_key")
	}
	return missing
}

// TemplateParams are the variables the relay template expands.
type TemplateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
	ToEmail   string `json:"to_email"`
	Subject   string `json:"subject"`
}

// Email is one relay request.
type Email struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Params     TemplateParams
}
