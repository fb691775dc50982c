// Package overlay models the lead-capture modal of the landing page.
//
// The modal is a small finite-state machine:
//
//	Closed -> Idle        first scroll past the threshold, or the #ai-overlay fragment
//	Idle|Error -> Submitting   form submitted with both fields filled
//	Submitting -> Submitted    intake accepted the request
//	Submitting -> Error        intake rejected the request or could not be reached
//	any open state -> Closed   dismissed; the #ai-overlay fragment is cleared
//
// A Machine is driven by one event at a time and is not safe for concurrent use.
package overlay

import (
	"context"
	"errors"
	"triggerby_web/models"
)

// Fragment is the in-page anchor that opens the overlay
const Fragment = "ai-overlay"

// ScrollThreshold is the vertical scroll offset, in pixels, that auto-opens the overlay
const ScrollThreshold = 100

// RetryMessage is the only error text shown to the user on a failed submission
const RetryMessage = "Something went wrong. Please try again."

// State of the overlay
type State int

const (
	Closed State = iota
	Idle
	Submitting
	Submitted
	Error
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Idle:
		return "open/idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Error:
		return "open/error"
	default:
		return "unknown"
	}
}

// IsOpen reports whether the modal is visible in this state
func (s State) IsOpen() bool {
	return s != Closed
}

var (
	ErrNotEditable    = errors.New("overlay form is not editable in the current state")
	ErrFieldsRequired = errors.New("email and store URL are required")
	ErrNotSubmitting  = errors.New("no submission in flight")
)

// Submitter performs the single intake call of a submission attempt
type Submitter interface {
	RequestAudit(ctx context.Context, req models.AuditRequest) (*models.AuditResponse, error)
}

// View is the render model of the overlay panel
type View struct {
	State State
	Email string
	URL   string
	Error string
}

// Machine holds the local UI state of one overlay instance
type Machine struct {
	state      State
	email      string
	url        string
	errMsg     string
	submitted  bool
	autoOpened bool
	fragment   string
}

// New returns a closed overlay
func New() *Machine {
	return &Machine{state: Closed}
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// Fragment returns the current URL fragment as tracked by the overlay, without '#'
func (m *Machine) Fragment() string {
	return m.fragment
}

// View returns the render model for the current state
func (m *Machine) View() View {
	return View{
		State: m.state,
		Email: m.email,
		URL:   m.url,
		Error: m.errMsg,
	}
}

// Open shows the overlay. Opening an already open overlay is a no-op.
// A reopened overlay shows what it showed when it was dismissed: the
// confirmation after a successful submission, otherwise the form with any
// previous error.
func (m *Machine) Open() bool {
	if m.state.IsOpen() {
		return false
	}
	switch {
	case m.submitted:
		m.state = Submitted
	case m.errMsg != "":
		m.state = Error
	default:
		m.state = Idle
	}
	return true
}

// Load handles the fragment present when the page is loaded
func (m *Machine) Load(fragment string) bool {
	return m.HashChanged(fragment)
}

// HashChanged handles navigation to a new fragment. It opens the overlay
// when the fragment is #ai-overlay.
func (m *Machine) HashChanged(fragment string) bool {
	m.fragment = trimHash(fragment)
	if m.fragment != Fragment {
		return false
	}
	return m.Open()
}

// Scroll handles a scroll event at vertical offset y. Only the first
// crossing of the threshold in the page lifetime opens the overlay.
func (m *Machine) Scroll(y int) bool {
	if m.autoOpened || y <= ScrollThreshold {
		return false
	}
	m.autoOpened = true
	return m.Open()
}

// Edit updates the form fields. Fields are editable while the form is shown.
func (m *Machine) Edit(email, url string) error {
	if m.state != Idle && m.state != Error {
		return ErrNotEditable
	}
	m.email = email
	m.url = url
	return nil
}

// Begin moves to Submitting and returns the request to send.
// Both fields must be filled, as the form inputs require.
func (m *Machine) Begin() (models.AuditRequest, error) {
	if m.state != Idle && m.state != Error {
		return models.AuditRequest{}, ErrNotEditable
	}
	if m.email == "" || m.url == "" {
		return models.AuditRequest{}, ErrFieldsRequired
	}
	m.state = Submitting
	m.errMsg = ""
	return models.AuditRequest{Email: m.email, URL: m.url}, nil
}

// Resolve applies the outcome of the in-flight call. The outcome is ignored
// when the overlay was dismissed while the call was pending.
func (m *Machine) Resolve(resp *models.AuditResponse, err error) error {
	if m.state != Submitting {
		return ErrNotSubmitting
	}
	if err != nil || resp == nil || !resp.OK {
		m.state = Error
		m.errMsg = RetryMessage
		return nil
	}
	m.state = Submitted
	m.submitted = true
	return nil
}

// Submit runs one submission attempt: exactly one call to s, no retries.
func (m *Machine) Submit(ctx context.Context, s Submitter) error {
	req, err := m.Begin()
	if err != nil {
		return err
	}
	resp, err := s.RequestAudit(ctx, req)
	return m.Resolve(resp, err)
}

// Dismiss closes the overlay and returns the fragment the address bar should
// show afterwards. The #ai-overlay fragment is cleared so a fresh trigger is
// needed to reopen.
func (m *Machine) Dismiss() string {
	m.state = Closed
	if m.fragment == Fragment {
		m.fragment = ""
	}
	return m.fragment
}

func trimHash(fragment string) string {
	if len(fragment) > 0 && fragment[0] == '#' {
		return fragment[1:]
	}
	return fragment
}
