package collab

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Status is a collaboration's position in the deal pipeline.
type Status string

const (
	StatusInbox       Status = "inbox"
	StatusNegotiating Status = "negotiating"
	StatusAccepted    Status = "accepted"
	StatusInProgress  Status = "in_progress"
	StatusDelivered   Status = "delivered"
	StatusPaid        Status = "paid"
	StatusDeclined    Status = "declined"
)

// ErrInvalidTransition is returned when a status change skips or reverses the pipeline.
var ErrInvalidTransition = errors.New("invalid status transition")

//nolint:gochecknoglobals // Pipeline definition
var transitions = map[Status][]Status{
	StatusInbox:       {StatusNegotiating, StatusAccepted, StatusDeclined},
	StatusNegotiating: {StatusAccepted, StatusDeclined},
	StatusAccepted:    {StatusInProgress, StatusDeclined},
	StatusInProgress:  {StatusDelivered},
	StatusDelivered:   {StatusPaid},
	StatusPaid:        {},
	StatusDeclined:    {},
}

// Statuses lists every status in pipeline order.
func Statuses() (statuses []Status) {
	statuses = []Status{
		StatusInbox, StatusNegotiating, StatusAccepted, StatusInProgress,
		StatusDelivered, StatusPaid, StatusDeclined,
	}
	return statuses
}

// ParseStatus accepts a status name in any case, with hyphens or underscores.
func ParseStatus(s string) (status Status, err error) {
	status = Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if _, ok := transitions[status]; !ok {
		err = errors.Errorf("unknown status %q", s)
		return status, err
	}
	return status, err
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() (terminal bool) {
	terminal = len(transitions[s]) == 0
	return terminal
}

// Transition checks that moving from one status to another follows the pipeline.
func Transition(from, to Status) (err error) {
	next, ok := transitions[from]
	if !ok {
		err = errors.Wrapf(ErrInvalidTransition, "unknown status %q", from)
		return err
	}

	for _, allowed := range next {
		if allowed == to {
			return err
		}
	}

	err = errors.Wrapf(ErrInvalidTransition, "%s -> %s", from, to)
	return err
}

// Collaboration is one brand deal tracked from first contact to payment.
type Collaboration struct {
	ID           string    `json:"id"`
	Brand        string    `json:"brand"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Offer        string    `json:"offer,omitempty"`
	Budget       float64   `json:"budget"`
	Currency     string    `json:"currency,omitempty"`
	Deliverables []string  `json:"deliverables,omitempty"`
	Deadline     string    `json:"deadline,omitempty"`
	Status       Status    `json:"status"`
	Score        int       `json:"score"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// New creates an inbox collaboration.
func New(brand, offer string, budget float64, deliverables []string, now time.Time) (c Collaboration) {
	c = Collaboration{
		Brand:        strings.TrimSpace(brand),
		Offer:        strings.TrimSpace(offer),
		Budget:       budget,
		Currency:     "USD",
		Deliverables: deliverables,
		Status:       StatusInbox,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return c
}

// Validate checks that the collaboration is well-formed.
func (c *Collaboration) Validate() (err error) {
	if strings.TrimSpace(c.Brand) == "" {
		err = errors.New("brand is required")
		return err
	}

	if _, ok := transitions[c.Status]; !ok {
		err = errors.Errorf("unknown status %q", c.Status)
		return err
	}

	if c.Budget < 0 {
		err = errors.New("budget cannot be negative")
		return err
	}

	if c.ContactEmail != "" && !strings.Contains(c.ContactEmail, "@") {
		err = errors.Errorf("invalid contact email %q", c.ContactEmail)
		return err
	}

	if c.Deadline != "" {
		_, err = time.Parse(time.DateOnly, c.Deadline)
		if err != nil {
			err = errors.Wrapf(err, "deadline must be YYYY-MM-DD, got %q", c.Deadline)
			return err
		}
	}

	return err
}

// Advance moves the collaboration to status when the pipeline allows it.
func (c *Collaboration) Advance(to Status, now time.Time) (err error) {
	err = Transition(c.Status, to)
	if err != nil {
		return err
	}

	c.Status = to
	c.UpdatedAt = now
	return err
}
