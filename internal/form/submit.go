package form

import "github.com/zenith-academy/intake/internal/models"

// Creator is the capability the submitter needs from the backend; the HTTP
// implementation lives in internal/api, tests substitute a double.
type Creator interface {
	CreateClient(d *Draft) (*models.Client, error)
}

// Status tags a submission outcome.
type Status string

const (
	Rejected Status = "rejected" // validation failed, transport never called
	Created  Status = "created"  // backend accepted, Record is the echo
	Failed   Status = "failed"   // transport/backend failure, Message set
)

// Outcome is the result of one submission attempt.
type Outcome struct {
	Status  Status
	Errors  ErrorMap       // set when Rejected
	Record  *models.Client // set when Created
	Message string         // set when Failed
}

// Submitter sequences validate → create → map result. It never mutates the
// draft and never retries.
type Submitter struct {
	creator Creator
	busy    bool
}

func NewSubmitter(c Creator) *Submitter {
	return &Submitter{creator: c}
}

// Busy reports whether a submission is outstanding. The caller must not
// start a second Submit while it is true.
func (s *Submitter) Busy() bool { return s.busy }

// Submit validates the draft as it stands right now; on any validation error
// the transport is not invoked. Transport failures are normalized into the
// outcome so callers never handle raw errors.
func (s *Submitter) Submit(d *Draft) Outcome {
	s.busy = true
	defer func() { s.busy = false }()

	if errs := ValidateDraft(d); len(errs) > 0 {
		return Outcome{Status: Rejected, Errors: errs}
	}

	record, err := s.creator.CreateClient(d)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Error al crear el cliente"
		}
		return Outcome{Status: Failed, Message: msg}
	}

	return Outcome{Status: Created, Record: record}
}
