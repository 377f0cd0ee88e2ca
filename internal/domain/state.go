package domain

// GenerationState tracks one submission of one operation: in flight, then
// settled with either a result or an error message. A fresh state is created
// per submission and is never shared between operations.
type GenerationState struct {
	loading bool
	started bool
	settled bool
	errMsg  string
	result  Result
}

// NewGenerationState returns an idle state.
func NewGenerationState() *GenerationState {
	return &GenerationState{}
}

// Begin marks the submission as in flight and clears any previous outcome.
func (s *GenerationState) Begin() {
	s.loading = true
	s.started = true
	s.settled = false
	s.errMsg = ""
	s.result = Result{}
}

// Succeed settles the state with r.
func (s *GenerationState) Succeed(r Result) error {
	if err := s.settle(); err != nil {
		return err
	}
	s.result = r
	return nil
}

// Fail settles the state with a user-facing error message.
func (s *GenerationState) Fail(message string) error {
	if err := s.settle(); err != nil {
		return err
	}
	s.errMsg = message
	return nil
}

func (s *GenerationState) settle() error {
	if !s.started {
		return ErrStateNotStarted
	}
	if s.settled {
		return ErrStateSettled
	}
	s.loading = false
	s.settled = true
	return nil
}

// Loading reports whether the submission is in flight.
func (s *GenerationState) Loading() bool { return s.loading }

// Err returns the error message, empty when the submission did not fail.
func (s *GenerationState) Err() string { return s.errMsg }

// Failed reports whether the state settled with an error.
func (s *GenerationState) Failed() bool { return s.settled && s.errMsg != "" }

// Result returns the settled result; ResultNone while loading or after a failure.
func (s *GenerationState) Result() Result { return s.result }
