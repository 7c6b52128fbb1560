package tui

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver. The default talks to the
// terminal through survey.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithPageSize sets the page size for choice prompts.
func WithPageSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithMaxAttempts bounds how many times an invalid answer is re-prompted
// before the session gives up on the field. Zero keeps asking.
func WithMaxAttempts(attempts int) Option {
	return func(s *Session) {
		if attempts >= 0 {
			s.maxAttempts = attempts
		}
	}
}
