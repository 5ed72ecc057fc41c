package person

// Collector gathers per-token errors so a whole batch can be reported at
// once. With FailFast set, Add returns the first error immediately instead.
type Collector struct {
	FailFast bool
	errs     []error
}

// Add records an error. In fail-fast mode it returns the error; otherwise
// it returns nil and the error is reported later by Err.
func (c *Collector) Add(err error) error {
	if err == nil {
		return nil
	}
	if c.FailFast {
		return err
	}
	c.errs = append(c.errs, err)
	return nil
}

// Err returns the collected errors as a single BatchError, or nil if the
// batch was clean.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &BatchError{Errors: c.errs}
}
