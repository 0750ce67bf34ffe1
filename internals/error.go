package internals

// This file handles an error collector obj

// ErrorCollector accumulates diagnostics across compilation stages, so the
// lexical and syntactic errors of one file report together.
type ErrorCollector struct {
	Errors []error
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		Errors: make([]error, 0),
	}
}

func (ec *ErrorCollector) Add(err error) {
	ec.Errors = append(ec.Errors, err)
}

func (ec *ErrorCollector) AddAll(errs []error) {
	ec.Errors = append(ec.Errors, errs...)
}

func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.Errors) > 0
}
