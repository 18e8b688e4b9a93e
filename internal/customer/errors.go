package customer

import "fmt"

// NotFoundError reports a customer identifier absent from a population.
// It is returned by Population.IndexOf and propagated, never recovered
// internally.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("customer %q not found in population", e.Name)
}

// MalformedRecordError reports a record missing a required field or carrying
// a value outside its categorical domain. Surfaced immediately at ingestion;
// downstream scoring indexes these fields directly and never re-validates.
type MalformedRecordError struct {
	Name   string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	name := e.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("malformed customer record %s: field %q %s", name, e.Field, e.Reason)
}
