package telemetry

import (
	"fmt"
)

// API is what every component reports through, it is satisfied by SlogAPI
// in the CLI and by Recorder in tests.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a component that failed and could not do its job.
	//
	// `id` names the component, not the line that failed: a failed fetch of
	// the term form is `scraper.term-form`, that it was HTTP that failed goes
	// in a param or in an error wrapped with fmt.Errorf. Ids are lowercase,
	// dots separate a component from its step and dashes join words.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something skipped or unexpected that did not
	// stop the component, like a course heading with no course id in it.
	ReportWarning(id string, params ...any)

	// ReportDebug is only logged with --verbose.
	ReportDebug(msg string, params ...any)

	// ReportCount reports how many of something a single run produced, the
	// values are samples and are never summed.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a namespace ("extractor: extract.heading").
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scope(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scope(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scope(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scope(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scope(id), count)
}
