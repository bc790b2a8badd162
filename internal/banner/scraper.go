package banner

import (
	"context"
	"fmt"

	"coursegraph/internal/assert"
	"coursegraph/internal/graph"
	"coursegraph/internal/telemetry"
)

const (
	report_scraper_term_form   = "scraper.term-form"
	report_scraper_search_form = "scraper.search-form"
	report_scraper_search      = "scraper.search"
)

// Endpoints are the pages the scraper starts from. The search form and the
// search itself are normally submitted to the action of the form before them,
// these are only used when that action is empty.
type Endpoints struct {
	TermForm   string `json:"term_form"`
	SearchForm string `json:"search_form"`
	Search     string `json:"search"`
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		TermForm:   "NEUCLSS.p_disp_dyn_sched",
		SearchForm: "NEUCLSS.p_class_select",
		Search:     "NEUCLSS.p_class_search",
	}
}

// Scraper drives a banner instance through term selection, the class search
// form and the search itself. Each step depends on the page fetched by the
// previous one, so every call is sequential.
type Scraper struct {
	submitter Submitter
	endpoints Endpoints
	extractor Extractor
	tel       telemetry.API
}

func NewScraper(submitter Submitter, endpoints Endpoints, tel telemetry.API) Scraper {
	assert.NotNil(submitter)
	assert.NotNil(tel)

	return Scraper{
		submitter: submitter,
		endpoints: endpoints,
		extractor: NewExtractor(tel),
		tel:       telemetry.NewScopedAPI("banner", tel),
	}
}

func (s Scraper) fetchForm(ctx context.Context, reportId, endpoint string, method Method, params Params) (Form, error) {
	page, err := s.submitter.Submit(ctx, endpoint, method, params)
	if err != nil {
		s.tel.ReportBroken(reportId, fmt.Errorf("fetch: %w", err), endpoint)
		return Form{}, err
	}
	form, err := ParseForm(page)
	if err != nil {
		s.tel.ReportBroken(reportId, fmt.Errorf("discover form: %w", err), endpoint)
		return Form{}, err
	}
	s.tel.ReportDebug("discovered form", form.Title, form.Action, form.Method, len(form.fields))
	return form, nil
}

// TermForm fetches the term selection form, its STU_TERM_IN select maps term
// codes to term names.
func (s Scraper) TermForm(ctx context.Context) (Form, error) {
	return s.fetchForm(ctx, report_scraper_term_form, s.endpoints.TermForm, MethodGet, nil)
}

// TermCode resolves a term given either by code or by its display name.
func (s Scraper) TermCode(termForm Form, term string) (string, error) {
	return termForm.ResolveCode(FieldTerm, term)
}

// SearchForm submits the term form for a term and returns the class search
// form it leads to.
func (s Scraper) SearchForm(ctx context.Context, termForm Form, termCode string) (Form, error) {
	endpoint, method := termForm.Action, termForm.Method
	if endpoint == "" {
		endpoint, method = s.endpoints.SearchForm, MethodPost
	}
	return s.fetchForm(ctx, report_scraper_search_form, endpoint, method, Params{
		{Name: FieldTerm, Value: termCode},
	})
}

// Search validates the filters against the search form, submits the search
// and extracts the requisite graph of the results. Invalid filters fail
// before any request is made.
func (s Scraper) Search(ctx context.Context, searchForm Form, termCode string, filters Filters) (*graph.Graph, error) {
	params, err := BuildSearchParams(searchForm, termCode, filters)
	if err != nil {
		return nil, err
	}

	endpoint, method := searchForm.Action, searchForm.Method
	if endpoint == "" {
		endpoint, method = s.endpoints.Search, MethodPost
	}
	page, err := s.submitter.Submit(ctx, endpoint, method, params)
	if err != nil {
		s.tel.ReportBroken(report_scraper_search, fmt.Errorf("fetch: %w", err), endpoint)
		return nil, err
	}
	return s.extractor.ParseResults(ctx, page)
}

// Request is a search as a user phrases it: the term and instructors by name,
// levels and subjects by code.
type Request struct {
	Term        string
	Levels      []string
	Instructors []string
	Subjects    []string
	Course      string
}

// Filters resolves the request against the search form.
func (r Request) Filters(searchForm Form) (Filters, error) {
	filters := Filters{
		Levels:       r.Levels,
		Subjects:     r.Subjects,
		CourseNumber: r.Course,
	}
	for _, name := range r.Instructors {
		code, err := searchForm.CodeForLabel(FieldInstructor, name)
		if err != nil {
			return Filters{}, err
		}
		filters.Instructors = append(filters.Instructors, code)
	}
	return filters, nil
}

// Run performs a whole search: term form, search form, search.
func (s Scraper) Run(ctx context.Context, req Request) (*graph.Graph, error) {
	termForm, err := s.TermForm(ctx)
	if err != nil {
		return nil, err
	}
	termCode, err := s.TermCode(termForm, req.Term)
	if err != nil {
		return nil, err
	}

	searchForm, err := s.SearchForm(ctx, termForm, termCode)
	if err != nil {
		return nil, err
	}
	filters, err := req.Filters(searchForm)
	if err != nil {
		return nil, err
	}

	return s.Search(ctx, searchForm, termCode, filters)
}
