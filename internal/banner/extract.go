package banner

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"coursegraph/internal/assert"
	"coursegraph/internal/graph"
	"coursegraph/internal/telemetry"
	"coursegraph/lib/htmlutil"
	"coursegraph/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_extract_heading    = "extract.heading"
	report_extract_requisite  = "extract.requisite"
	report_extract_courses    = "extract.courses"
	report_extract_requisites = "extract.requisites"
)

const (
	resultsContainerSelector = "div.pagebodydiv"
	headingSelector          = "th.ddtitle"
	headingSegmentSeparator  = " - "
	labelSelector            = "span.fieldlabeltext, b, strong, th"
)

var (
	prerequisiteMatcher = textutil.NormalizeName("prerequisite")
	corequisiteMatcher  = textutil.NormalizeName("corequisite")
	requisiteMatchers   = []string{prerequisiteMatcher, corequisiteMatcher}
)

// courseRefRegex matches "CS 2500", "cs2500" or "EECE 2160L".
var courseRefRegex = regexp.MustCompile(`^([A-Za-z]{2,5})\s*(\d{1,5}[A-Za-z]{0,2})$`)

var crnRegex = regexp.MustCompile(`^\d{4,6}$`)

// parseCourseRef returns the canonical id of a course reference or false if
// the text does not look like one.
func parseCourseRef(text string) (string, bool) {
	groups := courseRefRegex.FindStringSubmatch(htmlutil.NormalizeText(text))
	if groups == nil {
		return "", false
	}
	return graph.CanonicalID(groups[1], groups[2]), true
}

type heading struct {
	id    string
	title string
}

// parseHeading understands both the layout of banner's class search
// ("Title - CRN - SUBJ NUM - SECTION") and the short catalog layout
// ("SUBJ NUM - Title"). A course reference right after a CRN wins over any
// earlier segment, titles like "Calc 1" look like course references too.
func parseHeading(text string) (heading, bool) {
	segments := strings.Split(htmlutil.NormalizeText(text), headingSegmentSeparator)
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	for i := 1; i < len(segments); i++ {
		if !crnRegex.MatchString(segments[i-1]) {
			continue
		}
		id, ok := parseCourseRef(segments[i])
		if !ok {
			continue
		}
		return heading{id: id, title: strings.Join(segments[:i-1], headingSegmentSeparator)}, true
	}

	for i, segment := range segments {
		id, ok := parseCourseRef(segment)
		if !ok {
			continue
		}
		if i == 0 {
			return heading{id: id, title: strings.Join(segments[1:], headingSegmentSeparator)}, true
		}
		return heading{id: id, title: strings.Join(segments[:i], headingSegmentSeparator)}, true
	}

	return heading{}, false
}

// Extractor turns a class search results page into a requisite graph.
type Extractor struct {
	tel telemetry.API
}

func NewExtractor(tel telemetry.API) Extractor {
	assert.NotNil(tel)
	return Extractor{tel: telemetry.NewScopedAPI("extractor", tel)}
}

// ParseResults is Extract over a raw html page.
func (e Extractor) ParseResults(ctx context.Context, page []byte) (*graph.Graph, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(page))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return e.Extract(ctx, doc)
}

// Extract builds the graph of every course listed on the page and the courses
// they require. Malformed headings and links are reported and skipped, only a
// page that is not a banner page at all is an error.
func (e Extractor) Extract(ctx context.Context, doc *goquery.Document) (*graph.Graph, error) {
	if doc.Find(resultsContainerSelector).Length() == 0 {
		return nil, &StructureError{
			Page:   htmlutil.Text(doc.Find("title").First()),
			Reason: "missing results container div.pagebodydiv",
		}
	}

	g := graph.New()
	doc.Find(headingSelector).Each(func(_ int, th *goquery.Selection) {
		e.extractCourse(ctx, g, th)
	})

	e.tel.ReportCount(report_extract_courses, int64(g.Len()))
	e.tel.ReportCount(report_extract_requisites, int64(g.EdgeCount()))
	return g, nil
}

func (e Extractor) extractCourse(ctx context.Context, g *graph.Graph, th *goquery.Selection) {
	text := htmlutil.Text(th)
	if anchor := th.Find("a").First(); anchor.Length() > 0 {
		text = htmlutil.Text(anchor)
	}
	h, ok := parseHeading(text)
	if !ok {
		e.tel.ReportWarning(report_extract_heading, fmt.Errorf("no course id in heading"), text)
		return
	}
	g.AddCourse(h.id, graph.CourseLabel(h.id, h.title))

	row := th.Closest("tr")
	if row.Length() == 0 {
		return
	}
	for _, detail := range detailRows(row) {
		e.extractRequisites(ctx, g, h.id, detail)
	}
}

// detailRows returns the rows following a heading row up to the next heading.
func detailRows(headingRow *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	for next := headingRow.Next(); next.Length() > 0; next = next.Next() {
		if next.Find(headingSelector).Length() > 0 {
			break
		}
		if goquery.NodeName(next) != "tr" {
			continue
		}
		rows = append(rows, next)
	}
	return rows
}

// isLabel reports whether an element is a field label, bold text only counts
// when it reads like one ("Prerequisites:") so "<b>and</b>" between links does not.
func isLabel(sel *goquery.Selection) bool {
	if sel.Is("span.fieldlabeltext, th") {
		return true
	}
	return sel.Is(labelSelector) && strings.HasSuffix(htmlutil.Text(sel), ":")
}

// extractRequisites looks for prerequisite/corequisite labels anywhere in a
// detail row (labels are often wrapped in a div, p or font inside the cell)
// and links each course linked after a label to the current course. The row
// is searched once so labels in nested cells are only seen once.
func (e Extractor) extractRequisites(ctx context.Context, g *graph.Graph, course string, row *goquery.Selection) {
	row.Find(labelSelector).Each(func(_ int, label *goquery.Selection) {
		// bold text wrapping the links is formatting, the label is inside it
		if label.Find("a").Length() > 0 {
			return
		}
		matched, ok := textutil.MatchingName(label.Text(), requisiteMatchers)
		if !ok {
			return
		}
		kind := graph.KindPrerequisite
		if matched == corequisiteMatcher {
			kind = graph.KindCorequisite
		}

		for _, anchor := range htmlutil.GetAnchors(ctx, requisiteLinks(label)) {
			id, ok := parseCourseRef(anchor.Name)
			if !ok {
				e.tel.ReportWarning(report_extract_requisite, fmt.Errorf("link is not a course"), course, anchor.Name)
				continue
			}
			if id == course {
				continue
			}
			g.AddRequisite(id, course, kind)
		}
	})
}

// requisiteLinks collects the links among (or inside) the siblings following
// a label, stopping at the next label.
func requisiteLinks(label *goquery.Selection) *goquery.Selection {
	links := label.Slice(0, 0)
	for next := label.Next(); next.Length() > 0; next = next.Next() {
		if isLabel(next) {
			break
		}
		if next.Is("a") {
			links = links.AddSelection(next)
			continue
		}
		links = links.AddSelection(next.Find("a"))
	}
	return links
}
