package banner

import (
	"context"
	"errors"
	"testing"

	"coursegraph/internal/graph"
	"coursegraph/internal/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseHeading(t *testing.T) {
	testCases := []struct {
		text     string
		expected heading
		ok       bool
	}{
		{
			text:     "Algorithms And Data - 10001 - CS 3000 - 01",
			expected: heading{id: "CS_3000", title: "Algorithms And Data"},
			ok:       true,
		},
		{
			text:     "CS 3000 - Algorithms",
			expected: heading{id: "CS_3000", title: "Algorithms"},
			ok:       true,
		},
		{
			text:     "Lab for CS 2510 - 10011 - CS 2511 - 01",
			expected: heading{id: "CS_2511", title: "Lab for CS 2510"},
			ok:       true,
		},
		{
			text:     "Circuits - Lab - 10300 - EECE 2160L - 03",
			expected: heading{id: "EECE_2160L", title: "Circuits - Lab"},
			ok:       true,
		},
		{
			text:     "Calc 1 - 12345 - MATH 1341 - 01",
			expected: heading{id: "MATH_1341", title: "Calc 1"},
			ok:       true,
		},
		{
			text:     "Lab 2 - 20001 - PHYS 1152 - 01",
			expected: heading{id: "PHYS_1152", title: "Lab 2"},
			ok:       true,
		},
		{
			text: "Sections Found",
			ok:   false,
		},
	}

	for _, test := range testCases {
		h, ok := parseHeading(test.text)
		require.Equal(t, test.ok, ok, test.text)
		require.Equal(t, test.expected, h, test.text)
	}
}

func TestParseCourseRef(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
		ok       bool
	}{
		{text: "CS 2500", expected: "CS_2500", ok: true},
		{text: "cs2500", expected: "CS_2500", ok: true},
		{text: " MATH 1341 ", expected: "MATH_1341", ok: true},
		{text: "Sophomore", ok: false},
		{text: "CS 2500 or CS 2510", ok: false},
	}

	for _, test := range testCases {
		id, ok := parseCourseRef(test.text)
		require.Equal(t, test.ok, ok, test.text)
		require.Equal(t, test.expected, id, test.text)
	}
}

func TestExtractResults(t *testing.T) {
	tel := &telemetry.Recorder{}
	g, err := NewExtractor(tel).ParseResults(context.Background(), []byte(resultsPage))
	require.NoError(t, err)

	diff := cmp.Diff([]graph.Node{
		{ID: "CS_1800", Label: "CS_1800", Stub: true},
		{ID: "CS_2500", Label: "CS_2500", Stub: true},
		{ID: "CS_2510", Label: "CS_2510\nFundamentals of Computer Science 2"},
		{ID: "CS_2511", Label: "CS_2511\nLab for CS 2510"},
		{ID: "CS_3000", Label: "CS_3000\nAlgorithms And Data"},
	}, g.Nodes())
	if diff != "" {
		t.Fatal(diff)
	}

	// CS 3000 is listed twice and requires CS 2510 in both sections
	diff = cmp.Diff([]graph.Edge{
		{From: "CS_1800", To: "CS_3000", Kind: graph.KindPrerequisite},
		{From: "CS_2500", To: "CS_2510", Kind: graph.KindPrerequisite},
		{From: "CS_2510", To: "CS_2511", Kind: graph.KindCorequisite},
		{From: "CS_2510", To: "CS_3000", Kind: graph.KindPrerequisite},
		{From: "CS_2511", To: "CS_2510", Kind: graph.KindCorequisite},
	}, g.Edges())
	if diff != "" {
		t.Fatal(diff)
	}

	require.Empty(t, tel.Reports(telemetry.KindWarning))
	require.Empty(t, tel.Reports(telemetry.KindBroken))
}

func TestExtractDeterministic(t *testing.T) {
	extractor := NewExtractor(&telemetry.Recorder{})

	first, err := extractor.ParseResults(context.Background(), []byte(resultsPage))
	require.NoError(t, err)
	second, err := extractor.ParseResults(context.Background(), []byte(resultsPage))
	require.NoError(t, err)

	require.Equal(t, first.Nodes(), second.Nodes())
	require.Equal(t, first.Edges(), second.Edges())
}

func TestExtractStubFromShortHeading(t *testing.T) {
	page := `<html><body><div class="pagebodydiv"><table>
		<tr><th class="ddtitle"><a href="/x">CS 3000 - Algorithms</a></th></tr>
		<tr><td class="dddefault">
			<span class="fieldlabeltext">Prerequisites:</span>
			<a href="/c?crse=2500">CS 2500</a>
		</td></tr>
	</table></div></body></html>`

	g, err := NewExtractor(&telemetry.Recorder{}).ParseResults(context.Background(), []byte(page))
	require.NoError(t, err)

	diff := cmp.Diff([]graph.Node{
		{ID: "CS_2500", Label: "CS_2500", Stub: true},
		{ID: "CS_3000", Label: "CS_3000\nAlgorithms"},
	}, g.Nodes())
	if diff != "" {
		t.Fatal(diff)
	}
	require.Equal(t, []graph.Edge{
		{From: "CS_2500", To: "CS_3000", Kind: graph.KindPrerequisite},
	}, g.Edges())
}

func TestExtractBoldLabels(t *testing.T) {
	page := `<div class="pagebodydiv"><table>
		<tr><th class="ddtitle">MATH 2331 - Linear Algebra</th></tr>
		<tr><td>
			<b>Prerequisites:</b> <a href="/1">MATH 1342</a> or <a href="/2">MATH 1252</a>
			<b>Corequisites:</b> <a href="/3">MATH 2321</a>
			<b>Attributes:</b> <a href="/4">NUpath Formal</a>
		</td></tr>
	</table></div>`

	tel := &telemetry.Recorder{}
	g, err := NewExtractor(tel).ParseResults(context.Background(), []byte(page))
	require.NoError(t, err)

	require.Equal(t, []graph.Edge{
		{From: "MATH_1252", To: "MATH_2331", Kind: graph.KindPrerequisite},
		{From: "MATH_1342", To: "MATH_2331", Kind: graph.KindPrerequisite},
		{From: "MATH_2321", To: "MATH_2331", Kind: graph.KindCorequisite},
	}, g.Edges())
	require.Empty(t, tel.Reports(telemetry.KindWarning))
}

func TestExtractEmptyResults(t *testing.T) {
	tel := &telemetry.Recorder{}
	g, err := NewExtractor(tel).ParseResults(context.Background(), []byte(emptyResultsPage))
	require.NoError(t, err)
	require.Equal(t, 0, g.Len())
	require.Equal(t, 0, g.EdgeCount())

	counts := tel.Reports(telemetry.KindCount)
	require.Len(t, counts, 2)
	require.Equal(t, []any{int64(0)}, counts[0].Params)
}

func TestExtractStructureError(t *testing.T) {
	_, err := NewExtractor(&telemetry.Recorder{}).ParseResults(context.Background(), []byte(notBannerPage))

	var structErr *StructureError
	require.True(t, errors.As(err, &structErr))
	require.Equal(t, "Maintenance", structErr.Page)
}

func TestExtractReportsMalformed(t *testing.T) {
	page := `<div class="pagebodydiv"><table>
		<tr><th class="ddtitle">Special Topics - 10100</th></tr>
		<tr><td><span class="fieldlabeltext">Prerequisites:</span><a href="/1">CS 1000</a></td></tr>
		<tr><th class="ddtitle">CS 4500 - Software Development</th></tr>
		<tr><td>
			<span class="fieldlabeltext">Prerequisites:</span>
			<a href="/1">CS 3500</a> and <a href="/2">Junior standing</a> and <a href="/3">CS 4500</a>
		</td></tr>
	</table></div>`

	tel := &telemetry.Recorder{}
	g, err := NewExtractor(tel).ParseResults(context.Background(), []byte(page))
	require.NoError(t, err)

	// the course with no id is skipped along with its details, the self
	// reference is dropped
	require.Equal(t, []graph.Edge{
		{From: "CS_3500", To: "CS_4500", Kind: graph.KindPrerequisite},
	}, g.Edges())

	warnings := tel.Reports(telemetry.KindWarning)
	require.Len(t, warnings, 2)
	require.Equal(t, "extractor: "+report_extract_heading, warnings[0].ID)
	require.Equal(t, "extractor: "+report_extract_requisite, warnings[1].ID)
	require.Contains(t, warnings[1].Params, "Junior standing")
}

func TestExtractShortTitleHeadings(t *testing.T) {
	page := `<div class="pagebodydiv"><table>
		<tr><th class="ddtitle"><a href="/1">Calc 1 - 12345 - MATH 1341 - 01</a></th></tr>
		<tr><td><span class="fieldlabeltext">Prerequisites:</span><a href="/p">MATH 1215</a></td></tr>
		<tr><th class="ddtitle"><a href="/2">Calc 1 - 12346 - MATH 1241 - 01</a></th></tr>
		<tr><td><span class="fieldlabeltext">Prerequisites:</span><a href="/p">MATH 1215</a></td></tr>
	</table></div>`

	g, err := NewExtractor(&telemetry.Recorder{}).ParseResults(context.Background(), []byte(page))
	require.NoError(t, err)

	// same title, different courses
	diff := cmp.Diff([]graph.Node{
		{ID: "MATH_1215", Label: "MATH_1215", Stub: true},
		{ID: "MATH_1241", Label: "MATH_1241\nCalc 1"},
		{ID: "MATH_1341", Label: "MATH_1341\nCalc 1"},
	}, g.Nodes())
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractWrappedLabels(t *testing.T) {
	testCases := []struct {
		name string
		cell string
	}{
		{
			name: "div",
			cell: `<div><span class="fieldlabeltext">Prerequisites:</span> <a href="/1">CS 2500</a></div>`,
		},
		{
			name: "paragraph and font",
			cell: `<p><font size="2"><b>Prerequisite:</b> <a href="/1">CS 2500</a></font></p>`,
		},
		{
			name: "bold around label and links",
			cell: `<strong><span class="fieldlabeltext">Prerequisites:</span> <a href="/1">CS 2500</a></strong>`,
		},
		{
			name: "nested table",
			cell: `<table><tr><td><span class="fieldlabeltext">Prerequisites:</span> <a href="/1">CS 2500</a></td></tr></table>`,
		},
	}

	for _, test := range testCases {
		page := `<div class="pagebodydiv"><table>
			<tr><th class="ddtitle">CS 3000 - Algorithms</th></tr>
			<tr><td>` + test.cell + `</td></tr>
		</table></div>`

		g, err := NewExtractor(&telemetry.Recorder{}).ParseResults(context.Background(), []byte(page))
		require.NoError(t, err, test.name)

		diff := cmp.Diff([]graph.Node{
			{ID: "CS_2500", Label: "CS_2500", Stub: true},
			{ID: "CS_3000", Label: "CS_3000\nAlgorithms"},
		}, g.Nodes())
		if diff != "" {
			t.Fatal(test.name, diff)
		}
		require.Equal(t, []graph.Edge{
			{From: "CS_2500", To: "CS_3000", Kind: graph.KindPrerequisite},
		}, g.Edges(), test.name)
	}
}

func TestExtractNestedLabelSeenOnce(t *testing.T) {
	page := `<div class="pagebodydiv"><table>
		<tr><th class="ddtitle">CS 3000 - Algorithms</th></tr>
		<tr><td>
			<table><tr><td>
				<span class="fieldlabeltext">Prerequisites:</span>
				<a href="/1">CS 2500</a> and <a href="/2">Instructor permission</a>
			</td></tr></table>
		</td></tr>
	</table></div>`

	tel := &telemetry.Recorder{}
	_, err := NewExtractor(tel).ParseResults(context.Background(), []byte(page))
	require.NoError(t, err)

	warnings := tel.Reports(telemetry.KindWarning)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Params, "Instructor permission")
}

func TestExtractRepeatedRequisiteInOneCourse(t *testing.T) {
	page := `<div class="pagebodydiv"><table>
		<tr><th class="ddtitle">Algorithms - 10001 - CS 3000 - 01</th></tr>
		<tr><td>
			<span class="fieldlabeltext">Prerequisites:</span>
			<a href="/1">CS 2500</a> or <a href="/1">CS 2500</a>
		</td></tr>
		<tr><td>
			<span class="fieldlabeltext">Corequisites:</span>
			<a href="/1">CS 2500</a>
		</td></tr>
		<tr><td>
			<span class="fieldlabeltext">Prerequisites:</span>
			<a href="/1">CS 2500</a>
		</td></tr>
	</table></div>`

	g, err := NewExtractor(&telemetry.Recorder{}).ParseResults(context.Background(), []byte(page))
	require.NoError(t, err)

	// one edge, with the kind first seen
	require.Equal(t, []graph.Edge{
		{From: "CS_2500", To: "CS_3000", Kind: graph.KindPrerequisite},
	}, g.Edges())
	require.Equal(t, 2, g.Len())
}
