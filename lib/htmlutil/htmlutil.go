package htmlutil

import (
	"bytes"
	"context"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("coursegraph.lib.htmlutil")

// GetText returns the concatenated text of every text node under `node`.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// NormalizeText collapses every run of whitespace (including &nbsp;) into a
// single space, drops non-printable characters and trims the result.
func NormalizeText(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// Text is NormalizeText applied to the text of a selection.
func Text(sel *goquery.Selection) string {
	return NormalizeText(sel.Text())
}

type Anchor struct {
	Name string
	Href string
}

// GetAnchors returns the normalized text and href of every node in the selection,
// anchors with no text are skipped.
func GetAnchors(ctx context.Context, sel *goquery.Selection) []Anchor {
	_, span := tracer.Start(ctx, "GetAnchors")
	defer span.End()

	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}

		name := NormalizeText(GetText(n))
		if name == "" {
			span.AddEvent("skipped empty anchor", trace.WithAttributes(
				attribute.String("url", href),
			))
			continue
		}

		anchors = append(anchors, Anchor{
			Name: name,
			Href: href,
		})
		span.AddEvent("anchor", trace.WithAttributes(
			attribute.String("name", name),
			attribute.String("url", href),
		))
	}

	return anchors
}
