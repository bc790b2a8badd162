package banner

import (
	"bytes"
	"fmt"
	"strings"

	"coursegraph/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

func parseMethod(raw string) (Method, bool) {
	switch Method(strings.ToUpper(strings.TrimSpace(raw))) {
	case MethodGet, "":
		return MethodGet, true
	case MethodPost:
		return MethodPost, true
	}
	return "", false
}

// Field is a named form control, either a hidden input with a fixed Value or
// a select with Options.
type Field struct {
	Name    string
	Value   string
	Options *OptionSet
}

func (f Field) IsSelect() bool {
	return f.Options != nil
}

// Form is the structure of a banner form as discovered from a page.
type Form struct {
	Title  string
	Action string
	Method Method

	fields []Field
	index  map[string]int
}

func NewForm(title, action string, method Method, fields ...Field) Form {
	f := Form{
		Title:  title,
		Action: action,
		Method: method,
		index:  make(map[string]int),
	}
	for _, field := range fields {
		f.add(field)
	}
	return f
}

// add appends a field, a repeated name replaces the earlier field in place.
func (f *Form) add(field Field) {
	if i, ok := f.index[field.Name]; ok {
		f.fields[i] = field
		return
	}
	f.index[field.Name] = len(f.fields)
	f.fields = append(f.fields, field)
}

// Fields returns the fields in document order.
func (f Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

func (f Form) Field(name string) (Field, bool) {
	i, ok := f.index[name]
	if !ok {
		return Field{}, false
	}
	return f.fields[i], true
}

// Select returns the options of a select field, a missing field or a field
// that is not a select is a StructureError.
func (f Form) Select(name string) (*OptionSet, error) {
	field, ok := f.Field(name)
	if !ok {
		return nil, &StructureError{Page: f.Title, Reason: fmt.Sprintf("form has no field '%s'", name)}
	}
	if !field.IsSelect() {
		return nil, &StructureError{Page: f.Title, Reason: fmt.Sprintf("field '%s' is not a select", name)}
	}
	return field.Options, nil
}

// Hidden returns the value of a hidden field.
func (f Form) Hidden(name string) (string, error) {
	field, ok := f.Field(name)
	if !ok {
		return "", &StructureError{Page: f.Title, Reason: fmt.Sprintf("form has no field '%s'", name)}
	}
	if field.IsSelect() {
		return "", &StructureError{Page: f.Title, Reason: fmt.Sprintf("field '%s' is not a hidden input", name)}
	}
	return field.Value, nil
}

// ValidateCode checks that `code` is one of the options of the select `field`.
func (f Form) ValidateCode(field, code string) error {
	options, err := f.Select(field)
	if err != nil {
		return err
	}
	if !options.Has(code) {
		return &InvalidSelectionError{
			Field:       field,
			Value:       code,
			Suggestions: suggest(options, code),
		}
	}
	return nil
}

// CodeForLabel resolves a human entered label (like an instructor's name) to
// the code of the option carrying it. Labels are not guaranteed to be unique,
// two different codes with the same label is an AmbiguousSelectionError.
func (f Form) CodeForLabel(field, label string) (string, error) {
	options, err := f.Select(field)
	if err != nil {
		return "", err
	}

	codes := options.CodesForLabel(label)
	switch len(codes) {
	case 0:
		return "", &InvalidSelectionError{
			Field:       field,
			Value:       label,
			Suggestions: suggest(options, label),
		}
	case 1:
		return codes[0], nil
	}
	return "", &AmbiguousSelectionError{Field: field, Label: label, Codes: codes}
}

// ResolveCode accepts either an option code or an option label for a select
// field and returns the code, codes take precedence over labels.
func (f Form) ResolveCode(field, value string) (string, error) {
	options, err := f.Select(field)
	if err != nil {
		return "", err
	}
	if options.Has(value) {
		return value, nil
	}
	return f.CodeForLabel(field, value)
}

// DiscoverForm finds the form inside banner's content container
// (div.pagebodydiv) and records its action, method, hidden inputs and selects.
func DiscoverForm(doc *goquery.Document) (Form, error) {
	title := htmlutil.Text(doc.Find("title").First())

	body := doc.Find("div.pagebodydiv").First()
	if body.Length() == 0 {
		return Form{}, &StructureError{Page: title, Reason: "missing content container div.pagebodydiv"}
	}
	formSel := body.Find("form").First()
	if formSel.Length() == 0 {
		return Form{}, &StructureError{Page: title, Reason: "content container holds no form"}
	}

	method, ok := parseMethod(formSel.AttrOr("method", ""))
	if !ok {
		return Form{}, &StructureError{
			Page:   title,
			Reason: fmt.Sprintf("unsupported form method '%s'", formSel.AttrOr("method", "")),
		}
	}

	form := NewForm(title, strings.TrimSpace(formSel.AttrOr("action", "")), method)

	formSel.Find("input[type=hidden]").Each(func(_ int, input *goquery.Selection) {
		name, ok := input.Attr("name")
		if !ok || name == "" {
			return
		}
		form.add(Field{Name: name, Value: input.AttrOr("value", "")})
	})

	formSel.Find("select").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok || name == "" {
			return
		}
		form.add(Field{Name: name, Options: parseSelect(sel)})
	})

	return form, nil
}

func parseSelect(sel *goquery.Selection) *OptionSet {
	options := NewOptionSet()
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		label := htmlutil.Text(opt)
		// an option without a value submits its text
		code, ok := opt.Attr("value")
		if !ok {
			code = label
		}
		options.Add(strings.TrimSpace(code), label)
	})
	return options
}

// ParseForm is DiscoverForm over a raw html page.
func ParseForm(page []byte) (Form, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(page))
	if err != nil {
		return Form{}, fmt.Errorf("parse html: %w", err)
	}
	return DiscoverForm(doc)
}
