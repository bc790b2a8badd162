package banner

import (
	"strings"
)

// Option is a single <option> of a select, Code is what gets submitted and
// Label is what the user sees.
type Option struct {
	Code  string
	Label string
}

// OptionSet is an ordered mapping of option code to label.
type OptionSet struct {
	options []Option
	index   map[string]int
}

func NewOptionSet(options ...Option) *OptionSet {
	o := &OptionSet{index: make(map[string]int)}
	for _, opt := range options {
		o.Add(opt.Code, opt.Label)
	}
	return o
}

// Add appends an option, re-adding a code replaces its label but keeps its
// original position.
func (o *OptionSet) Add(code, label string) {
	if i, ok := o.index[code]; ok {
		o.options[i].Label = label
		return
	}
	o.index[code] = len(o.options)
	o.options = append(o.options, Option{Code: code, Label: label})
}

func (o *OptionSet) Len() int {
	return len(o.options)
}

func (o *OptionSet) Has(code string) bool {
	_, ok := o.index[code]
	return ok
}

func (o *OptionSet) Label(code string) (string, bool) {
	i, ok := o.index[code]
	if !ok {
		return "", false
	}
	return o.options[i].Label, true
}

// Options returns the options in document order.
func (o *OptionSet) Options() []Option {
	out := make([]Option, len(o.options))
	copy(out, o.options)
	return out
}

func (o *OptionSet) Codes() []string {
	out := make([]string, len(o.options))
	for i, opt := range o.options {
		out[i] = opt.Code
	}
	return out
}

// Map returns the options as a plain code -> label map.
func (o *OptionSet) Map() map[string]string {
	out := make(map[string]string, len(o.options))
	for _, opt := range o.options {
		out[opt.Code] = opt.Label
	}
	return out
}

// CodesForLabel linearly searches for the codes of every option whose label
// equals `label` ignoring case, in document order.
func (o *OptionSet) CodesForLabel(label string) []string {
	label = strings.TrimSpace(label)

	var codes []string
	for _, opt := range o.options {
		if strings.EqualFold(opt.Label, label) {
			codes = append(codes, opt.Code)
		}
	}
	return codes
}
