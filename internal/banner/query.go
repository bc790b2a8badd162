package banner

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	FieldTerm              = "STU_TERM_IN"
	FieldDay               = "sel_day"
	FieldSubject           = "sel_subj"
	FieldAttribute         = "sel_attr"
	FieldScheduleType      = "sel_schd"
	FieldCampus            = "sel_camp"
	FieldInstructionMethod = "sel_insm"
	FieldPartOfTerm        = "sel_ptrm"
	FieldLevel             = "sel_levl"
	FieldInstructor        = "sel_instr"
	FieldSeat              = "sel_seat"

	FieldMessage    = "p_msg_code"
	FieldCRN        = "sel_crn"
	FieldCourse     = "sel_crse"
	FieldTitle      = "sel_title"
	FieldFromCredit = "sel_from_cred"
	FieldToCredit   = "sel_to_cred"

	FieldBeginHour     = "begin_hh"
	FieldBeginMinute   = "begin_mi"
	FieldBeginMeridiem = "begin_ap"
	FieldEndHour       = "end_hh"
	FieldEndMinute     = "end_mi"
	FieldEndMeridiem   = "end_ap"
)

const (
	// Wildcard is the option code banner uses for "any".
	Wildcard = "%"
	// placeholder is sent once for every multi valued field ahead of the real
	// values, banner rejects the search without it.
	placeholder = "dummy"
	// MessageCode must be sent verbatim with every search.
	MessageCode = "You can not select All in Subject and All in Attribute type."
)

// Param is a single name=value pair of a request.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of request parameters, names repeat for fields
// with more than one selected value.
type Params []Param

func (p *Params) Add(name, value string) {
	*p = append(*p, Param{Name: name, Value: value})
}

// Values returns every value given for `name`, in order.
func (p Params) Values(name string) []string {
	var out []string
	for _, param := range p {
		if param.Name == name {
			out = append(out, param.Value)
		}
	}
	return out
}

// Encode url-encodes the parameters without reordering them.
func (p Params) Encode() string {
	var out strings.Builder
	for i, param := range p {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(url.QueryEscape(param.Name))
		out.WriteByte('=')
		out.WriteString(url.QueryEscape(param.Value))
	}
	return out.String()
}

// TimeOfDay is a 12 hour clock time as banner's search form takes it, the
// zero value is banner's "unset".
type TimeOfDay struct {
	Hour   int
	Minute int
	PM     bool
}

func (t TimeOfDay) meridiem() string {
	if t.PM {
		return "p"
	}
	return "a"
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour <= 12 && t.Minute >= 0 && t.Minute <= 59
}

// Filters are the search criteria, every multi valued filter left empty
// matches anything.
type Filters struct {
	Levels             []string
	Instructors        []string
	Subjects           []string
	Campuses           []string
	ScheduleTypes      []string
	Attributes         []string
	InstructionMethods []string
	PartOfTerm         []string
	Days               []string
	SeatStatus         []string

	CRN            string
	CourseNumber   string
	TitleSubstring string
	CreditFrom     string
	CreditTo       string
	Begin          TimeOfDay
	End            TimeOfDay
}

type multiFilter struct {
	field  string
	values []string
	// whether the values are codes of a select on the search form, days and
	// seat status are checkboxes and are not discovered.
	selectBacked bool
}

// multiFilters is in the order banner expects the repeated values.
func (f Filters) multiFilters() []multiFilter {
	return []multiFilter{
		{field: FieldDay, values: f.Days},
		{field: FieldSubject, values: f.Subjects, selectBacked: true},
		{field: FieldScheduleType, values: f.ScheduleTypes, selectBacked: true},
		{field: FieldAttribute, values: f.Attributes, selectBacked: true},
		{field: FieldCampus, values: f.Campuses, selectBacked: true},
		{field: FieldInstructionMethod, values: f.InstructionMethods, selectBacked: true},
		{field: FieldPartOfTerm, values: f.PartOfTerm, selectBacked: true},
		{field: FieldLevel, values: f.Levels, selectBacked: true},
		{field: FieldInstructor, values: f.Instructors, selectBacked: true},
		{field: FieldSeat, values: f.SeatStatus},
	}
}

// placeholderFields is in the order banner's own form submits them.
var placeholderFields = []string{
	FieldDay,
	FieldSubject,
	FieldAttribute,
	FieldScheduleType,
	FieldCampus,
	FieldInstructionMethod,
	FieldPartOfTerm,
	FieldLevel,
	FieldInstructor,
	FieldSeat,
}

// validate checks given codes against the form. Empty filters send the
// wildcard and are not looked up, a missing select only matters once a value
// is given for it.
func (f Filters) validate(search Form) error {
	for _, filter := range f.multiFilters() {
		if !filter.selectBacked {
			continue
		}
		for _, code := range filter.values {
			if code == Wildcard {
				continue
			}
			err := search.ValidateCode(filter.field, code)
			if err != nil {
				return err
			}
		}
	}
	if !f.Begin.valid() {
		return &InvalidSelectionError{Field: FieldBeginHour, Value: formatTime(f.Begin)}
	}
	if !f.End.valid() {
		return &InvalidSelectionError{Field: FieldEndHour, Value: formatTime(f.End)}
	}
	return nil
}

func formatTime(t TimeOfDay) string {
	return strconv.Itoa(t.Hour) + ":" + strconv.Itoa(t.Minute) + t.meridiem()
}

// BuildSearchParams validates the filters against the options of the search
// form and encodes them as the parameter list banner's class search expects.
// Nothing is returned if any filter is invalid.
func BuildSearchParams(search Form, termCode string, filters Filters) (Params, error) {
	err := filters.validate(search)
	if err != nil {
		return nil, err
	}

	params := Params{{Name: FieldTerm, Value: termCode}}
	for _, field := range placeholderFields {
		params.Add(field, placeholder)
	}
	params.Add(FieldMessage, MessageCode)

	params.Add(FieldCRN, filters.CRN)
	params.Add(FieldCourse, filters.CourseNumber)
	params.Add(FieldTitle, filters.TitleSubstring)
	params.Add(FieldFromCredit, filters.CreditFrom)
	params.Add(FieldToCredit, filters.CreditTo)

	params.Add(FieldBeginHour, strconv.Itoa(filters.Begin.Hour))
	params.Add(FieldBeginMinute, strconv.Itoa(filters.Begin.Minute))
	params.Add(FieldBeginMeridiem, filters.Begin.meridiem())
	params.Add(FieldEndHour, strconv.Itoa(filters.End.Hour))
	params.Add(FieldEndMinute, strconv.Itoa(filters.End.Minute))
	params.Add(FieldEndMeridiem, filters.End.meridiem())

	for _, filter := range filters.multiFilters() {
		if len(filter.values) == 0 {
			params.Add(filter.field, Wildcard)
			continue
		}
		for _, v := range filter.values {
			params.Add(filter.field, v)
		}
	}

	return params, nil
}
