package banner

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func searchForm(t *testing.T) Form {
	t.Helper()
	form, err := ParseForm([]byte(searchFormPage))
	require.NoError(t, err)
	return form
}

func TestBuildSearchParamsOrder(t *testing.T) {
	params, err := BuildSearchParams(searchForm(t), "201910", Filters{
		Levels:       []string{"UG"},
		Subjects:     []string{"CS", "MATH"},
		CourseNumber: "3000",
	})
	require.NoError(t, err)

	expected := Params{
		{Name: FieldTerm, Value: "201910"},
		{Name: FieldDay, Value: "dummy"},
		{Name: FieldSubject, Value: "dummy"},
		{Name: FieldAttribute, Value: "dummy"},
		{Name: FieldScheduleType, Value: "dummy"},
		{Name: FieldCampus, Value: "dummy"},
		{Name: FieldInstructionMethod, Value: "dummy"},
		{Name: FieldPartOfTerm, Value: "dummy"},
		{Name: FieldLevel, Value: "dummy"},
		{Name: FieldInstructor, Value: "dummy"},
		{Name: FieldSeat, Value: "dummy"},
		{Name: FieldMessage, Value: MessageCode},
		{Name: FieldCRN, Value: ""},
		{Name: FieldCourse, Value: "3000"},
		{Name: FieldTitle, Value: ""},
		{Name: FieldFromCredit, Value: ""},
		{Name: FieldToCredit, Value: ""},
		{Name: FieldBeginHour, Value: "0"},
		{Name: FieldBeginMinute, Value: "0"},
		{Name: FieldBeginMeridiem, Value: "a"},
		{Name: FieldEndHour, Value: "0"},
		{Name: FieldEndMinute, Value: "0"},
		{Name: FieldEndMeridiem, Value: "a"},
		{Name: FieldDay, Value: "%"},
		{Name: FieldSubject, Value: "CS"},
		{Name: FieldSubject, Value: "MATH"},
		{Name: FieldScheduleType, Value: "%"},
		{Name: FieldAttribute, Value: "%"},
		{Name: FieldCampus, Value: "%"},
		{Name: FieldInstructionMethod, Value: "%"},
		{Name: FieldPartOfTerm, Value: "%"},
		{Name: FieldLevel, Value: "UG"},
		{Name: FieldInstructor, Value: "%"},
		{Name: FieldSeat, Value: "%"},
	}
	diff := cmp.Diff(expected, params)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestBuildSearchParamsRepeatedValues(t *testing.T) {
	params, err := BuildSearchParams(searchForm(t), "201910", Filters{
		Subjects: []string{"CS", "MATH"},
	})
	require.NoError(t, err)

	// placeholder first, then the selected codes in the order given
	require.Equal(t, []string{"dummy", "CS", "MATH"}, params.Values(FieldSubject))
	require.Equal(t, []string{"dummy", "%"}, params.Values(FieldLevel))
	require.Equal(t, []string{"dummy", "%"}, params.Values(FieldInstructor))
	require.Equal(t, []string{MessageCode}, params.Values(FieldMessage))
}

func TestBuildSearchParamsWildcard(t *testing.T) {
	params, err := BuildSearchParams(searchForm(t), "201910", Filters{
		Levels: []string{Wildcard},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"dummy", "%"}, params.Values(FieldLevel))

	// the wildcard is accepted even when the form does not offer it
	params, err = BuildSearchParams(searchForm(t), "201910", Filters{
		Subjects: []string{Wildcard},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"dummy", "%"}, params.Values(FieldSubject))
}

func TestBuildSearchParamsInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		filters Filters
		field   string
		value   string
	}{
		{
			name:    "unknown level",
			filters: Filters{Levels: []string{"XX"}},
			field:   FieldLevel,
			value:   "XX",
		},
		{
			name:    "one bad subject among good ones",
			filters: Filters{Subjects: []string{"CS", "CSS"}},
			field:   FieldSubject,
			value:   "CSS",
		},
		{
			name:    "unknown instructor code",
			filters: Filters{Instructors: []string{"9999"}},
			field:   FieldInstructor,
			value:   "9999",
		},
		{
			name:    "begin hour out of range",
			filters: Filters{Begin: TimeOfDay{Hour: 13}},
			field:   FieldBeginHour,
			value:   "13:0a",
		},
		{
			name:    "end minute out of range",
			filters: Filters{End: TimeOfDay{Hour: 5, Minute: 60, PM: true}},
			field:   FieldEndHour,
			value:   "5:60p",
		},
	}

	for _, test := range testCases {
		params, err := BuildSearchParams(searchForm(t), "201910", test.filters)
		require.Nil(t, params, test.name)

		var invalid *InvalidSelectionError
		require.True(t, errors.As(err, &invalid), test.name)
		require.Equal(t, test.field, invalid.Field, test.name)
		require.Equal(t, test.value, invalid.Value, test.name)
	}
}

func TestBuildSearchParamsMissingSelect(t *testing.T) {
	form := NewForm("Search", "search", MethodPost, Field{
		Name:    FieldSubject,
		Options: NewOptionSet(Option{Code: "CS", Label: "Computer Science"}),
	})

	_, err := BuildSearchParams(form, "201910", Filters{Levels: []string{"UG"}})
	var structErr *StructureError
	require.True(t, errors.As(err, &structErr))

	// unset filters are never validated
	_, err = BuildSearchParams(form, "201910", Filters{Subjects: []string{"CS"}})
	require.NoError(t, err)
}

func TestInvalidSelectionSuggestions(t *testing.T) {
	_, err := BuildSearchParams(searchForm(t), "201910", Filters{Subjects: []string{"MTH"}})

	var invalid *InvalidSelectionError
	require.True(t, errors.As(err, &invalid))
	require.NotEmpty(t, invalid.Suggestions)
	require.Equal(t, "MATH (Mathematics)", invalid.Suggestions[0])
	require.Equal(t, "invalid subject 'MTH' (did you mean: MATH (Mathematics)?)", invalid.Error())
}

func TestParamsEncode(t *testing.T) {
	params := Params{
		{Name: "sel_subj", Value: "dummy"},
		{Name: "sel_subj", Value: "CS"},
		{Name: "sel_levl", Value: "%"},
		{Name: "p_msg_code", Value: "a b"},
	}
	require.Equal(t, "sel_subj=dummy&sel_subj=CS&sel_levl=%25&p_msg_code=a+b", params.Encode())
}
