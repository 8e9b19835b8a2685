package catalog

import "github.com/coursedeck/coursedeck/pkg/rowsource"

// row builds a listing record from the fields the builder cares about most.
func row(code, title, section, days, time, term, credits, instructor string) rowsource.Record {
	return rowsource.Record{
		rowsource.FieldCode:       code,
		rowsource.FieldTitle:      title,
		rowsource.FieldSection:    section,
		rowsource.FieldDays:       days,
		rowsource.FieldTime:       time,
		rowsource.FieldTerm:       term,
		rowsource.FieldCredits:    credits,
		rowsource.FieldInstructor: instructor,
	}
}

func withRating(r rowsource.Record, field, value string) rowsource.Record {
	out := rowsource.Record{}
	for k, v := range r {
		out[k] = v
	}
	out[field] = value
	return out
}
