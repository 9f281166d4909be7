package corpus

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/brewsearch/brew/core"
)

// requiredColumns are the columns the export must carry. A missing column
// is a schema error; missing values within a column are not.
var requiredColumns = []string{
	"id", "name", "position", "about", "url", "avatar",
	"city", "country_code", "region",
	"current_company:name", "current_company:company_id", "timestamp",
	"experience", "education", "languages", "certifications",
	"volunteer_experience", "groups", "posts", "people_also_viewed",
}

// ReadRecords reads the raw tabular export into RawRecords, preserving row
// order. The header row is validated against the expected schema; rows with
// missing trailing values are padded with empty strings rather than
// rejected.
func ReadRecords(r io.Reader) ([]*core.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, pad below
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("input is missing required column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []*core.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
		}

		records = append(records, &core.RawRecord{
			ID:             field(row, "id"),
			Name:           field(row, "name"),
			Position:       field(row, "position"),
			About:          field(row, "about"),
			URL:            field(row, "url"),
			Avatar:         field(row, "avatar"),
			City:           field(row, "city"),
			CountryCode:    field(row, "country_code"),
			Region:         field(row, "region"),
			CurrentCompany: field(row, "current_company:name"),
			CompanyID:      field(row, "current_company:company_id"),
			Timestamp:      field(row, "timestamp"),

			Experience:          field(row, "experience"),
			Education:           field(row, "education"),
			Languages:           field(row, "languages"),
			Certifications:      field(row, "certifications"),
			VolunteerExperience: field(row, "volunteer_experience"),
			Groups:              field(row, "groups"),
			Posts:               field(row, "posts"),
			PeopleAlsoViewed:    field(row, "people_also_viewed"),
		})
	}

	return records, nil
}
