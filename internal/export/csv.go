// Package export renders a project aggregate as the CSV file users download
// and later re-import.
package export

import (
	"strings"

	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
)

// ContentType is the response content type for exported files.
const ContentType = "text/csv; charset=utf-8"

// Header is the column row, in the application's working language. Import
// tooling maps these names back onto row fields.
var Header = []string{
	"रैयत नाम",
	"जमाबंदी नंबर",
	"खाता नंबर",
	"खेसरा नंबर",
	"रकवा",
	"उत्तर",
	"दक्षिण",
	"पूर्व",
	"पश्चिम",
	"रिमार्क्स",
}

// CSV renders one row per land record. Every data field is double-quoted so
// free-text boundaries and remarks survive commas and newlines.
func CSV(project *aggregate.ProjectView) string {
	var b strings.Builder

	b.WriteString(strings.Join(Header, ","))
	b.WriteByte('\n')

	for _, record := range project.LandRecords {
		fields := []string{
			record.RaiyatName,
			deref(record.JamabandiNumber),
			deref(record.KhataNumber),
			record.KhesraNumber,
			deref(record.Rakwa),
			deref(record.Uttar),
			deref(record.Dakshin),
			deref(record.Purab),
			deref(record.Paschim),
			deref(record.Remarks),
		}

		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
