// Package export renders submissions into downloadable reports.
package export

import (
	"strings"
	"time"

	"github.com/tanvir/intakeform/internal/app/models"
)

// csvHeader matches the column order the administration office expects.
const csvHeader = "Student ID,First Name,Last Name,Email,Alias Email,Phone,Faculty,Department,Session,Year/Semester,Submitted Date"

const submittedDateLayout = "2006-01-02 15:04:05"

// SubmissionsCSV renders the submissions as CSV. Every data field is
// quoted so spreadsheet imports never misparse commas inside names.
func SubmissionsCSV(submissions []*models.Submission) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\r\n")

	for _, sub := range submissions {
		fields := []string{
			sub.StudentID,
			sub.FirstName,
			sub.LastName,
			sub.Email,
			sub.AliasEmail,
			sub.PhoneNumber,
			sub.Faculty,
			sub.Department,
			sub.Session,
			yearSemesterLabel(sub),
			formatSubmittedDate(sub.CreatedAt),
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(&b, f)
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

func writeQuoted(b *strings.Builder, field string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(field, `"`, `""`))
	b.WriteByte('"')
}

func yearSemesterLabel(sub *models.Submission) string {
	if sub.YearSemesterValue == "" {
		return ""
	}
	return sub.YearSemesterValue + " " + sub.YearSemesterType
}

func formatSubmittedDate(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(submittedDateLayout)
}
