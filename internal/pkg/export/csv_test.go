package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tanvir/intakeform/internal/app/models"
)

func TestSubmissionsCSV_Header(t *testing.T) {
	out := SubmissionsCSV(nil)
	assert.Equal(t, "Student ID,First Name,Last Name,Email,Alias Email,Phone,Faculty,Department,Session,Year/Semester,Submitted Date\r\n", out)
}

func TestSubmissionsCSV_QuotesEveryField(t *testing.T) {
	created := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	subs := []*models.Submission{
		{
			StudentID:         "12345678",
			FirstName:         "Nadia",
			LastName:          "Islam",
			Email:             "nadia@example.com",
			AliasEmail:        "nadia.islam",
			PhoneNumber:       "01712345678",
			Faculty:           "Faculty of Science",
			Department:        "Physics",
			Session:           "2024-25",
			YearSemesterType:  models.YearSemesterTypeYear,
			YearSemesterValue: "1st",
			CreatedAt:         created,
		},
	}

	out := SubmissionsCSV(subs)
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `"12345678","Nadia","Islam","nadia@example.com","nadia.islam","01712345678","Faculty of Science","Physics","2024-25","1st year","2024-06-15 10:30:00"`, lines[1])
}

func TestSubmissionsCSV_EscapesQuotesAndCommas(t *testing.T) {
	subs := []*models.Submission{
		{
			StudentID: "1",
			FirstName: `Md. "Rafi", Jr`,
		},
	}
	out := SubmissionsCSV(subs)
	assert.Contains(t, out, `"Md. ""Rafi"", Jr"`)
}

func TestSubmissionsCSV_ZeroTimestampRendersEmpty(t *testing.T) {
	subs := []*models.Submission{{StudentID: "2"}}
	out := SubmissionsCSV(subs)
	assert.Contains(t, out, `,""`+"\r\n")
}
