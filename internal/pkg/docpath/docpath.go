// Package docpath maps logical identifiers to document paths in the
// collection/document store. Paths alternate collection and document
// segments, mirroring the layout the intake system was built around.
package docpath

// Collection roots.
const (
	// FormRoot is the root document holding the whole intake tree.
	FormRoot = "student-information-form"

	// AdminUsersCollection is the flat admin account collection.
	AdminUsersCollection = "admin-users"

	// ComplaintsCollection is the flat complaint collection.
	ComplaintsCollection = "complaints"

	// TokensCollection is the flat refresh token collection.
	TokensCollection = "auth-tokens"

	// SubmissionsLeaf is the leaf collection name shared by the
	// authoritative submission documents and the duplicate index.
	SubmissionsLeaf = "submissions"
)

// FormValuesPrefix is the path prefix of the authoritative submission
// subtree. Collection-group scans over submissions are constrained to this
// prefix so duplicate-index entries (whose leaf collection is also named
// "submissions") are not swept up.
const FormValuesPrefix = FormRoot + "/form-values/"

// Submission returns the authoritative path for a submission document:
// student-information-form/form-values/{facultyAlias}/{department}/submissions/{studentId}
func Submission(facultyAlias, department, studentID string) string {
	return FormValuesPrefix + facultyAlias + "/" + department + "/" + SubmissionsLeaf + "/" + studentID
}

// DuplicateIndex returns the flat duplicate-index path for a student ID,
// independent of faculty and department.
func DuplicateIndex(studentID string) string {
	return FormRoot + "/studentSubmissions/" + SubmissionsLeaf + "/" + studentID
}

// BasicInfo returns the single reference-data document holding the
// faculty/department catalog and its aggregate counts.
func BasicInfo() string {
	return FormRoot + "/basic-info"
}

// AdminUser returns the admin account path keyed by email. The email is
// assumed unique and syntactically safe as a path segment.
func AdminUser(email string) string {
	return AdminUsersCollection + "/" + email
}

// Complaint returns the path of a complaint document.
func Complaint(id string) string {
	return ComplaintsCollection + "/" + id
}

// ComplaintMessage returns the path of one message in a complaint thread.
func ComplaintMessage(complaintID, messageID string) string {
	return ComplaintsCollection + "/" + complaintID + "/messages/" + messageID
}

// ComplaintMessages returns the messages collection of a complaint.
func ComplaintMessages(complaintID string) string {
	return ComplaintsCollection + "/" + complaintID + "/messages"
}

// RefreshToken returns the path of a stored refresh token.
func RefreshToken(token string) string {
	return TokensCollection + "/" + token
}
