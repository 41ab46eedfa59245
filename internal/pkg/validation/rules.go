package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - minimal local@domain.tld shape, not full RFC 5322
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// Student identifier pattern - digits only, non-empty
	StudentIDPattern = `^\d+$`

	// Phone number pattern - 10 or 11 digits after whitespace removal
	PhonePattern = `^\d{10,11}$`

	// Alias email charset - letters, digits, dot, hyphen, underscore
	AliasPattern = `^[a-zA-Z0-9._-]+$`

	// Alias email length bounds
	AliasMinLength = 2
	AliasMaxLength = 30

	// Name max length
	NameMaxLength = 100
)

// AliasBlacklist rejects institutional aliases that look like personal mail
// providers. Matched as case-insensitive substrings, so an alias merely
// containing "mail" is rejected too.
var AliasBlacklist = []string{"gmail", "yahoo", "hotmail", "outlook", "mail", "yandex", "proton"}

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	StudentID *regexp.Regexp
	Phone     *regexp.Regexp
	Alias     *regexp.Regexp
	nonDigit  *regexp.Regexp
	space     *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	StudentID: regexp.MustCompile(StudentIDPattern),
	Phone:     regexp.MustCompile(PhonePattern),
	Alias:     regexp.MustCompile(AliasPattern),
	nonDigit:  regexp.MustCompile(`[^\d]`),
	space:     regexp.MustCompile(`\s+`),
}

// ValidateName reports whether a first or last name is acceptable: non-blank
// after trimming and at most NameMaxLength characters.
func ValidateName(name string) bool {
	return strings.TrimSpace(name) != "" && len(name) <= NameMaxLength
}

// ValidateStudentID reports whether id is a non-empty digits-only string.
func ValidateStudentID(id string) bool {
	return CompiledPatterns.StudentID.MatchString(id)
}

// ValidatePhoneNumber strips whitespace and reports whether the remainder is a
// 10 or 11 digit string.
func ValidatePhoneNumber(phone string) bool {
	cleaned := CompiledPatterns.space.ReplaceAllString(phone, "")
	return CompiledPatterns.Phone.MatchString(cleaned)
}

// CleanPhoneNumber strips every non-digit character. It normalizes input
// before storage; it does not validate.
func CleanPhoneNumber(phone string) string {
	return CompiledPatterns.nonDigit.ReplaceAllString(phone, "")
}

// ValidateEmail reports whether email has a minimal local@domain.tld shape.
func ValidateEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ValidateAliasEmail reports whether alias is an acceptable institutional
// email username: restricted charset, length within bounds, and no
// blacklisted substring.
func ValidateAliasEmail(alias string) bool {
	if !CompiledPatterns.Alias.MatchString(alias) {
		return false
	}
	if len(alias) < AliasMinLength || len(alias) > AliasMaxLength {
		return false
	}
	lower := strings.ToLower(alias)
	for _, pattern := range AliasBlacklist {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}
