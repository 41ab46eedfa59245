package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("Ayesha"))
	assert.True(t, ValidateName("a"))
	assert.False(t, ValidateName(""))
	assert.False(t, ValidateName("   "))
	assert.False(t, ValidateName(strings.Repeat("x", 101)))
	assert.True(t, ValidateName(strings.Repeat("x", 100)))
}

func TestValidateStudentID(t *testing.T) {
	assert.True(t, ValidateStudentID("12345678"))
	assert.True(t, ValidateStudentID("1"))
	assert.False(t, ValidateStudentID(""))
	assert.False(t, ValidateStudentID("1234a678"))
	assert.False(t, ValidateStudentID("12 345"))
	assert.False(t, ValidateStudentID("-12345"))
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.True(t, ValidatePhoneNumber("0171234567"))   // 10 digits
	assert.True(t, ValidatePhoneNumber("01712345678"))  // 11 digits
	assert.True(t, ValidatePhoneNumber("017 1234 5678")) // whitespace stripped
	assert.False(t, ValidatePhoneNumber("017123456"))    // 9 digits
	assert.False(t, ValidatePhoneNumber("017123456789")) // 12 digits
	assert.False(t, ValidatePhoneNumber("+8801712345678"))
	assert.False(t, ValidatePhoneNumber("01712-345678"))
	assert.False(t, ValidatePhoneNumber(""))
}

func TestCleanPhoneNumber(t *testing.T) {
	assert.Equal(t, "8801712345678", CleanPhoneNumber("+880 1712-345678"))
	assert.Equal(t, "01712345678", CleanPhoneNumber("01712345678"))
	assert.Equal(t, "", CleanPhoneNumber("abc"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("student@example.com"))
	assert.True(t, ValidateEmail("a.b+c@mail.example.org"))
	assert.False(t, ValidateEmail("no-at-sign"))
	assert.False(t, ValidateEmail("spaces in@example.com"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestValidateAliasEmail(t *testing.T) {
	assert.True(t, ValidateAliasEmail("jo"))
	assert.True(t, ValidateAliasEmail("rahim.uddin_99"))
	assert.True(t, ValidateAliasEmail("a-b"))

	// Too short / too long.
	assert.False(t, ValidateAliasEmail("j"))
	assert.False(t, ValidateAliasEmail(strings.Repeat("a", 31)))
	assert.True(t, ValidateAliasEmail(strings.Repeat("a", 30)))

	// Charset violations.
	assert.False(t, ValidateAliasEmail("rahim uddin"))
	assert.False(t, ValidateAliasEmail("rahim@cu"))
	assert.False(t, ValidateAliasEmail(""))

	// Blacklisted substrings, case-insensitive.
	assert.False(t, ValidateAliasEmail("my.gmail.acc"))
	assert.False(t, ValidateAliasEmail("GMail99"))
	assert.False(t, ValidateAliasEmail("yahooboy"))
	assert.False(t, ValidateAliasEmail("mailbox"))
	assert.False(t, ValidateAliasEmail("ismail")) // contains "mail"
	assert.False(t, ValidateAliasEmail("protonx"))
}

func TestGeneratePassword(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw := GeneratePassword(12)
		assert.Len(t, pw, 12)
		assert.True(t, strings.ContainsAny(pw, passwordUppercase), "missing uppercase: %q", pw)
		assert.True(t, strings.ContainsAny(pw, passwordLowercase), "missing lowercase: %q", pw)
		assert.True(t, strings.ContainsAny(pw, passwordDigits), "missing digit: %q", pw)
		assert.True(t, strings.ContainsAny(pw, passwordSymbols), "missing symbol: %q", pw)
	}
}

func TestGeneratePasswordLengths(t *testing.T) {
	assert.Len(t, GeneratePassword(20), 20)
	assert.Len(t, GeneratePassword(4), 4)
	// Degenerate lengths fall back to the default.
	assert.Len(t, GeneratePassword(0), DefaultPasswordLength)
	assert.Len(t, GeneratePassword(-3), DefaultPasswordLength)
}
