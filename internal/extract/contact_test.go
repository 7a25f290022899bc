package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_Email(t *testing.T) {
	contact := Contact("Reach me at jane.doe+work@example.co.uk for details")
	assert.Equal(t, "jane.doe+work@example.co.uk", contact["email"])
}

func TestContact_Phone(t *testing.T) {
	contact := Contact("Phone: +1 (555) 123-4567")
	assert.Contains(t, contact, "phone")
}

func TestContact_ProfileURLsCaseInsensitive(t *testing.T) {
	contact := Contact("See LinkedIn.com/in/Jane-Doe and GitHub.com/janedoe")

	assert.Equal(t, "linkedin.com/in/jane-doe", contact["linkedin"])
	assert.Equal(t, "github.com/janedoe", contact["github"])
}

func TestContact_AbsentFieldsOmitted(t *testing.T) {
	contact := Contact("A resume with no contact details at all")

	assert.NotContains(t, contact, "email")
	assert.NotContains(t, contact, "phone")
	assert.NotContains(t, contact, "linkedin")
	assert.NotContains(t, contact, "github")
}

func TestContact_EmptyText(t *testing.T) {
	assert.Empty(t, Contact(""))
}

func TestContact_FirstMatchWins(t *testing.T) {
	contact := Contact("first@example.com and second@example.com")
	assert.Equal(t, "first@example.com", contact["email"])
}
