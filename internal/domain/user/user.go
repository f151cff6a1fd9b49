package user

import (
	"net/mail"
	"strings"
	"time"
)

// Schema is the SCIM 2.0 core user schema URN carried by every user resource.
const Schema = "urn:ietf:params:scim:schemas:core:2.0:User"

type Email struct {
	Value   string
	Primary bool
}

func (e Email) validate() error {
	if _, err := mail.ParseAddress(e.Value); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

type User struct {
	ID          string
	RealmID     string
	UserName    string
	ExternalID  string
	FirstName   string
	SurName     string
	DisplayName string
	Active      bool
	Emails      []Email
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser validates and builds a user aggregate. The display name falls
// back to "<firstName> <surName>" when blank, and the first email becomes
// primary when none is marked as such. ID and RealmID are assigned by the
// repository and the caller respectively.
func NewUser(userName, firstName, surName, displayName, externalID string, active bool, emails []Email) (User, error) {
	userName = strings.TrimSpace(userName)
	firstName = strings.TrimSpace(firstName)
	surName = strings.TrimSpace(surName)
	displayName = strings.TrimSpace(displayName)

	if userName == "" {
		return User{}, ErrMissingUserName
	}
	if firstName == "" {
		return User{}, ErrMissingFirstName
	}
	if surName == "" {
		return User{}, ErrMissingSurName
	}
	if len(emails) == 0 {
		return User{}, ErrNoEmails
	}
	for _, email := range emails {
		if err := email.validate(); err != nil {
			return User{}, err
		}
	}

	hasPrimary := false
	for _, email := range emails {
		if email.Primary {
			hasPrimary = true
			break
		}
	}
	if !hasPrimary {
		emails[0].Primary = true
	}

	if displayName == "" {
		displayName = firstName + " " + surName
	}

	return User{
		UserName:    userName,
		ExternalID:  strings.TrimSpace(externalID),
		FirstName:   firstName,
		SurName:     surName,
		DisplayName: displayName,
		Active:      active,
		Emails:      emails,
	}, nil
}

// PrimaryEmail returns the address marked primary, or the first one.
func (u User) PrimaryEmail() string {
	for _, email := range u.Emails {
		if email.Primary {
			return email.Value
		}
	}
	if len(u.Emails) > 0 {
		return u.Emails[0].Value
	}
	return ""
}
