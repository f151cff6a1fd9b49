package user

import (
	"fmt"
	"time"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type EmailResource struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

type Meta struct {
	ResourceType string `json:"resourceType"`
	Created      string `json:"created,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Location     string `json:"location"`
}

// UserResource is the SCIM-shaped payload returned by every user operation.
type UserResource struct {
	ID          string          `json:"id"`
	Schemas     []string        `json:"schemas"`
	UserName    string          `json:"userName"`
	ExternalID  string          `json:"externalId,omitempty"`
	FirstName   string          `json:"firstName"`
	SurName     string          `json:"surName"`
	DisplayName string          `json:"displayName"`
	Active      bool            `json:"active"`
	Emails      []EmailResource `json:"emails"`
	Meta        Meta            `json:"meta"`
}

func toResource(u domain.User) UserResource {
	emails := make([]EmailResource, 0, len(u.Emails))
	for _, email := range u.Emails {
		emails = append(emails, EmailResource{Value: email.Value, Primary: email.Primary})
	}

	return UserResource{
		ID:          u.ID,
		Schemas:     []string{domain.Schema},
		UserName:    u.UserName,
		ExternalID:  u.ExternalID,
		FirstName:   u.FirstName,
		SurName:     u.SurName,
		DisplayName: u.DisplayName,
		Active:      u.Active,
		Emails:      emails,
		Meta: Meta{
			ResourceType: "User",
			Created:      formatTime(u.CreatedAt),
			LastModified: formatTime(u.UpdatedAt),
			Location:     fmt.Sprintf("/scim/v2/Realms/%s/Users/%s", u.RealmID, u.ID),
		},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
