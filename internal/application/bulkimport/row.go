package bulkimport

import (
	"fmt"
	"net/mail"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

// validateRow checks one raw row against the user schema and maps it to a
// domain creation value. It is pure: the same input always yields the same
// record or the same error list, and every error names its field.
func validateRow(row rawRow) (domain.User, []string) {
	var errs []string

	for _, column := range requiredColumns {
		if row.fields[column] == "" {
			errs = append(errs, fmt.Sprintf("Row %d: %s - field required", row.number, column))
		}
	}

	for _, column := range []string{"email", "secondaryEmail"} {
		value := row.fields[column]
		if value == "" {
			continue
		}
		if _, err := mail.ParseAddress(value); err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: %s - value is not a valid email address", row.number, column))
		}
	}

	if len(errs) > 0 {
		return domain.User{}, errs
	}

	active := true
	if row.active != nil {
		active = *row.active
	}

	emails := []domain.Email{{Value: row.fields["email"], Primary: true}}
	if secondary := row.fields["secondaryEmail"]; secondary != "" {
		emails = append(emails, domain.Email{Value: secondary})
	}

	record, err := domain.NewUser(
		row.fields["userName"],
		row.fields["firstName"],
		row.fields["surName"],
		row.fields["displayName"],
		row.fields["externalId"],
		active,
		emails,
	)
	if err != nil {
		return domain.User{}, []string{fmt.Sprintf("Row %d: %v", row.number, err)}
	}

	return record, nil
}

func rowUserName(row rawRow) string {
	if name := row.fields["userName"]; name != "" {
		return name
	}
	return "Unknown"
}
