package bulkimport

import (
	"reflect"
	"strings"
	"testing"
)

func testRow(fields map[string]string) rawRow {
	return rawRow{number: 2, fields: fields}
}

func TestValidateRowValid(t *testing.T) {
	t.Parallel()

	record, errs := validateRow(testRow(map[string]string{
		"userName":       "jdoe",
		"firstName":      "John",
		"surName":        "Doe",
		"email":          "john@x.com",
		"secondaryEmail": "john.alt@x.com",
		"externalId":     "EMP001",
	}))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if record.DisplayName != "John Doe" {
		t.Fatalf("expected derived displayName, got %q", record.DisplayName)
	}
	if !record.Active {
		t.Fatal("expected active to default to true")
	}
	if len(record.Emails) != 2 || !record.Emails[0].Primary || record.Emails[1].Primary {
		t.Fatalf("unexpected emails: %+v", record.Emails)
	}
}

func TestValidateRowReportsEveryMissingField(t *testing.T) {
	t.Parallel()

	_, errs := validateRow(testRow(map[string]string{"email": "john@x.com"}))
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	for _, field := range []string{"userName", "firstName", "surName"} {
		found := false
		for _, msg := range errs {
			if strings.Contains(msg, field) {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateRowInvalidSecondaryEmail(t *testing.T) {
	t.Parallel()

	_, errs := validateRow(testRow(map[string]string{
		"userName":       "jdoe",
		"firstName":      "John",
		"surName":        "Doe",
		"email":          "john@x.com",
		"secondaryEmail": "nope",
	}))
	if len(errs) != 1 || !strings.Contains(errs[0], "secondaryEmail") {
		t.Fatalf("expected secondaryEmail error, got %v", errs)
	}
}

func TestValidateRowErrorsCarryRowNumber(t *testing.T) {
	t.Parallel()

	row := testRow(map[string]string{"userName": "jdoe"})
	row.number = 7

	_, errs := validateRow(row)
	for _, msg := range errs {
		if !strings.HasPrefix(msg, "Row 7: ") {
			t.Fatalf("expected row prefix, got %q", msg)
		}
	}
}

func TestValidateRowIsIdempotent(t *testing.T) {
	t.Parallel()

	row := testRow(map[string]string{
		"userName":  "jdoe",
		"firstName": "John",
		"surName":   "Doe",
		"email":     "john@x.com",
	})

	first, firstErrs := validateRow(row)
	second, secondErrs := validateRow(row)
	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(firstErrs, secondErrs) {
		t.Fatal("validateRow must be pure")
	}

	bad := testRow(map[string]string{"userName": "jdoe", "email": "nope"})
	_, badFirst := validateRow(bad)
	_, badSecond := validateRow(bad)
	if !reflect.DeepEqual(badFirst, badSecond) {
		t.Fatal("validateRow must yield identical error lists")
	}
}

func TestRowUserNameFallsBackToUnknown(t *testing.T) {
	t.Parallel()

	if got := rowUserName(testRow(map[string]string{})); got != "Unknown" {
		t.Fatalf("expected Unknown, got %q", got)
	}
	if got := rowUserName(testRow(map[string]string{"userName": "jdoe"})); got != "jdoe" {
		t.Fatalf("expected jdoe, got %q", got)
	}
}
