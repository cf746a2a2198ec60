package domain

import (
	"testing"

	"github.com/asaskevich/govalidator"
)

func TestStudentGenderAcceptsEnumValues(t *testing.T) {
	for _, gender := range []string{"male", "female", "other"} {
		student := Student{
			Name:      "Alice Tan",
			Gender:    gender,
			Grade:     3,
			ClassID:   1,
			Telephone: "0812345678",
		}

		if _, err := govalidator.ValidateStruct(student); err != nil {
			t.Errorf("gender %q should validate: %v", gender, err)
		}
	}
}

func TestStudentGenderRejectsUnknownValue(t *testing.T) {
	student := Student{
		Name:      "Alice Tan",
		Gender:    "robot",
		Grade:     3,
		ClassID:   1,
		Telephone: "0812345678",
	}

	if _, err := govalidator.ValidateStruct(student); err == nil {
		t.Error("expected validation error for unknown gender")
	}
}
