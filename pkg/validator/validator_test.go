package validator

import "testing"

type clockField struct {
	Clock string `validate:"required,timeformat"`
}

func TestTimeFormatValidation(t *testing.T) {
	v := NewValidator()

	valid := []string{"00:00:00", "09:30:00", "23:59:59"}
	for _, clock := range valid {
		if err := v.Validate(&clockField{Clock: clock}); err != nil {
			t.Errorf("Validate(%q) error = %v, want nil", clock, err)
		}
	}

	invalid := []string{"9:30", "09:30", "24:00:00", "09:61:00", "morning", "09-30-00"}
	for _, clock := range invalid {
		if err := v.Validate(&clockField{Clock: clock}); err == nil {
			t.Errorf("Validate(%q) = nil, want error", clock)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&clockField{Clock: "not a clock"})
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	formatted := v.FormatValidationErrors(err)
	if msg, ok := formatted["Clock"]; !ok || msg != "Clock must use the HH:MM:SS format" {
		t.Errorf("formatted = %v", formatted)
	}
}
