package validators

import (
	"errors"
	"strings"
	"testing"
)

type portHolder struct {
	Port int    `json:"port" validate:"min=1,max=65535"`
	Name string `json:"app_name" validate:"required"`
}

// TestValidateStruct tests tag validation and field naming
func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		value     portHolder
		wantErr   bool
		wantField string
	}{
		{"minimum port", portHolder{Port: 1, Name: "app"}, false, ""},
		{"maximum port", portHolder{Port: 65535, Name: "app"}, false, ""},
		{"common port", portHolder{Port: 8080, Name: "app"}, false, ""},
		{"zero port", portHolder{Port: 0, Name: "app"}, true, "port"},
		{"negative port", portHolder{Port: -1, Name: "app"}, true, "port"},
		{"port too large", portHolder{Port: 65536, Name: "app"}, true, "port"},
		{"missing name", portHolder{Port: 80}, true, "app_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("ValidateStruct() error = %T, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

// TestValidateStruct_JoinsErrors checks that every failing field is reported
func TestValidateStruct_JoinsErrors(t *testing.T) {
	err := ValidateStruct(portHolder{Port: 0})
	if err == nil {
		t.Fatal("ValidateStruct() error = nil, want error")
	}
	msg := err.Error()
	for _, field := range []string{"port:", "app_name:"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention %q", msg, field)
		}
	}
}

// TestValidationError_Error tests the error message format
func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("port", "must be at least 1 (got: 0)")
	want := "port: must be at least 1 (got: 0)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// TestIsValidSemanticVersion tests semantic version validation
func TestIsValidSemanticVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"simple", "0.1.0", true},
		{"prerelease", "2.1.3-beta", true},
		{"prerelease and build", "1.0.0-alpha+001", true},
		{"missing patch", "1.0", false},
		{"leading v", "v1.0.0", false},
		{"leading zero", "01.0.0", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSemanticVersion(tt.version); got != tt.want {
				t.Errorf("IsValidSemanticVersion(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
