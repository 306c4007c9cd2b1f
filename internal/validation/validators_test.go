package validation

import "testing"

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "https url", value: "https://idp.example.com", wantErr: false},
		{name: "http url with path", value: "http://localhost:8080/callback", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "missing scheme", value: "idp.example.com", wantErr: true},
		{name: "not a url", value: "::nope::", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateURL(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOrigin(t *testing.T) {
	t.Parallel()

	if err := ValidateOrigin("*"); err != nil {
		t.Errorf("ValidateOrigin(*) error = %v, want nil", err)
	}
	if err := ValidateOrigin("https://app.example.com"); err != nil {
		t.Errorf("ValidateOrigin(https origin) error = %v, want nil", err)
	}
	if err := ValidateOrigin("app.example.com"); err == nil {
		t.Error("ValidateOrigin(schemeless origin) expected error, got nil")
	}
}
