package diag

import "testing"

func TestHasError(t *testing.T) {
	warn := Diagnostic{Code: CFGW002, Severity: SeverityWarning}
	fail := Diagnostic{Code: CFG005, Severity: SeverityError}

	tests := []struct {
		name  string
		diags []Diagnostic
		want  bool
	}{
		{"nil", nil, false},
		{"warnings only", []Diagnostic{warn, warn}, false},
		{"one error", []Diagnostic{fail}, true},
		{"error after warning", []Diagnostic{warn, fail}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasError(tt.diags); got != tt.want {
				t.Errorf("HasError() = %v, want %v", got, tt.want)
			}
		})
	}
}
