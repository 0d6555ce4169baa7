// Package diag defines the diagnostic codes and severities shared by the
// configuration loader, the merge pipeline and the CLI.
package diag

// Code identifies a specific rule or failure that produced a diagnostic.
type Code string

const (
	// CFG001 indicates a configuration document could not be found or read.
	CFG001 Code = "CFG001"
	// CFG002 indicates a required configuration key is absent.
	CFG002 Code = "CFG002"
	// CFG003 indicates a configuration value has the wrong shape.
	CFG003 Code = "CFG003"
	// CFG004 indicates the project configuration document is not an object.
	CFG004 Code = "CFG004"
	// CFG005 indicates a configuration value is present but unusable.
	CFG005 Code = "CFG005"
	// CFG006 indicates an unknown key in the project configuration document.
	CFG006 Code = "CFG006"
	// CFGW001 is a warning: the project language has no known comment syntax.
	CFGW001 Code = "CFGW001"
	// CFGW002 is a warning: allowed_extensions is empty, so nothing is merged.
	CFGW002 Code = "CFGW002"
	// CFGW003 is a warning: an allowed extension does not start with ".".
	CFGW003 Code = "CFGW003"
	// CFGW004 is a warning: the source directory does not exist or is not a directory.
	CFGW004 Code = "CFGW004"

	// MRG001 indicates a directory could not be listed during traversal.
	MRG001 Code = "MRG001"
	// MRG002 indicates a source file could not be opened or read.
	MRG002 Code = "MRG002"
	// MRG003 indicates the output artifact could not be created or written.
	MRG003 Code = "MRG003"
)

// Severity classifies the impact level of a diagnostic.
type Severity string

const (
	// SeverityError indicates a condition that must be resolved.
	SeverityError Severity = "error"
	// SeverityWarning indicates a condition that should be reviewed.
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single finding.
type Diagnostic struct {
	// Code is the rule identifier that produced this diagnostic.
	Code Code `json:"code"`
	// Severity indicates whether this is an error or warning.
	Severity Severity `json:"severity"`
	// Message is a human-readable description of the finding.
	Message string `json:"message"`
	// Path is the file or configuration key associated with the finding.
	Path string `json:"path,omitempty"`
}

// HasError reports whether any diagnostic in diags has error severity.
func HasError(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
