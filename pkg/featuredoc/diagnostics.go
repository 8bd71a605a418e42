package featuredoc

import (
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

// Diagnostic is a scan failure positioned in the manifest.
type Diagnostic struct {
	Code    errors.Code
	Line    int
	Message string
}

// String formats the diagnostic as "file:line: message".
func (d Diagnostic) String(file string) string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", file, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", file, d.Message)
}

// DiagnosticOf extracts the diagnostic carried by a scan error.
func DiagnosticOf(err error) (Diagnostic, bool) {
	code := errors.GetCode(err)
	if code == "" {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Code:    code,
		Line:    errors.GetLine(err),
		Message: message(err),
	}, true
}

func message(err error) string {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}
