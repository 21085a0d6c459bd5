package dump

import (
	"strings"

	"github.com/sushengloong/maestro-spike/internal/report"
)

// ArgumentCount is the number of positional arguments of a dump.
const ArgumentCount = 4

// Labels printed in front of each echoed argument, in argument order.
const (
	LabelLocalDirname      = "Local Dirname"
	LabelBrakemanJSON      = "Brakeman JSON"
	LabelRubocopJSON       = "Rubocop JSON"
	LabelBundleAuditOutput = "Bundle Audit Output"
)

// Argument names as shown in usage and error messages.
var argumentNames = [ArgumentCount]string{
	"local_dirname",
	"brakeman_json_path",
	"rubocop_json_path",
	"bundle_audit_output_path",
}

// Arguments are the positional inputs of a dump.
type Arguments struct {
	// LocalDirname is the checked-out application directory. It is only
	// echoed.
	LocalDirname string

	// BrakemanJSON is the path of the Brakeman JSON report.
	BrakemanJSON string

	// RubocopJSON is the path of the RuboCop JSON report.
	RubocopJSON string

	// BundleAuditOutput is the path of the bundle-audit text output.
	BundleAuditOutput string
}

// Usage returns the positional argument synopsis.
func Usage() string {
	names := make([]string, len(argumentNames))
	for i, name := range argumentNames {
		names[i] = "<" + name + ">"
	}
	return strings.Join(names, " ")
}

// ParseArguments maps positional arguments to Arguments in fixed order.
//
// Missing trailing arguments are left empty and reported by Validate, so
// "too few" and "empty" produce the same InvalidArgument error. More than
// ArgumentCount arguments is rejected here.
func ParseArguments(args []string) (Arguments, error) {
	if len(args) > ArgumentCount {
		return Arguments{}, invalidArgument("expected %d arguments (%s), got %d",
			ArgumentCount, Usage(), len(args))
	}

	var values [ArgumentCount]string
	copy(values[:], args)

	a := Arguments{
		LocalDirname:      values[0],
		BrakemanJSON:      values[1],
		RubocopJSON:       values[2],
		BundleAuditOutput: values[3],
	}
	return a, a.Validate()
}

// Validate returns an InvalidArgument error naming every empty argument.
func (a Arguments) Validate() error {
	var missing []string
	for i, value := range a.values() {
		if value == "" {
			missing = append(missing, argumentNames[i])
		}
	}

	if len(missing) > 0 {
		return invalidArgument("missing argument(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// Fields returns the labeled values echoed at the start of a dump.
func (a Arguments) Fields() []report.Field {
	return []report.Field{
		{Label: LabelLocalDirname, Value: a.LocalDirname},
		{Label: LabelBrakemanJSON, Value: a.BrakemanJSON},
		{Label: LabelRubocopJSON, Value: a.RubocopJSON},
		{Label: LabelBundleAuditOutput, Value: a.BundleAuditOutput},
	}
}

// values returns the arguments in positional order.
func (a Arguments) values() [ArgumentCount]string {
	return [ArgumentCount]string{a.LocalDirname, a.BrakemanJSON, a.RubocopJSON, a.BundleAuditOutput}
}
