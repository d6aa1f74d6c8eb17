package report

import (
	"fmt"
	"os"
)

// ReportFatal reports a fatal error and stops the program immediately.  These
// are expected errors that generally result from invalid configuration of
// some form: a missing module file, a malformed command line, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The absPath is the absolute path to the erroneous source file; it may be
// empty, in which case no source excerpt is printed.  The reprPath is the
// representative path of the file used to label the message.  The span may be
// nil, in which case no position information is printed.
func ReportCompileError(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayCompileMessage(errorStyle, "error", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of
// the same form as those to ReportCompileError.
func ReportCompileWarning(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompileMessage(warnStyle, "warning", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportError displays any error returned by semantic analysis.  Compile
// errors are displayed with their position information; all other errors are
// displayed as plain error messages.
func ReportError(absPath, reprPath string, err error) {
	if cerr, ok := err.(*CompileError); ok {
		ReportCompileError(absPath, reprPath, cerr.Span, "%s", cerr.Message)
		return
	}

	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		fmt.Printf("%s: error: %s\n\n", reprPath, err)
	}
}
