package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	errorStyle = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	warnStyle  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	infoStyle  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	infoColor  = pterm.FgLightGreen
)

// DisplayInfoMessage prints a tagged informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	infoStyle.Print(tag)
	infoColor.Println(" " + msg)
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyle.Print("fatal error")
	fmt.Printf(" %s\n\n", message)
}

// displayCompileMessage displays a compilation error or warning.  The label
// is the string to prefix the message with: eg. if we want to display an
// error, the label is "error".
func displayCompileMessage(style *pterm.Style, label, absPath, reprPath string, span *TextSpan, message string) {
	if span == nil {
		fmt.Printf("%s: ", reprPath)
		style.Print(label)
		fmt.Printf(": %s\n\n", message)
		return
	}

	fmt.Printf("%s:%d:%d: ", reprPath, span.StartLine+1, span.StartCol+1)
	style.Print(label)
	fmt.Printf(": %s\n\n", message)

	if absPath != "" {
		displaySourceText(absPath, span)
	}
}

// displaySourceText displays the segment of source text selected by a text
// span, underlined with carets.  If the source file cannot be read, the
// excerpt is simply skipped: the message above it already carries the
// position information.
func displaySourceText(absPath string, span *TextSpan) {
	file, err := os.Open(absPath)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect the source lines covered by the span.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Trim the minimum indentation off of every displayed line.
	minIndent := math.MaxInt32
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmtStr, i+span.StartLine+1)
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// Underlining continues from the previous line for every line but the
		// first, and stops at the end column only on the last.
		carretPrefixCount := 0
		if i == 0 {
			carretPrefixCount = span.StartCol - minIndent
		}

		carretSuffixCount := 0
		if i == len(lines)-1 {
			carretSuffixCount = len(line) - span.EndCol
		}

		carretCount := len(line) - carretSuffixCount - carretPrefixCount - minIndent
		if carretCount < 1 {
			carretCount = 1
		}

		fmt.Print(strings.Repeat(" ", carretPrefixCount))
		fmt.Println(strings.Repeat("^", carretCount))
	}

	fmt.Println()
}
