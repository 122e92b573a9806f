package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spigell/resume-screener/internal/screening"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type report struct {
	ResumeFilename string            `json:"resume_filename,omitempty"`
	Result         *screening.Result `json:"result"`
}

func printResult(w io.Writer, format, filename string, result *screening.Result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report{ResumeFilename: filename, Result: result})
	case formatText, "":
		_, err := io.WriteString(w, renderText(filename, result))
		return err
	default:
		return fmt.Errorf("unknown output format %q (use %s or %s)", format, formatText, formatJSON)
	}
}

func renderText(filename string, result *screening.Result) string {
	var b strings.Builder

	if filename != "" {
		fmt.Fprintf(&b, "Resume: %s\n", filename)
	}
	fmt.Fprintf(&b, "Decision: %s %s\n", result.Decision, result.Decision.Icon())
	fmt.Fprintf(&b, "Total Score: %s/100\n", strconv.FormatFloat(result.TotalScore, 'f', -1, 64))

	b.WriteString("\nExplanation:\n")
	writeBullets(&b, result.Explanation)

	b.WriteString("\nMatched Skills:\n")
	if len(result.MatchedSkills) == 0 {
		b.WriteString("  No matched skills found.\n")
	} else {
		writeBullets(&b, upper(result.MatchedSkills))
	}

	b.WriteString("\nMissing Skills:\n")
	if len(result.MissingSkills) == 0 {
		b.WriteString("  No major missing skills detected.\n")
	} else {
		writeBullets(&b, upper(result.MissingSkills))
	}

	b.WriteString("\nSuggestions:\n")
	writeBullets(&b, result.Suggestions)

	return b.String()
}

func writeBullets(b *strings.Builder, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(b, "  • %s\n", line)
	}
}

func upper(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToUpper(item))
	}
	return out
}

// dumpToTmpFile writes the report as indented JSON into a new temporary file.
func dumpToTmpFile(filename string, result *screening.Result) (string, error) {
	file, err := os.CreateTemp("", "screening_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := printResult(file, formatJSON, filename, result); err != nil {
		return "", err
	}
	return file.Name(), nil
}
