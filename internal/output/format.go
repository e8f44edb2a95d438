package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat specifies the report format.
type OutputFormat string

const (
	// FormatText renders a styled file tree.
	FormatText OutputFormat = "text"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second return value is false when s is not a known format.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return FormatText, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "yaml", "json"}
}

// FileReport is one generated file in a Report.
type FileReport struct {
	Path   string `json:"path" yaml:"path"`
	Source string `json:"source" yaml:"source"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report summarizes a create-module run.
type Report struct {
	Module      string       `json:"module" yaml:"module"`
	DisplayName string       `json:"displayName" yaml:"displayName"`
	Description string       `json:"description" yaml:"description"`
	Template    string       `json:"template" yaml:"template"`
	TargetDir   string       `json:"targetDir" yaml:"targetDir"`
	DryRun      bool         `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	Files       []FileReport `json:"files" yaml:"files"`
}

// Failed returns the number of failed entries.
func (r *Report) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			n++
		}
	}
	return n
}

// FormatReport renders the report in the requested format.
func FormatReport(r *Report, format OutputFormat) (string, error) {
	if format == FormatText || format == "" {
		return formatReportText(r), nil
	}
	return FormatValue(r, format)
}

// FormatValue encodes v as YAML or JSON.
func FormatValue(v any, format OutputFormat) (string, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.String(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding json: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

func formatReportText(r *Report) string {
	var sb strings.Builder

	files := make(map[string]string, len(r.Files))
	for _, f := range r.Files {
		files[f.Path] = f.Status
	}
	sb.WriteString(RenderFileTree(r.Module, files))

	var failed []FileReport
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			failed = append(failed, f)
		}
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i].Path < failed[j].Path })
	for _, f := range failed {
		sb.WriteString(StyleDim.Render("  "+f.Path+": ") + f.Error + "\n")
	}

	sb.WriteString("\n")
	switch {
	case len(failed) > 0:
		sb.WriteString(FormatCross(fmt.Sprintf("Module %s created in %s, %d of %d entries failed",
			StyleNoun.Render(r.Module), r.TargetDir, len(failed), len(r.Files))))
	case r.DryRun:
		sb.WriteString(FormatCheckmark(fmt.Sprintf("Dry run: module %s would be created in %s",
			StyleNoun.Render(r.Module), r.TargetDir)))
	default:
		sb.WriteString(FormatCheckmark(fmt.Sprintf("Module %s created in %s",
			StyleNoun.Render(r.Module), r.TargetDir)))
	}
	sb.WriteString("\n")

	return sb.String()
}
