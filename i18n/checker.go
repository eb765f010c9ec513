// Package i18n audits two locale dictionaries for completeness and parity.
// It follows the same extract -> diff -> weight -> floor shape as the
// finance scorer: scan records, compute a completeness metric, emit issues.
package i18n

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

type IssueType string

const (
	IssueMissingInTr         IssueType = "missing_in_tr"
	IssueMissingInEn         IssueType = "missing_in_en"
	IssueEmptyValue          IssueType = "empty_value"
	IssueUntranslated        IssueType = "untranslated"
	IssuePlaceholderMismatch IssueType = "placeholder_mismatch"
)

type IssueSeverity string

const (
	SeverityHigh   IssueSeverity = "high"
	SeverityMedium IssueSeverity = "medium"
	SeverityLow    IssueSeverity = "low"
)

type TranslationIssue struct {
	Type     IssueType     `json:"type"`
	Key      string        `json:"key"`
	Section  string        `json:"section"`
	Severity IssueSeverity `json:"severity"`
}

type SectionStats struct {
	Section      string  `json:"section"`
	TotalKeys    int     `json:"total_keys"`
	CompleteKeys int     `json:"complete_keys"`
	Completion   float64 `json:"completion"` // percent
}

type TranslationReport struct {
	TotalKeys   int                `json:"total_keys"`
	Issues      []TranslationIssue `json:"issues"`
	IssueCounts map[IssueType]int  `json:"issue_counts"`
	Sections    []SectionStats     `json:"sections"`
	HealthScore int                `json:"health_score"`
}

// CheckerOptions tunes the untranslated heuristic. The allow-list holds
// acronyms and brand terms that legitimately read the same in every locale.
type CheckerOptions struct {
	AllowList             []string
	MinUntranslatedLength int
}

func DefaultCheckerOptions() CheckerOptions {
	return CheckerOptions{
		AllowList: []string{
			"OK", "ID", "URL", "API", "PDF", "CSV", "Excel", "Email", "E-mail", "SKU", "IBAN", "SWIFT",
		},
		MinUntranslatedLength: 3,
	}
}

// Deduction weights per issue kind; the health score floors at 0.
const (
	weightMissing      = 2.0
	weightEmpty        = 1.5
	weightUntranslated = 0.5
	weightPlaceholder  = 1.0
)

var placeholderPattern = regexp.MustCompile(`\{[a-zA-Z0-9_]+\}`)

// Analyze compares a source dictionary against its translation with the
// default options.
func Analyze(en, tr map[string]any) *TranslationReport {
	return AnalyzeWithOptions(en, tr, DefaultCheckerOptions())
}

// AnalyzeWithOptions flattens both dictionaries to dotted-path leaves,
// classifies every key, and produces per-section completion plus a weighted
// overall score. Swapping the two inputs mirrors the missing-direction
// issues exactly.
func AnalyzeWithOptions(en, tr map[string]any, opts CheckerOptions) *TranslationReport {
	flatEn := Flatten(en)
	flatTr := Flatten(tr)

	allow := map[string]bool{}
	for _, term := range opts.AllowList {
		allow[strings.ToLower(term)] = true
	}

	keys := map[string]bool{}
	for k := range flatEn {
		keys[k] = true
	}
	for k := range flatTr {
		keys[k] = true
	}
	sortedKeys := make([]string, 0, len(keys))
	for k := range keys {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	report := &TranslationReport{
		TotalKeys:   len(sortedKeys),
		Issues:      []TranslationIssue{},
		IssueCounts: map[IssueType]int{},
		Sections:    []SectionStats{},
	}
	sections := map[string]*SectionStats{}

	addIssue := func(issueType IssueType, key, section string, severity IssueSeverity) {
		report.Issues = append(report.Issues, TranslationIssue{
			Type: issueType, Key: key, Section: section, Severity: severity,
		})
		report.IssueCounts[issueType]++
	}

	for _, key := range sortedKeys {
		section := sectionOf(key)
		stats, ok := sections[section]
		if !ok {
			stats = &SectionStats{Section: section}
			sections[section] = stats
		}
		stats.TotalKeys++

		enVal, inEn := flatEn[key]
		trVal, inTr := flatTr[key]

		switch {
		case inEn && !inTr:
			addIssue(IssueMissingInTr, key, section, SeverityHigh)
			continue
		case inTr && !inEn:
			addIssue(IssueMissingInEn, key, section, SeverityHigh)
			continue
		}

		if strings.TrimSpace(enVal) == "" || strings.TrimSpace(trVal) == "" {
			addIssue(IssueEmptyValue, key, section, SeverityMedium)
			continue
		}

		stats.CompleteKeys++

		if enVal == trVal && len(enVal) > opts.MinUntranslatedLength && !allow[strings.ToLower(enVal)] {
			addIssue(IssueUntranslated, key, section, SeverityLow)
		}
		if !samePlaceholders(enVal, trVal) {
			addIssue(IssuePlaceholderMismatch, key, section, SeverityMedium)
		}
	}

	sectionNames := make([]string, 0, len(sections))
	for name := range sections {
		sectionNames = append(sectionNames, name)
	}
	sort.Strings(sectionNames)
	for _, name := range sectionNames {
		stats := sections[name]
		if stats.TotalKeys > 0 {
			stats.Completion = float64(stats.CompleteKeys) / float64(stats.TotalKeys) * 100
		}
		report.Sections = append(report.Sections, *stats)
	}

	report.HealthScore = healthScore(report.IssueCounts, report.TotalKeys)

	return report
}

// Flatten reduces a nested dictionary to dotted-path string leaves.
// Non-string scalars are rendered with fmt.Sprint so numeric values still
// participate in the diff.
func Flatten(dict map[string]any) map[string]string {
	flat := map[string]string{}
	flattenInto(flat, "", dict)
	return flat
}

func flattenInto(flat map[string]string, prefix string, dict map[string]any) {
	for key, value := range dict {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenInto(flat, path, v)
		case string:
			flat[path] = v
		case nil:
			flat[path] = ""
		default:
			flat[path] = fmt.Sprint(v)
		}
	}
}

func sectionOf(key string) string {
	if i := strings.Index(key, "."); i >= 0 {
		return key[:i]
	}
	return key
}

// samePlaceholders compares the {token} multisets of the two values.
func samePlaceholders(a, b string) bool {
	return placeholderKey(a) == placeholderKey(b)
}

func placeholderKey(s string) string {
	tokens := placeholderPattern.FindAllString(s, -1)
	sort.Strings(tokens)
	return strings.Join(tokens, "|")
}

func healthScore(counts map[IssueType]int, totalKeys int) int {
	if totalKeys == 0 {
		return 100
	}
	weighted := weightMissing*float64(counts[IssueMissingInTr]+counts[IssueMissingInEn]) +
		weightEmpty*float64(counts[IssueEmptyValue]) +
		weightUntranslated*float64(counts[IssueUntranslated]) +
		weightPlaceholder*float64(counts[IssuePlaceholderMismatch])

	score := int(math.Round(100 - weighted/float64(totalKeys)*100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
