// Package stats aggregates file and line counts for the application
// codebase the rewrite recipes operate on.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-enry/go-enry/v2"
)

// Counts pairs a file count with a line count.
type Counts struct {
	Files int `json:"files"`
	Lines int `json:"lines"`
}

// CodeStats holds the walk results over the application source tree.
type CodeStats struct {
	TotalFiles  int                `json:"total_files"`
	TotalLines  int                `json:"total_lines"`
	ByExtension map[string]*Counts `json:"by_extension"`
	ByModule    map[string]*Counts `json:"by_module"`
	ByLanguage  map[string]*Counts `json:"by_language"`
	TestFiles   int                `json:"test_files"`
	TestLines   int                `json:"test_lines"`
}

// SchemaStats describes the Prisma schema, when one exists.
type SchemaStats struct {
	Found  bool `json:"found"`
	Models int  `json:"models"`
	Enums  int  `json:"enums"`
	Lines  int  `json:"lines"`
}

// DependencyStats counts package.json dependencies.
type DependencyStats struct {
	Found           bool `json:"found"`
	Dependencies    int  `json:"dependencies"`
	DevDependencies int  `json:"dev_dependencies"`
	Total           int  `json:"total"`
}

// Report is the full analysis output; JSON-serializable.
type Report struct {
	Generated    time.Time       `json:"generated"`
	Root         string          `json:"root"`
	Code         CodeStats       `json:"code"`
	Database     SchemaStats     `json:"database"`
	Dependencies DependencyStats `json:"dependencies"`
}

var (
	sourceExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".css", ".sql", ".prisma", ".json", ".md"}
	sourceModules    = []string{"app", "components", "lib", "server", "hooks", "types", "utils", "modules"}
	skipDirs         = map[string]bool{"node_modules": true, ".next": true}
)

// Analyzer walks an application root and produces a Report.
type Analyzer struct {
	Extensions []string
	Modules    []string
}

// NewAnalyzer creates an analyzer with the default extension and module
// sets.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Extensions: sourceExtensions, Modules: sourceModules}
}

// Analyze walks src/<module> for each configured module, counts test files
// under tests/, inspects the Prisma schema and package.json, and classifies
// source lines by language. A missing schema or package.json is reported,
// not an error.
func (a *Analyzer) Analyze(root string) (*Report, error) {
	report := &Report{
		Generated: time.Now(),
		Root:      root,
		Code: CodeStats{
			ByExtension: make(map[string]*Counts),
			ByModule:    make(map[string]*Counts),
			ByLanguage:  make(map[string]*Counts),
		},
	}
	for _, ext := range a.Extensions {
		report.Code.ByExtension[ext] = &Counts{}
	}

	allowed := make(map[string]bool, len(a.Extensions))
	for _, ext := range a.Extensions {
		allowed[ext] = true
	}

	for _, module := range a.Modules {
		modulePath := filepath.Join(root, "src", module)
		if _, err := os.Stat(modulePath); err != nil {
			continue
		}
		report.Code.ByModule[module] = &Counts{}
		err := filepath.Walk(modulePath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if skipDirs[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			ext := filepath.Ext(path)
			if !allowed[ext] {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				// Unreadable files are skipped, matching the
				// batch-level absorb-and-continue policy.
				return nil
			}
			lines := countLines(data)
			report.Code.TotalFiles++
			report.Code.TotalLines += lines
			report.Code.ByExtension[ext].Files++
			report.Code.ByExtension[ext].Lines += lines
			report.Code.ByModule[module].Files++
			report.Code.ByModule[module].Lines += lines

			if lang := enry.GetLanguage(filepath.Base(path), data); lang != "" {
				if report.Code.ByLanguage[lang] == nil {
					report.Code.ByLanguage[lang] = &Counts{}
				}
				report.Code.ByLanguage[lang].Files++
				report.Code.ByLanguage[lang].Lines += lines
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", modulePath, err)
		}
	}

	if err := a.countTests(root, report); err != nil {
		return nil, err
	}
	report.Database = analyzeSchema(root)
	report.Dependencies = analyzeDependencies(root)
	return report, nil
}

func (a *Analyzer) countTests(root string, report *Report) error {
	testPath := filepath.Join(root, "tests")
	if _, err := os.Stat(testPath); err != nil {
		return nil
	}
	return filepath.Walk(testPath, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if !strings.HasSuffix(path, ".spec.ts") && !strings.HasSuffix(path, ".test.ts") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		report.Code.TestFiles++
		report.Code.TestLines += countLines(data)
		return nil
	})
}

// analyzeSchema counts model and enum declarations in prisma/schema.prisma.
func analyzeSchema(root string) SchemaStats {
	data, err := os.ReadFile(filepath.Join(root, "prisma", "schema.prisma"))
	if err != nil {
		return SchemaStats{}
	}
	content := string(data)
	return SchemaStats{
		Found:  true,
		Models: strings.Count(content, "model "),
		Enums:  strings.Count(content, "enum "),
		Lines:  len(strings.Split(content, "\n")),
	}
}

// analyzeDependencies counts entries in package.json's dependency maps.
func analyzeDependencies(root string) DependencyStats {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return DependencyStats{}
	}
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return DependencyStats{}
	}
	return DependencyStats{
		Found:           true,
		Dependencies:    len(pkg.Dependencies),
		DevDependencies: len(pkg.DevDependencies),
		Total:           len(pkg.Dependencies) + len(pkg.DevDependencies),
	}
}

// countLines counts lines the way an editor does: a trailing newline does
// not start an extra line, and an empty file has zero.
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := strings.Count(string(data), "\n")
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// SortedKeys returns map keys ordered by descending line count, breaking
// ties alphabetically. Used by the text renderer.
func SortedKeys(m map[string]*Counts) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]].Lines != m[keys[j]].Lines {
			return m[keys[i]].Lines > m[keys[j]].Lines
		}
		return keys[i] < keys[j]
	})
	return keys
}
