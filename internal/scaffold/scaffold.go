package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/aidev-labs/aidev/internal/store"
)

// EntryData holds the template variables available to entry templates.
type EntryData struct {
	Name        string // e.g., "code-review"
	Category    string // singular label, e.g., "skill"
	Description string // Human-readable description
	Date        string // Creation date, YYYY-MM-DD
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputPath string
	Files      []string
}

// Generate creates a new entry skeleton under the store's core/ tree.
// Skills become directories with a SKILL.md; the flat categories become a
// single markdown file. Existing entries are never overwritten.
func Generate(s *store.Store, category, name, description string) (*Result, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	setDir := path.Join("templates", category)
	entries, err := fs.ReadDir(templatesFS, setDir)
	if err != nil {
		return nil, fmt.Errorf("no scaffold templates for category %q", category)
	}

	if s.HasEntry(category, name) {
		return nil, fmt.Errorf("%s/%s already exists in the store", category, name)
	}

	data := &EntryData{
		Name:        name,
		Category:    strings.TrimSuffix(category, "s"),
		Description: description,
		Date:        time.Now().Format("2006-01-02"),
	}
	if data.Description == "" {
		data.Description = fmt.Sprintf("Describe the %s %s here.", name, data.Category)
	}

	if category == "skills" {
		return generateDir(s, category, name, setDir, entries, data)
	}
	return generateFile(s, category, name, path.Join(setDir, entries[0].Name()), data)
}

// generateDir renders every template of the set into a new entry directory.
func generateDir(s *store.Store, category, name, setDir string, entries []fs.DirEntry, data *EntryData) (*Result, error) {
	outputDir := filepath.Join(s.CategoryPath(category), name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outputDir, err)
	}

	result := &Result{OutputPath: outputDir}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		rendered, err := render(path.Join(setDir, entry.Name()), data)
		if err != nil {
			return nil, err
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		if err := os.WriteFile(filepath.Join(outputDir, outName), rendered, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outName, err)
		}
		result.Files = append(result.Files, outName)
	}
	return result, nil
}

// generateFile renders the set's single template to core/<category>/<name>.md.
func generateFile(s *store.Store, category, name, tmplPath string, data *EntryData) (*Result, error) {
	rendered, err := render(tmplPath, data)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(s.CategoryPath(category), name+".md")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
	}
	if err := os.WriteFile(outPath, rendered, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return &Result{OutputPath: outPath, Files: []string{name + ".md"}}, nil
}

func render(tmplPath string, data *EntryData) ([]byte, error) {
	tmplBytes, err := fs.ReadFile(templatesFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(path.Base(tmplPath)).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("entry name is empty")
	}
	if strings.ContainsAny(name, "/\\ ") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid entry name %q: use letters, digits, - and _", name)
	}
	return nil
}
