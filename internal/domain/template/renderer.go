// Where: internal/domain/template/renderer.go
// What: Render scaffold templates and destination paths.
// Why: One text engine (sprig + case helpers) for every generated file.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Delimiters differ from Go's default so Angular `{{ }}` bindings and GitHub
// Actions `${{ }}` expressions pass through untouched.
const (
	LeftDelim  = "[["
	RightDelim = "]]"
)

// TemplateSuffix marks files that are rendered; everything else is copied verbatim.
const TemplateSuffix = ".tmpl"

// Renderer renders named templates from a filesystem rooted at the template base.
type Renderer struct {
	fsys  fs.FS
	cache sync.Map
}

// NewRenderer returns a Renderer reading templates from fsys.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{fsys: fsys}
}

// IsTemplate reports whether the reference is rendered rather than copied.
func IsTemplate(ref string) bool {
	return strings.HasSuffix(ref, TemplateSuffix)
}

// Render produces the bytes for a template reference. Non-template references are
// returned verbatim. Missing files and unresolved keys are errors.
func (r *Renderer) Render(ref string, data map[string]any) ([]byte, error) {
	if r == nil || r.fsys == nil {
		return nil, fmt.Errorf("template filesystem is not configured")
	}
	if !IsTemplate(ref) {
		raw, err := fs.ReadFile(r.fsys, ref)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", ref, err)
		}
		return raw, nil
	}

	tmpl, err := r.load(ref)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s: %w", ref, err)
	}
	return buf.Bytes(), nil
}

// RenderString renders an inline template such as a destination path.
func RenderString(text string, data map[string]any) (string, error) {
	if !strings.Contains(text, LeftDelim) {
		return text, nil
	}
	tmpl, err := newTemplate("inline").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", text, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %q: %w", text, err)
	}
	return buf.String(), nil
}

func (r *Renderer) load(ref string) (*template.Template, error) {
	if value, ok := r.cache.Load(ref); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", ref)
		}
		return cached, nil
	}
	raw, err := fs.ReadFile(r.fsys, ref)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", ref, err)
	}
	tmpl, err := newTemplate(path.Base(ref)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", ref, err)
	}
	r.cache.Store(ref, tmpl)
	return tmpl, nil
}

func newTemplate(name string) *template.Template {
	return template.New(name).
		Delims(LeftDelim, RightDelim).
		Option("missingkey=error").
		Funcs(FuncMap())
}

// FuncMap is sprig's text function map overlaid with the scaffold case helpers.
func FuncMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	for name, fn := range helperFuncs() {
		funcs[name] = fn
	}
	return funcs
}
