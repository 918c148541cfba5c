// Where: internal/usecase/generate/test_helpers_test.go
// What: Shared fakes for generate workflow tests.
// Why: Drive prompts and templates without a terminal or embedded assets.
package generate

import (
	"errors"
	"testing/fstest"

	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/poruru-code/appgen/internal/domain/scaffold"
)

// scriptedPrompter replays inputs and confirmations in call order.
type scriptedPrompter struct {
	inputs   []string
	confirms []bool
	titles   []string
	defaults []string
}

func (p *scriptedPrompter) Input(title, defaultValue string, _ []string, _ func(string) error) (string, error) {
	p.titles = append(p.titles, title)
	p.defaults = append(p.defaults, defaultValue)
	if len(p.inputs) == 0 {
		return "", errors.New("unexpected input prompt: " + title)
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	return value, nil
}

func (p *scriptedPrompter) Confirm(title string, _ bool) (bool, error) {
	p.titles = append(p.titles, title)
	if len(p.confirms) == 0 {
		return false, errors.New("unexpected confirm prompt: " + title)
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

// acmeInputs answers the eight input prompts; empty strings accept defaults.
func acmeInputs() []string {
	return []string{
		"acme-crm",
		"Acme CRM",
		"",
		"acme/acme-crm",
		"acme.example.com",
		"",
		"ABCDEF-123456-7890AB",
		"",
	}
}

// fakeTemplates returns a template tree covering every reference of the full Action List.
func fakeTemplates() fstest.MapFS {
	ctx := answers.Context{Answers: answers.Answers{IncludeStripe: true}}
	fsys := fstest.MapFS{}
	for _, action := range scaffold.FileActions(scaffold.BuildActions(ctx)) {
		fsys[action.Template] = &fstest.MapFile{Data: []byte("name=[[ .appName ]]\n")}
	}
	return fsys
}

func fixedSuffix() int { return 42 }
