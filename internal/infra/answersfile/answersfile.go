// Where: internal/infra/answersfile/answersfile.go
// What: Load a YAML answers file for non-interactive generation.
// Why: CI and repeat runs need the same Answer Set without a terminal.
package answersfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/poruru-code/appgen/assets"
	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Load reads path, validates it against the answers schema, and returns a
// normalized Answer Set. Confirms absent from the file take their prompt
// defaults; inputs absent from the file take d and then the built-in defaults.
func Load(path string, d answers.Defaults) (answers.Answers, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return answers.Answers{}, fmt.Errorf("read answers file: %w", err)
	}
	return Parse(content, d)
}

// Parse is Load for in-memory content.
func Parse(content []byte, d answers.Defaults) (answers.Answers, error) {
	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return answers.Answers{}, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document map[string]any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return answers.Answers{}, fmt.Errorf("decode answers file: %w", err)
	}
	if document == nil {
		document = map[string]any{}
	}

	sch, err := loadSchema()
	if err != nil {
		return answers.Answers{}, err
	}
	if err := sch.Validate(document); err != nil {
		return answers.Answers{}, fmt.Errorf("invalid answers file: %w", err)
	}

	var a answers.Answers
	if err := json.Unmarshal(jsonData, &a); err != nil {
		return answers.Answers{}, fmt.Errorf("decode answers file: %w", err)
	}
	for _, q := range answers.Questions() {
		if q.Kind != answers.KindConfirm {
			continue
		}
		if _, ok := document[q.Name]; !ok {
			a.SetFlag(q.Name, q.FlagDefault)
		}
	}

	a = answers.ApplyDefaults(a, d).Normalize()
	if err := a.Validate(); err != nil {
		return answers.Answers{}, err
	}
	return a, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(assets.AnswersSchemaURL, bytes.NewReader(assets.AnswersSchema)); err != nil {
			schemaErr = fmt.Errorf("load answers schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(assets.AnswersSchemaURL)
	})
	return compiledSchema, schemaErr
}
