// Where: assets/scaffold_templates_embed.go
// What: Embed scaffold templates and the answers file schema.
// Why: Ship a single binary that needs no template directory next to it.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templatesFS embed.FS

// AnswersSchema is the JSON schema for --answers files.
//
//go:embed schema/answers.schema.json
var AnswersSchema []byte

// AnswersSchemaURL is the resource name the schema is compiled under.
const AnswersSchemaURL = "appgen://schema/answers.schema.json"

// Templates returns the template tree rooted at templates/.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
