// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep binary names, env prefixes, and generated layout names in one place.
package meta

const (
	// Project Identity
	AppName          = "appgen"
	PatcherName      = "update-firebase-config"
	EnvPrefix        = "APPGEN"
	DefaultGenerator = "app"

	// Config Layout
	ConfigDirName  = "appgen"
	ConfigFileName = "config.yaml"

	// Generated Project Layout
	TerraformEnvironmentsDir = "terraform/environments"
	FrontendEnvironmentsDir  = "frontend/src/environments"
	WorkflowsDir             = ".github/workflows"

	// GCP Defaults
	DefaultRegion      = "europe-west1"
	DefaultDescription = "A Firebase application"

	// Terraform
	TerraformBinary      = "terraform"
	FirebaseConfigOutput = "firebase_config"
)
