// Where: internal/command/firebase_config.go
// What: update-firebase-config command adapter.
// Why: Validate positional arguments, then hand the patch loop to the usecase.
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	domain "github.com/poruru-code/appgen/internal/domain/firebaseconfig"
	"github.com/poruru-code/appgen/internal/infra/config"
	"github.com/poruru-code/appgen/internal/infra/envutil"
	"github.com/poruru-code/appgen/internal/infra/terraform"
	"github.com/poruru-code/appgen/internal/meta"
	usecase "github.com/poruru-code/appgen/internal/usecase/firebaseconfig"
)

// FirebaseConfigCLI defines the update-firebase-config command line parsed by Kong.
// Positionals are optional so a missing app name prints the usage block.
type FirebaseConfigCLI struct {
	AppName      string `arg:"" optional:"" name:"app-name" help:"App name used when generating the project"`
	Environment  string `arg:"" optional:"" default:"staging" help:"staging, production, or all"`
	Region       string `arg:"" optional:"" help:"Functions region (default: APPGEN_REGION or europe-west1)"`
	Dir          string `short:"C" name:"dir" help:"Generated project root (default: nearest parent with firebase.json)"`
	TerraformBin string `name:"terraform-bin" help:"Terraform executable" default:"terraform"`
	Version      bool   `help:"Show version information"`
	CommonFlags
}

// RunUpdateFirebaseConfig is the update-firebase-config entrypoint.
// Returns 0 when at least one environment was patched, 1 otherwise.
func RunUpdateFirebaseConfig(args []string, deps Dependencies) int {
	deps = deps.withDefaults()

	cli := FirebaseConfigCLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.PatcherName),
		kong.Description("Write terraform's firebase_config output into the generated frontend environment files."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if cli.Version {
		return runVersion(deps.Out)
	}
	if cli.AppName == "" {
		printPatcherUsage(deps.ErrOut)
		return 1
	}
	envs, err := domain.ParseSelector(cli.Environment)
	if err != nil {
		newConsole(deps).Error(err.Error())
		return 1
	}
	if err := cli.prepare(deps); err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	root := config.ResolveProjectRoot(deps.WorkingDir)
	if cli.Dir != "" {
		root = resolvePath(deps.WorkingDir, cli.Dir)
	}

	patcher := usecase.Patcher{
		Terraform: terraform.NewClient(deps.Runner, cli.TerraformBin),
		UI:        newConsole(deps),
	}
	ok := patcher.Run(context.Background(), usecase.Request{
		ProjectRoot:  root,
		AppName:      cli.AppName,
		Environments: envs,
		Region:       patcherRegion(cli.Region),
	})
	if !ok {
		return 1
	}
	return 0
}

func patcherRegion(arg string) string {
	if arg != "" {
		return arg
	}
	if region := envutil.GetHostEnv(envutil.SuffixRegion); region != "" {
		return region
	}
	return meta.DefaultRegion
}

func printPatcherUsage(out io.Writer) {
	name := meta.PatcherName
	fmt.Fprintf(out, "Usage: %s <app-name> [staging|production|all] [region]\n", name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintf(out, "  %s my-app staging\n", name)
	fmt.Fprintf(out, "  %s my-app production us-central1\n", name)
	fmt.Fprintf(out, "  %s my-app all\n", name)
}
