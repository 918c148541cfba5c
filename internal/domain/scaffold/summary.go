// Where: internal/domain/scaffold/summary.go
// What: Post-generation instructions printed after all files are written.
// Why: Tell the user which features were included and how to provision the app.
package scaffold

import (
	"fmt"
	"strings"

	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/poruru-code/appgen/internal/meta"
)

const banner = "======================================================================"

// SummaryLines returns the instruction block for a generated app rooted at outputDir.
func SummaryLines(ctx answers.Context, outputDir string) []string {
	lines := []string{
		"",
		banner,
		"                     APP GENERATED SUCCESSFULLY                       ",
		banner,
		"",
		fmt.Sprintf("  App: %s", ctx.DisplayName),
		fmt.Sprintf("  Path: %s", outputDir),
		fmt.Sprintf("  Projects: %s (staging), %s (production)", ctx.StagingProjectID, ctx.ProductionProjectID),
		"",
		"  FEATURES INCLUDED:",
		"  - Public area with header/footer",
		"  - Private area with sidemenu and organization switcher",
		"  - Multi-tenant organization management",
		"  - Invites and collaborators",
	}
	if ctx.IncludeStripe {
		lines = append(lines, "  - Stripe: Subscriptions and Payments")
	}
	if ctx.IncludeFIC {
		lines = append(lines, "  - Fatture in Cloud: Italian invoicing")
	}
	if ctx.IncludeGemini {
		lines = append(lines, "  - Google Gemini AI integration")
	}
	lines = append(lines,
		"",
		"  NEXT STEPS:",
		"",
		"  1. TERRAFORM (create GCP + Firebase projects):",
		fmt.Sprintf("     cd %s/%s-staging", meta.TerraformEnvironmentsDir, ctx.AppName),
		"     terraform init && terraform apply",
		"",
		"  2. UPDATE FIREBASE CONFIG (automatic):",
		fmt.Sprintf("     %s %s staging %s", meta.PatcherName, ctx.AppName, ctx.Region),
		"",
		"  3. INSTALL DEPENDENCIES AND START:",
		"     npm install",
		"     cd frontend && npm start",
		"",
		"  4. (Optional) FIREBASE RULES:",
		"     firebase deploy --only firestore:rules,storage:rules",
		"",
		banner,
		"",
	)
	return lines
}

// Summary joins SummaryLines with newlines.
func Summary(ctx answers.Context, outputDir string) string {
	return strings.Join(SummaryLines(ctx, outputDir), "\n") + "\n"
}
