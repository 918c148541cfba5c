// Where: internal/domain/scaffold/actions.go
// What: Action List assembly for the app generator.
// Why: Keep the emitted file set a pure function of the answers.
package scaffold

import "github.com/poruru-code/appgen/internal/domain/answers"

// ActionKind distinguishes file emission from the trailing summary.
type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionSummary
)

// Action is one entry of the Action List. Path is relative to the output base and
// may contain template expressions; Template is a reference under the template root.
type Action struct {
	Kind     ActionKind
	Path     string
	Template string
}

func add(dest, ref string) Action {
	return Action{Kind: ActionAdd, Path: dest, Template: ref}
}

// BuildActions returns the ordered Action List for ctx: the fixed file set, the
// payment files when Stripe is enabled, and one trailing summary action.
// includeFIC and includeGemini only affect the summary text.
func BuildActions(ctx answers.Context) []Action {
	actions := baseActions()
	if ctx.IncludeStripe {
		actions = append(actions, stripeActions()...)
	}
	return append(actions, Action{Kind: ActionSummary})
}

// FileActions filters out the summary action.
func FileActions(actions []Action) []Action {
	files := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.Kind == ActionAdd {
			files = append(files, a)
		}
	}
	return files
}

func baseActions() []Action {
	return []Action{
		// frontend
		add("frontend/package.json", "frontend/package.json.tmpl"),
		add("frontend/.gitignore", "frontend/gitignore.tmpl"),
		add("frontend/angular.json", "frontend/angular.json.tmpl"),
		add("frontend/ionic.config.json", "frontend/ionic.config.json.tmpl"),
		add("frontend/tsconfig.json", "frontend/tsconfig.json"),
		add("frontend/tsconfig.app.json", "frontend/tsconfig.app.json"),
		add("frontend/src/main.ts", "frontend/src/main.ts.tmpl"),
		add("frontend/src/index.html", "frontend/src/index.html.tmpl"),
		add("frontend/src/global.scss", "frontend/src/global.scss"),
		add("frontend/src/polyfills.ts", "frontend/src/polyfills.ts"),
		add("frontend/src/environments/environment.ts", "frontend/src/environments/environment.ts.tmpl"),
		add("frontend/src/environments/environment.prod.ts", "frontend/src/environments/environment.prod.ts.tmpl"),
		add("frontend/src/app/app.component.ts", "frontend/src/app/app.component.ts.tmpl"),
		add("frontend/src/app/app.config.ts", "frontend/src/app/app.config.ts.tmpl"),
		add("frontend/src/app/app.routes.ts", "frontend/src/app/app.routes.ts.tmpl"),
		add("frontend/src/theme/variables.scss", "frontend/src/theme/variables.scss"),

		// frontend assets
		add("frontend/src/assets/logo.svg", "frontend/src/assets/logo.svg.tmpl"),
		add("frontend/src/assets/favicon.svg", "frontend/src/assets/favicon.svg"),
		add("frontend/src/assets/icon/favicon.png", "frontend/src/assets/icon/favicon.png"),

		// frontend services
		add("frontend/src/app/services/user-context.service.ts", "frontend/src/app/services/user-context.service.ts.tmpl"),
		add("frontend/src/app/services/api/organization.service.ts", "frontend/src/app/services/api/organization.service.ts.tmpl"),
		add("frontend/src/app/services/api/profile.service.ts", "frontend/src/app/services/api/profile.service.ts.tmpl"),
		add("frontend/src/app/services/api/practitioner-role.service.ts", "frontend/src/app/services/api/practitioner-role.service.ts.tmpl"),

		// frontend layouts and pages
		add("frontend/src/app/layouts/private-layout/private-layout.page.ts", "frontend/src/app/layouts/private-layout/private-layout.page.ts.tmpl"),
		add("frontend/src/app/pages/public/home/home.page.ts", "frontend/src/app/pages/public/home/home.page.ts.tmpl"),
		add("frontend/src/app/pages/public/privacy/privacy.page.ts", "frontend/src/app/pages/public/privacy/privacy.page.ts.tmpl"),
		add("frontend/src/app/pages/login/login.page.ts", "frontend/src/app/pages/login/login.page.ts.tmpl"),
		add("frontend/src/app/pages/private/home/home.page.ts", "frontend/src/app/pages/private/home/home.page.ts.tmpl"),
		add("frontend/src/app/pages/private/profile/profile.page.ts", "frontend/src/app/pages/private/profile/profile.page.ts.tmpl"),
		add("frontend/src/app/pages/private/privacy/privacy.page.ts", "frontend/src/app/pages/private/privacy/privacy.page.ts.tmpl"),
		add("frontend/src/app/pages/private/org-config/team/team.page.ts", "frontend/src/app/pages/private/org-config/team/team.page.ts.tmpl"),
		add("frontend/src/app/pages/private/org-config/settings/settings.page.ts", "frontend/src/app/pages/private/org-config/settings/settings.page.ts.tmpl"),
		add("frontend/src/app/pages/invites/accept/accept.page.ts", "frontend/src/app/pages/invites/accept/accept.page.ts.tmpl"),
		add("frontend/src/app/pages/home/home.page.ts", "frontend/src/app/pages/home/home.page.ts.tmpl"),

		// functions
		add("functions/.gitignore", "functions/gitignore.tmpl"),
		add("functions/package.json", "functions/package.json.tmpl"),
		add("functions/tsconfig.json", "functions/tsconfig.json"),
		add("functions/src/index.ts", "functions/src/index.ts.tmpl"),
		add("functions/src/config.ts", "functions/src/config.ts.tmpl"),
		add("functions/.env.example", "functions/env.example.tmpl"),
		add("functions/src/routes/api/users.route.ts", "functions/src/routes/api/users.route.ts.tmpl"),
		add("functions/src/routes/api/organizations.route.ts", "functions/src/routes/api/organizations.route.ts.tmpl"),
		add("functions/src/routes/api/practitioner-roles.route.ts", "functions/src/routes/api/practitioner-roles.route.ts.tmpl"),

		// firebase
		add("firebase.json", "firebase/firebase.json.tmpl"),
		add(".firebaserc", "firebase/firebaserc.tmpl"),
		add("firestore.rules", "firebase/firestore.rules"),
		add("firestore.indexes.json", "firebase/firestore.indexes.json"),
		add("storage.rules", "firebase/storage.rules"),

		// terraform
		add("terraform/environments/[[ .appName ]]-staging/main.tf", "terraform/staging/main.tf.tmpl"),
		add("terraform/environments/[[ .appName ]]-production/main.tf", "terraform/production/main.tf.tmpl"),

		// workflows
		add(".github/workflows/[[ .appName ]]-stg.yml", "workflows/app-stg.yml.tmpl"),
		add(".github/workflows/[[ .appName ]]-prod.yml", "workflows/app-prod.yml.tmpl"),

		// docs
		add("docs/_config.yml", "docs/_config.yml.tmpl"),
		add("docs/Gemfile", "docs/Gemfile"),
		add("docs/index.md", "docs/index.md.tmpl"),
	}
}

func stripeActions() []Action {
	return []Action{
		add("frontend/src/app/services/api/payments.service.ts", "frontend/src/app/services/api/payments.service.ts.tmpl"),
		add("frontend/src/app/pages/private/org-config/subscription/subscription.page.ts", "frontend/src/app/pages/private/org-config/subscription/subscription.page.ts.tmpl"),
		add("frontend/src/app/pages/private/org-config/payments/payments.page.ts", "frontend/src/app/pages/private/org-config/payments/payments.page.ts.tmpl"),
		add("functions/src/routes/api/payments.route.ts", "functions/src/routes/api/payments.route.ts.tmpl"),
	}
}
