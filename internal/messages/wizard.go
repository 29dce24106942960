package messages

// Install wizard messages.
const (
	WizardRequiresTerminal           = "the install wizard requires an interactive terminal; re-run without --interactive"
	WizardCancelled                  = "install wizard cancelled"
	WizardReduxTitle                 = "Use Redux?"
	WizardReduxDescription           = "Generates a store, reducers and a connected container instead of a plain component."
	WizardServerRenderingTitle       = "Enable server-side rendering?"
	WizardServerRenderingDescription = "Configures a server bundle and prerenders components."
	WizardLintersTitle               = "Install linters"
	WizardLinterJSLabel              = "JavaScript (eslint)"
	WizardLinterRubyLabel            = "Ruby (rubocop)"
	WizardPlanTitle                  = "Installation plan"
	WizardPlanBodyFmt                = "Steps: %s"
	WizardProceedTitle               = "Proceed with installation?"
)
