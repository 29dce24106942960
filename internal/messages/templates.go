package messages

// Template messages.
const (
	TemplatesListFailedFmt   = "list templates for %s: %w"
	TemplatesParseFailedFmt  = "parse template %s: %w"
	TemplatesRenderFailedFmt = "render template %s: %w"
)
