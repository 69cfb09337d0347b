package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "A template-driven project scaffolding tool"
	MsgNewShort     = "Create a new project from an installed template"
	MsgGitShort     = "Create a new project from a remote template"
	MsgListShort    = "List installed templates"
	MsgInfoShort    = "Show what a template declares"
	MsgAuthorShort  = "Record your author identity for substitutions"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Result messages
	MsgProjectCreatedFormat   = "Created project '%s':\n"
	MsgCreatedItem            = "  ✓ %s\n"
	MsgVCSInitializedFormat   = "Initialized %s repository\n"
	MsgNoTemplatesFound       = "No templates found."
	MsgTemplatesDirFormat     = "Install templates under %s to list them here.\n"
	MsgAvailableTemplates     = "Available templates:"
	MsgCatalogTemplatesFormat = "Catalog templates (%s):\n"
	MsgTemplateItem           = "  %s\n"
	MsgAuthorSavedFormat      = "Author settings saved to %s\n"

	// Template info output
	MsgInfoHeaderFormat  = "%s (%s)\n"
	MsgInfoLicenseFormat = "  license: %s\n"
	MsgInfoVCSFormat     = "  version control: %s\n"
	MsgInfoVersionFormat = "  version: %s\n"
	MsgInfoReadme        = "  readme: generated for new projects\n"
	MsgInfoTreeHeader    = "  declares:\n"
	MsgInfoTreeItem      = "    %s\n"

	// Version output
	MsgVersionFormat = "plinth version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Prompts
	MsgPromptAuthorName   = "Author name"
	MsgPromptAuthorEmail  = "Author email"
	MsgPromptAuthorGithub = "GitHub username (optional)"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (auto, term, text)"
	MsgFlagForce   = "Materialize into the target even if it already exists"
)
