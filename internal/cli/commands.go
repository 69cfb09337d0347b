// Package cli assembles the plinth command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"plinth/internal/version"
	"plinth/pkg/commands/author"
	"plinth/pkg/commands/create"
	"plinth/pkg/commands/info"
	"plinth/pkg/commands/list"
	"plinth/pkg/config"
	"plinth/pkg/logging"
	"plinth/pkg/manifest"
	"plinth/pkg/types"
	"plinth/pkg/ui"
)

// defaultTemplatesRepository is where `plinth git USER/REPO` resolves
// template references unless the settings file overrides it.
const defaultTemplatesRepository = "https://github.com"

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		formatFlag string
	)

	rootCmd := &cobra.Command{
		Use:   "plinth",
		Short: MsgRootShort,
		Long: `plinth creates new projects from templates. A template is a directory
with a template.toml manifest declaring directories, placeholder files,
and text templates; plinth substitutes your project name, author
identity, license, and custom variables into all of them and can
initialize version control on the result.`,
		Version: version.Full(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "auto", MsgFlagFormat)

	// Add all commands
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newGitCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newAuthorCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadSettings reads the global settings file from its default location.
func loadSettings() config.Config {
	return config.Load(config.Path())
}

// templatesRepository returns the catalog remote templates resolve
// against.
func templatesRepository(cfg config.Config) string {
	if cfg.TemplatesRepository != "" {
		return cfg.TemplatesRepository
	}
	return defaultTemplatesRepository
}

// resolveFormat maps the --format flag to a concrete output format for
// the command's writer.
func resolveFormat(cmd *cobra.Command) ui.Format {
	raw, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(raw)
	if err != nil {
		log.Warn().Str("format", raw).Msg("Unknown output format, using auto")
	}
	if file, ok := cmd.OutOrStdout().(*os.File); ok {
		return ui.Resolve(format, file)
	}
	if format == ui.FormatAuto {
		return ui.FormatText
	}
	return format
}

func newNewCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "new TEMPLATE NAME",
		Aliases: []string{"n"},
		Short:   MsgNewShort,
		Long: `New materializes a project named NAME from a template directory.
TEMPLATE is looked up as a local directory first and then under the
per-user template directory; the first one carrying a template.toml
wins.`,
		Args: cobra.ExactArgs(2),
		Example: `  # Create my-app from the template in ./rust-lib
  plinth new rust-lib my-app

  # Overwrite an existing target
  plinth new rust-lib my-app --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			template, name := args[0], args[1]

			dir, err := manifest.FindDir(template, manifest.GlobalTemplatesDir())
			if err != nil {
				return err
			}
			m, err := manifest.Load(dir)
			if err != nil {
				return err
			}

			result, err := create.CreateProject(create.Options{
				Name:     name,
				Manifest: m,
				Config:   loadSettings(),
				Force:    force,
			})
			if err != nil {
				return err
			}

			printCreateResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}

func newGitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "git REPO NAME",
		Aliases: []string{"g"},
		Short:   MsgGitShort,
		Long: `Git fetches a template repository and materializes a project named
NAME from it. REPO is resolved against https://github.com, so
"user/repo" fetches https://github.com/user/repo; set
templates_repository in the settings file to resolve against another
catalog (any URL or filesystem path).`,
		Args: cobra.ExactArgs(2),
		Example: `  # Create my-app from github.com/user/rust-lib
  plinth git user/rust-lib my-app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadSettings()

			result, err := create.CreateFromRepository(create.RepositoryOptions{
				Repository: templatesRepository(cfg),
				Template:   args[0],
				Name:       args[1],
				Config:     cfg,
				Force:      force,
			})
			if err != nil {
				return err
			}

			printCreateResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   MsgListShort,
		Long:    `List displays the templates installed in the per-user template directory.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadSettings()

			result, err := list.ListTemplates(list.Options{Catalog: cfg.TemplatesRepository})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			format := resolveFormat(cmd)

			if len(result.Templates) == 0 && len(result.CatalogTemplates) == 0 {
				fmt.Fprintln(out, MsgNoTemplatesFound)
				fmt.Fprintf(out, MsgTemplatesDirFormat, result.TemplatesDir)
				return nil
			}

			if len(result.Templates) > 0 {
				fmt.Fprintln(out, MsgAvailableTemplates)
				for _, name := range result.Templates {
					fmt.Fprintf(out, MsgTemplateItem, ui.Sprint(format, "Template", name))
				}
			}
			if len(result.CatalogTemplates) > 0 {
				fmt.Fprintf(out, MsgCatalogTemplatesFormat, result.CatalogDir)
				for _, name := range result.CatalogTemplates {
					fmt.Fprintf(out, MsgTemplateItem, ui.Sprint(format, "Template", name))
				}
			}
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info TEMPLATE",
		Short: MsgInfoShort,
		Long: `Info resolves a template the same way new does and shows what its
manifest declares, followed by the template's own README when it has
one.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Inspect the installed rust-lib template
  plinth info rust-lib`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := info.TemplateInfo(info.Options{Name: args[0]})
			if err != nil {
				return err
			}

			printTemplateInfo(cmd, result)
			return nil
		},
	}
}

func newAuthorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "author",
		Short: MsgAuthorShort,
		Long: `Author interactively records the name, email, and GitHub username
substituted into templates, in the global settings file. Settings other
than the author identity are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path()
			current := config.Load(path)

			var existing types.Author
			if current.Author != nil {
				existing = *current.Author
			}

			identity, err := promptAuthor(existing)
			if err != nil {
				return err
			}

			result, err := author.SetAuthor(author.Options{ConfigPath: path, Author: identity})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgAuthorSavedFormat, result.Path)
			return nil
		},
	}
}

// promptAuthor collects the identity interactively, prefilled with the
// current values.
func promptAuthor(current types.Author) (types.Author, error) {
	name, err := pterm.DefaultInteractiveTextInput.WithDefaultValue(current.Name).Show(MsgPromptAuthorName)
	if err != nil {
		return types.Author{}, err
	}

	email, err := pterm.DefaultInteractiveTextInput.WithDefaultValue(current.Email).Show(MsgPromptAuthorEmail)
	if err != nil {
		return types.Author{}, err
	}

	handle, err := pterm.DefaultInteractiveTextInput.WithDefaultValue(current.GithubUsername).Show(MsgPromptAuthorGithub)
	if err != nil {
		return types.Author{}, err
	}

	return types.Author{
		Name:           strings.TrimSpace(name),
		Email:          strings.TrimSpace(email),
		GithubUsername: strings.TrimSpace(handle),
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

// printCreateResult lists what was materialized, in pipeline order.
func printCreateResult(cmd *cobra.Command, result *create.Result) {
	out := cmd.OutOrStdout()
	format := resolveFormat(cmd)

	fmt.Fprintf(out, MsgProjectCreatedFormat, result.Name)
	for _, dir := range result.Directories {
		fmt.Fprintf(out, MsgCreatedItem, ui.Sprint(format, "FilePath", dir+"/"))
	}
	for _, file := range result.Files {
		fmt.Fprintf(out, MsgCreatedItem, ui.Sprint(format, "FilePath", file))
	}
	if result.LicenseWritten {
		fmt.Fprintf(out, MsgCreatedItem, ui.Sprint(format, "FilePath", "LICENSE"))
	}
	if result.ReadmeWritten {
		fmt.Fprintf(out, MsgCreatedItem, ui.Sprint(format, "FilePath", "README.md"))
	}
	for _, tmpl := range result.Templates {
		fmt.Fprintf(out, MsgCreatedItem, ui.Sprint(format, "FilePath", tmpl))
	}
	for _, script := range result.Scripts {
		fmt.Fprintf(out, MsgCreatedItem, ui.Sprint(format, "FilePath", script))
	}
	if result.VersionControl != "" {
		fmt.Fprintf(out, MsgVCSInitializedFormat, ui.Sprint(format, "Success", result.VersionControl))
	}
}

func printTemplateInfo(cmd *cobra.Command, result *info.Result) {
	out := cmd.OutOrStdout()
	format := resolveFormat(cmd)
	m := result.Manifest

	fmt.Fprintf(out, MsgInfoHeaderFormat,
		ui.Sprint(format, "Template", result.Name),
		ui.Sprint(format, "Muted", result.Path))

	if m.License != nil {
		fmt.Fprintf(out, MsgInfoLicenseFormat, m.License)
	}
	if m.Config != nil && m.Config.VersionControl != nil {
		fmt.Fprintf(out, MsgInfoVCSFormat, m.Config.VersionControl)
	}
	if m.Config != nil && m.Config.Version != "" {
		fmt.Fprintf(out, MsgInfoVersionFormat, m.Config.Version)
	}
	if m.WithReadme {
		fmt.Fprint(out, MsgInfoReadme)
	}

	declared := declaredTree(m)
	if len(declared) > 0 {
		fmt.Fprint(out, MsgInfoTreeHeader)
		for _, entry := range declared {
			fmt.Fprintf(out, MsgInfoTreeItem, ui.Sprint(format, "FilePath", entry))
		}
	}

	if result.Readme != "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, ui.NewMarkdownRenderer(format).Render(result.Readme))
	}
}

// declaredTree lists the manifest's file tree in pipeline order, before
// substitution.
func declaredTree(m *manifest.Manifest) []string {
	var entries []string
	for _, dir := range m.Files.Directories {
		entries = append(entries, dir+"/")
	}
	entries = append(entries, m.Files.Files...)
	entries = append(entries, m.Files.Templates...)
	entries = append(entries, m.Files.Scripts...)
	return entries
}
