package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/project"
	"github.com/iwvelando/teaser/pkg/constants"
	"github.com/iwvelando/teaser/pkg/output"
	"github.com/iwvelando/teaser/pkg/validation"
)

func newSectionsCmd(a *app) *cobra.Command {
	var outputFormat, fixturePath string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Print the detail view of the project fixture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := validation.ResolveOutputFormat(outputFormat, a.conf.Output.Format)
			if err != nil {
				return err
			}

			path := a.conf.Fixture.Path
			if fixturePath != "" {
				path = fixturePath
			}

			p, err := project.Load(path)
			if err != nil {
				return err
			}

			view := detail.NewBuilder(a.logger, a.conf.Site.Domain).Build(&p.MasterProject)
			a.logger.Debug("rendered project",
				zap.String("op", "main.sections"),
				zap.String("fixture", path),
				zap.Int("sections", len(view.Sections)),
				zap.Int("documents", len(view.Documents)),
			)

			switch format {
			case constants.OutputFormatCSV:
				return output.CsvFormat(cmd.OutOrStdout(), view)
			default:
				return output.PrettyFormat(cmd.OutOrStdout(), view)
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv")
	f.StringVar(&fixturePath, "fixture", "", "project fixture override")
	return cmd
}
