package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/palindromer/filter"
	"github.com/katalvlaran/palindromer/output"
)

// newCheckCmd builds the dictionary re-check of a text result file.
func newCheckCmd(a *app) *cobra.Command {
	var filtered string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Print the lines of a result file whose words are all in the dictionary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Output.Path
			if len(args) == 1 {
				path = args[0]
			}

			lines, err := output.ReadTextFile(path)
			if err != nil {
				return err
			}
			lex, err := loadLexicon(a)
			if err != nil {
				return err
			}

			known := filter.FilterKnown(lines, lex)
			a.logger.Info("checked result file",
				zap.String("path", path),
				zap.Int("lines", len(lines)),
				zap.Int("known", len(known)))

			if filtered != "" {
				w, err := output.CreateText(filtered)
				if err != nil {
					return err
				}
				if err := w.Write(cmd.Context(), output.Run{}, known); err != nil {
					_ = w.Close()
					return err
				}
				return w.Close()
			}

			w := output.NewTextWriter(cmd.OutOrStdout())
			return w.Write(cmd.Context(), output.Run{}, known)
		},
	}
	cmd.Flags().StringVarP(&filtered, "filtered", "f", "", "Write the kept lines to this file instead of stdout")

	return cmd
}
