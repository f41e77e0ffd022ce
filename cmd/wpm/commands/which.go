package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/wpm/internal/core/domain"
)

func (c *CLI) newWhichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "which <command>",
		Short: "Show which installed module provides a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()

			located, err := c.app.Locate(cmd.Context(), name)
			if err != nil {
				if errors.Is(err, domain.ErrCommandNotFoundAnywhere) {
					if info, suggestErr := c.app.Suggest(cmd.Context(), name); suggestErr == nil {
						_, _ = fmt.Fprintf(out, "Command %q is not installed. Package %q %s provides it; install it with:\n    wpm install %s\n",
							name, info.PackageName, info.Version, info.PackageName)
					}
				}
				return err
			}

			scope := "local"
			if located.IsGlobal {
				scope = "global"
			}

			_, _ = fmt.Fprintf(out, "%s (%s)\n", name, scope)
			_, _ = fmt.Fprintf(out, "  source:  %s\n", located.Source)
			_, _ = fmt.Fprintf(out, "  package: %s\n", located.ManifestDir)
			_, _ = fmt.Fprintf(out, "  module:  %s\n", located.ModuleName)
			if located.Args != "" {
				_, _ = fmt.Fprintf(out, "  args:    %s\n", located.Args)
			}

			if showKey, _ := cmd.Flags().GetBool("cache-key"); showKey {
				key, keyErr := c.app.CacheKey(cmd.Context(), located)
				if keyErr != nil {
					return keyErr
				}
				_, _ = fmt.Fprintf(out, "  cache:   %s\n", key)
			}

			return nil
		},
	}
	cmd.Flags().Bool("cache-key", false, "Also print the module's content cache key")
	return cmd
}
