// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var errNoDB = errors.New("history needs --db or a db key in the config file")

func historyCmd(a *app) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "List recorded results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DB == "" {
				return errNoDB
			}
			store, err := a.openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer a.closeStore(store)

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if _, err = fmt.Fprintln(tw, "ID\tSOLVED\tNAME\tSTATES\tKIND\tCLASSES\tRESIDUAL"); err != nil {
				return err
			}
			for _, r := range runs {
				if _, err = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%d\t%.3g\n",
					r.ID, r.SolvedAt.Format(time.RFC3339), r.Name, r.States, r.Kind, r.ClosedClasses, r.Residual); err != nil {
					return err
				}
			}

			return tw.Flush()
		},
	}
	c.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results")

	return c
}
