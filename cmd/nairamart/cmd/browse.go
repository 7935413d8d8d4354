package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adaeze/nairamart/flow"
	"github.com/adaeze/nairamart/format"
)

var (
	browsePage     int
	browsePageSize int
	browseFilter   string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the coin catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		catalog := flow.NewCatalogFlow(a.catalog, browsePageSize)
		catalog.SetFilter(browseFilter)
		if err := catalog.LoadPage(cmd.Context(), browsePage); err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		coins := catalog.Visible()
		if len(coins) == 0 {
			cmd.Println("No coins match.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tNAME\tSYMBOL\tPRICE (USD)\tPRICE (NGN)\tMARKET CAP (USD)")
		for _, c := range coins {
			fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\t%s\n",
				c.CMCRank, c.Name, c.Symbol,
				format.USD(c.PriceUSD),
				format.NGN(c.PriceNGN),
				format.Number(c.CirculatingSupply*c.PriceUSD),
			)
		}
		w.Flush()

		page := catalog.Page()
		cmd.Printf("\nPage %d of %d", page.Number, catalog.TotalPages())
		switch {
		case catalog.CanPrev() && catalog.CanNext():
			cmd.Printf("  (--page %d / --page %d)\n", page.Number-1, page.Number+1)
		case catalog.CanNext():
			cmd.Printf("  (next: --page %d)\n", page.Number+1)
		case catalog.CanPrev():
			cmd.Printf("  (previous: --page %d)\n", page.Number-1)
		default:
			cmd.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().IntVarP(&browsePage, "page", "p", 1, "Page number")
	browseCmd.Flags().IntVar(&browsePageSize, "page-size", flow.DefaultPageSize, "Coins per page")
	browseCmd.Flags().StringVarP(&browseFilter, "filter", "f", "", "Filter by name or symbol substring")
}
