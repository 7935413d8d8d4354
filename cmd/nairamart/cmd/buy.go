package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaeze/nairamart/flow"
	"github.com/adaeze/nairamart/format"
)

var (
	buyCoinID   int64
	buyQuantity float64
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Buy a cryptocurrency",
	Long: `Starts a purchase for the selected coin. On success the hosted
checkout URL is printed; the payment completes there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		purchase := flow.NewPurchaseFlow(a.catalog, a.session, a.nav)
		if err := purchase.Start(cmd.Context(), buyCoinID); err != nil {
			if errors.Is(err, flow.ErrNotAuthenticated) {
				// The navigator already printed the login hint.
				return err
			}
			return fmt.Errorf("%s: %w", purchase.ErrMessage(), err)
		}

		selected := purchase.Selected()
		if selected == nil {
			return fmt.Errorf("coin %d is not in the selectable set; run `nairamart browse`", buyCoinID)
		}
		purchase.SetQuantity(buyQuantity)

		cmd.Printf("Cryptocurrency:  %s (%s)\n", selected.Name, selected.Symbol)
		cmd.Printf("Price per unit:  %s\n", format.NGN(selected.PriceNGN))
		cmd.Printf("Quantity:        %g\n", purchase.Quantity())
		cmd.Printf("Total amount:    %s\n\n", format.NGN(purchase.Total()))

		if err := purchase.Submit(cmd.Context()); err != nil {
			return fmt.Errorf("%s: %w", purchase.ErrMessage(), err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buyCmd)
	buyCmd.Flags().Int64VarP(&buyCoinID, "coin", "c", 0, "Coin id to buy")
	buyCmd.Flags().Float64VarP(&buyQuantity, "quantity", "q", 1, "Quantity to buy (fractional allowed)")
	buyCmd.MarkFlagRequired("coin")
}
