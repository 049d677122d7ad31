package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAgendaCommand creates the agenda command
func NewAgendaCommand() *cobra.Command {
	var (
		orderID   int
		requestID int
	)

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the persisted allocation records of a request",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewContainer()
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.RequireDB(); err != nil {
				return err
			}

			records, err := c.Records.FindByRequest(orderID, requestID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Printf("No allocations recorded for order %d request %d\n", orderID, requestID)
				return nil
			}

			fmt.Printf("Order %d request %d\n", orderID, requestID)
			for _, rec := range records {
				fmt.Printf("  %s  %s -> %s  %-24s %-28s %s\n",
					rec.StartsAt.Format("2006-01-02"),
					rec.StartsAt.Format("15:04"),
					rec.EndsAt.Format("15:04"),
					rec.ItemName, rec.ActivityName, rec.ResourceName)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&orderID, "order", 1, "Order group id")
	cmd.Flags().IntVar(&requestID, "request", 1, "Production request id")

	return cmd
}
