package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewStockCommand creates the stock command group
func NewStockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inspect and adjust stock levels",
	}
	cmd.AddCommand(newStockGetCommand())
	cmd.AddCommand(newStockSetCommand())
	return cmd
}

func newStockGetCommand() *cobra.Command {
	var itemID int

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the current stock level of an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewContainer()
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.RequireDB(); err != nil {
				return err
			}

			level, err := c.Stock.CurrentLevel(itemID)
			if err != nil {
				return err
			}
			fmt.Printf("Item %d: %s\n", itemID, level)
			return nil
		},
	}

	cmd.Flags().IntVar(&itemID, "item", 0, "Item id")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newStockSetCommand() *cobra.Command {
	var (
		itemID int
		name   string
		level  float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the stock level of an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewContainer()
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.RequireDB(); err != nil {
				return err
			}

			lvl := decimal.NewFromFloat(level)
			if err := c.Stock.Set(itemID, name, lvl); err != nil {
				return err
			}
			fmt.Printf("Item %d set to %s\n", itemID, lvl)
			return nil
		},
	}

	cmd.Flags().IntVar(&itemID, "item", 0, "Item id")
	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().Float64Var(&level, "level", 0, "Stock level")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}
