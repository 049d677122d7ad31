package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
)

// NewRecipeCommand creates the recipe command group
func NewRecipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Inspect technical sheets",
	}
	cmd.AddCommand(newRecipeShowCommand())
	return cmd
}

func newRecipeShowCommand() *cobra.Command {
	var (
		productID int
		quantity  float64
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a product's bill of materials with computed quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewContainer()
			if err != nil {
				return err
			}
			defer c.Close()

			root, err := c.Recipes.Sheet(productID, recipe.ItemProduct)
			if err != nil {
				return err
			}

			qty := decimal.NewFromFloat(quantity)
			fmt.Printf("%s (item %d) x %s %s\n", root.Name(), root.ItemID(), qty, root.Unit())
			return printTree(c.Recipes, root, qty, "")
		},
	}

	cmd.Flags().IntVar(&productID, "product", 0, "Product item id")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Requested quantity")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func printTree(store recipe.SheetSource, sheet *recipe.TechnicalSheet, quantity decimal.Decimal, indent string) error {
	reqs, err := sheet.ComponentRequirements(quantity)
	if err != nil {
		return err
	}
	for _, req := range reqs {
		fmt.Printf("%s├─ %-28s %10s  %s\n", indent, req.Component.Name,
			req.Quantity, req.Component.ItemType)
		if req.Component.ItemType == recipe.ItemSubproduct {
			child, err := store.Sheet(req.Component.ItemID, recipe.ItemSubproduct)
			if err != nil {
				continue
			}
			if err := printTree(store, child, req.Quantity, indent+"│  "); err != nil {
				return err
			}
		}
	}
	return nil
}
