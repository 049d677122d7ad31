package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

const journeyLayout = "2006-01-02 15:04"

// NewScheduleCommand creates the schedule command group
func NewScheduleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule production orders",
	}
	cmd.AddCommand(newScheduleRunCommand())
	return cmd
}

func newScheduleRunCommand() *cobra.Command {
	var (
		orderID   int
		requestID int
		productID int
		quantity  float64
		startStr  string
		endStr    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one production order through backward allocation",
		Long: `Builds the order structure from the technical sheet catalog, expands
its activities, generates the comanda and executes the backward allocation.
On any failure the whole order is rolled back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := time.ParseInLocation(journeyLayout, endStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
			var start time.Time
			if startStr != "" {
				if start, err = time.ParseInLocation(journeyLayout, startStr, time.Local); err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
			} else {
				start = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
			}
			journey, err := shared.NewWindow(start, end)
			if err != nil {
				return err
			}

			c, err := NewContainer()
			if err != nil {
				return err
			}
			defer c.Close()

			order := scheduler.NewProductionOrder(orderID, requestID, productID,
				decimal.NewFromFloat(quantity), journey, c.OrderDeps())

			if err := order.BuildStructure(); err != nil {
				return err
			}
			if err := order.BuildActivities(); err != nil {
				return err
			}
			if _, err := order.GenerateComanda(); err != nil {
				return err
			}
			if err := order.Execute(); err != nil {
				return fmt.Errorf("order rolled back: %w", err)
			}

			fmt.Printf("Order %d request %d scheduled\n", orderID, requestID)
			for _, act := range order.Activities() {
				if !act.Allocated() {
					continue
				}
				fmt.Printf("  %-30s %s", act.Name(), act.Window())
				for _, p := range act.Placements() {
					fmt.Printf("  [%s]", p.ResourceName)
				}
				for _, e := range act.Crew() {
					fmt.Printf("  (%s)", e.Name())
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&orderID, "order", 1, "Order group id")
	cmd.Flags().IntVar(&requestID, "request", 1, "Production request id")
	cmd.Flags().IntVar(&productID, "product", 0, "Product item id")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Requested quantity")
	cmd.Flags().StringVar(&startStr, "start", "", "Journey start (YYYY-MM-DD HH:MM, default midnight of end day)")
	cmd.Flags().StringVar(&endStr, "end", "", "Journey end / deadline (YYYY-MM-DD HH:MM)")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
