package main

import (
	"github.com/spf13/cobra"

	"github.com/redmonkez12/plan-a-meal/internal/food"
)

func newFoodCmd() *cobra.Command {
	foodCmd := &cobra.Command{
		Use:   "food",
		Short: "Inspect food items",
	}

	foodCmd.AddCommand(newListFoodCmd())
	return foodCmd
}

func newListFoodCmd() *cobra.Command {
	filter := food.Filter{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List food items, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			items, err := food.NewRepository(db, cfg.Database.FoodTableName).List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			renderTable(cmd.OutOrStdout(), foodHeaders, foodRows(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "case-insensitive name substring")
	cmd.Flags().IntVar(&filter.Limit, "limit", 50, "maximum number of items")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "number of items to skip")
	return cmd
}

var foodHeaders = []string{"UUID", "Name", "Brand", "Weight", "Calories", "Protein", "Carbs"}

func foodRows(items []*food.Food) [][]any {
	rows := make([][]any, 0, len(items))
	for _, f := range items {
		rows = append(rows, []any{
			f.ID, f.Name, orDash(f.Brand), orDash(f.Weight),
			orDash(f.Calories), orDash(f.Protein), orDash(f.TotalCarbohydrate),
		})
	}
	return rows
}
