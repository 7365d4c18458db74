package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"greenearth.GO/config"
	"greenearth.GO/core/price"
	"greenearth.GO/service/catalog"
)

const catalogCommandTimeout = 30 * time.Second

var (
	plantsCategory string
	plantID        string
)

func catalogContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), catalogCommandTimeout)
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "catalog:categories",
	Short: "List plant categories from the catalog API",
	RunE: func(c *cobra.Command, args []string) error {
		ctx, cancel := catalogContext()
		defer cancel()
		client := catalog.NewClient(config.AppConfig.Catalog)
		defer client.Close()

		categories, err := client.Categories(ctx)
		if err != nil {
			return err
		}
		for _, cat := range categories {
			fmt.Fprintf(c.OutOrStdout(), "%s\t%s\n", cat.ID, cat.Name)
		}
		return nil
	},
}

var catalogPlantsCmd = &cobra.Command{
	Use:   "catalog:plants",
	Short: "List plants, optionally scoped to a category",
	RunE: func(c *cobra.Command, args []string) error {
		ctx, cancel := catalogContext()
		defer cancel()
		client := catalog.NewClient(config.AppConfig.Catalog)
		defer client.Close()

		plants, err := client.Plants(ctx, plantsCategory)
		if err != nil {
			return err
		}
		for _, p := range plants {
			fmt.Fprintf(c.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, price.Format(p.Price))
		}
		return nil
	},
}

var catalogPlantCmd = &cobra.Command{
	Use:   "catalog:plant",
	Short: "Show one plant's details",
	RunE: func(c *cobra.Command, args []string) error {
		if plantID == "" {
			return fmt.Errorf("--id is required")
		}
		ctx, cancel := catalogContext()
		defer cancel()
		client := catalog.NewClient(config.AppConfig.Catalog)
		defer client.Close()

		p, err := client.Plant(ctx, plantID)
		if err != nil {
			return err
		}
		out := c.OutOrStdout()
		fmt.Fprintf(out, "ID:       %s\n", p.ID)
		fmt.Fprintf(out, "Name:     %s\n", p.Name)
		fmt.Fprintf(out, "Category: %s\n", p.Category)
		fmt.Fprintf(out, "Price:    %s\n", price.Format(p.Price))
		fmt.Fprintf(out, "Image:    %s\n", p.Image)
		if p.Details != "" {
			fmt.Fprintf(out, "\n%s\n", p.Details)
		} else if p.Description != "" {
			fmt.Fprintf(out, "\n%s\n", p.Description)
		}
		return nil
	},
}

func init() {
	catalogPlantsCmd.Flags().StringVarP(&plantsCategory, "category", "c", "", "Category id (empty for all plants)")
	catalogPlantCmd.Flags().StringVar(&plantID, "id", "", "Plant id")
	rootCmd.AddCommand(catalogCategoriesCmd, catalogPlantsCmd, catalogPlantCmd)
}
