package main

import (
	"log/slog"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/storefront"
)

func (c *cli) productsCmd() *cobra.Command {
	var (
		categories []string
		vendors    []int64
		query      string
		minPrice   int64
		maxPrice   int64
		sort       string
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products with storefront filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			list := storefront.NewProductList()
			list.SetSelectedCategories(categories)
			list.SetSelectedVendors(vendors)
			list.SetSearchQuery(query)
			list.SetPriceRange(minPrice, maxPrice)
			list.SetSortKey(c.sortKey(sort, storefront.SortNewest))

			if err := list.Apply(api.Fetch(cmd.Context(), list.FetchParams())); err != nil {
				c.warn("Could not load products", err)
			}
			printProducts(c.out, list.VisibleProducts())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&categories, "category", nil, "Category slug (repeatable)")
	f.Int64SliceVar(&vendors, "sme", nil, "SME id (repeatable)")
	f.StringVar(&query, "q", "", "Search name and description")
	f.Int64Var(&minPrice, "min", 0, "Minimum price in rupiah")
	f.Int64Var(&maxPrice, "max", storefront.MaxPrice, "Maximum price in rupiah")
	f.StringVar(&sort, "sort", string(storefront.SortNewest), "Sort key: newest, oldest, price-asc, price-desc, name-asc, name-desc")
	return cmd
}

func (c *cli) productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product with its SME, category and related products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return errors.Errorf("invalid product id %q", args[0])
			}
			api, err := c.client()
			if err != nil {
				return err
			}

			d, err := api.Detail(cmd.Context(), id)
			if errors.Is(err, catalog.ErrNotFound) {
				return errors.Errorf("product %d not found", id)
			}
			if err != nil {
				return err
			}
			printDetail(c.out, d)
			return nil
		},
	}
}

func (c *cli) smesCmd() *cobra.Command {
	var query, sort string

	cmd := &cobra.Command{
		Use:   "smes",
		Short: "List SMEs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.vendorList(cmd, query, sort)
			if err != nil {
				return err
			}
			printVendors(c.out, list.Visible())
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "Search name, description, city and province")
	cmd.Flags().StringVar(&sort, "sort", string(storefront.SortNameAsc), "Sort key: name-asc, name-desc, newest, oldest")
	return cmd
}

func (c *cli) mapCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "map",
		Short: "List SME map markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.vendorList(cmd, query, "")
			if err != nil {
				return err
			}
			printMarkers(c.out, storefront.Markers(list.Visible()))
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "Search name, description, city and province")
	return cmd
}

// vendorList fetches every vendor into a directory. A failed fetch leaves it
// empty.
func (c *cli) vendorList(cmd *cobra.Command, query, sort string) (*storefront.VendorList, error) {
	api, err := c.client()
	if err != nil {
		return nil, err
	}

	list := storefront.NewVendorList()
	list.SetSearchQuery(query)
	list.SetSortKey(c.sortKey(sort, storefront.SortNameAsc))

	vendors, err := api.Vendors(cmd.Context())
	if err != nil {
		c.warn("Could not load SMEs", err)
	}
	list.SetVendors(vendors)
	return list, nil
}

func (c *cli) sortKey(s string, def storefront.SortKey) storefront.SortKey {
	k, err := storefront.ParseSortKey(s, def)
	if err != nil {
		c.lg.Warn("Unknown sort key, using default",
			slog.String("sort", s),
			slog.String("default", string(def)),
		)
	}
	return k
}

func (c *cli) warn(msg string, err error) {
	c.lg.Warn(msg, slog.String("error", err.Error()))
}
