package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/etalasekita/etalase/internal/client"
	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/storefront"
)

var rupiah = message.NewPrinter(language.Indonesian)

// formatPrice formats rupiah with Indonesian digit grouping, e.g.
// "Rp 1.234.567".
func formatPrice(n int64) string {
	return rupiah.Sprintf("Rp %d", n)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printProducts(w io.Writer, products []catalog.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tSME\t")
	for _, p := range products {
		name := truncate(p.Name, 40)
		if p.Featured {
			name = "* " + name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t\n", p.ID, name, formatPrice(p.Price), p.CategorySlug, p.VendorID)
	}
	_ = tw.Flush()
}

func printDetail(w io.Writer, d *client.Detail) {
	p := d.Product
	fmt.Fprintf(w, "%s\n", p.Name)
	fmt.Fprintf(w, "  Price:    %s\n", formatPrice(p.Price))

	category := p.CategorySlug
	if d.Category != nil {
		category = d.Category.Name
	}
	fmt.Fprintf(w, "  Category: %s\n", category)

	if v := d.Vendor; v != nil {
		fmt.Fprintf(w, "  SME:      %s (%s)\n", v.Name, orDash(v.City))
	} else {
		fmt.Fprintln(w, "  SME:      -")
	}
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
	if p.LongDescription != "" {
		fmt.Fprintf(w, "\n%s\n", p.LongDescription)
	}
	if len(d.Related) > 0 {
		fmt.Fprintln(w, "\nRelated products:")
		printProducts(w, d.Related)
	}
}

func printVendors(w io.Writer, vendors []catalog.Vendor) {
	if len(vendors) == 0 {
		fmt.Fprintln(w, "No SMEs found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCITY\tPROVINCE\tESTABLISHED\tPRODUCTS\t")
	for _, v := range vendors {
		established := "-"
		if !v.EstablishedDate.IsZero() {
			established = v.EstablishedDate.Format("2006")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t\n",
			v.ID, truncate(v.Name, 40), orDash(v.City), orDash(v.Province), established, v.ProductCount)
	}
	_ = tw.Flush()
}

func printMarkers(w io.Writer, markers []storefront.Marker) {
	if len(markers) == 0 {
		fmt.Fprintln(w, "No SMEs found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCITY\tLAT\tLNG\t")
	for _, m := range markers {
		lat := strconv.FormatFloat(m.Lat, 'f', 4, 64)
		lng := strconv.FormatFloat(m.Lng, 'f', 4, 64)
		if m.Approximate {
			lat, lng = "~"+lat, "~"+lng
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", m.VendorID, truncate(m.Name, 40), orDash(m.City), lat, lng)
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
