package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/etalasekita/etalase/internal/client"
)

const (
	defaultAPIURL = "http://localhost:8080"
	envAPIURL     = "ETALASE_API_URL"
	envToken      = "ETALASE_TOKEN"
)

// cli holds the state shared by every command.
type cli struct {
	apiURL string
	token  string

	out    io.Writer
	errOut io.Writer
	lg     *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{
		out:    out,
		errOut: errOut,
		lg:     slog.New(slog.NewTextHandler(errOut, nil)),
	}

	root := &cobra.Command{
		Use:           "etalase",
		Short:         "EtalaseKita catalog CLI",
		Long:          "Browse UMKM products and vendors of an EtalaseKita API and manage the catalog as an admin.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", envOr(envAPIURL, defaultAPIURL), "Catalog API base URL (or "+envAPIURL+" env)")
	root.PersistentFlags().StringVar(&c.token, "token", os.Getenv(envToken), "Admin session token (or "+envToken+" env)")

	root.AddCommand(
		c.productsCmd(),
		c.productCmd(),
		c.smesCmd(),
		c.mapCmd(),
		c.loginCmd(),
		c.adminCmd(),
	)
	return root
}

func (c *cli) client() (*client.Client, error) {
	return client.New(c.apiURL)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
