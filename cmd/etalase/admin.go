package main

import (
	"bufio"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/etalasekita/etalase/internal/client"
	"github.com/etalasekita/etalase/internal/domain/catalog"
)

func (c *cli) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an admin and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				p, err := readLine(cmd, "Password: ")
				if err != nil {
					return err
				}
				password = p
			}
			api, err := c.client()
			if err != nil {
				return err
			}

			s, err := api.Login(cmd.Context(), email, password)
			if err != nil {
				return c.serverError(err)
			}
			fmt.Fprintf(c.out, "export %s=%s\n", envToken, s.AccessToken)
			fmt.Fprintf(c.errOut, "Session expires at %s\n", s.ExpiresAt.Local().Format(time.RFC1123))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create catalog entries (requires --token)",
	}
	cmd.AddCommand(c.addProductCmd(), c.addSMECmd())
	return cmd
}

func (c *cli) addProductCmd() *cobra.Command {
	var (
		p     catalog.NewProduct
		image string
	)

	cmd := &cobra.Command{
		Use:   "add-product",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := p.Validate(); err != nil {
				return err
			}
			api, err := c.authed()
			if err != nil {
				return err
			}
			img, done, err := openUpload(image)
			if err != nil {
				return err
			}
			defer done()

			created, err := api.CreateProduct(client.WithToken(cmd.Context(), c.token), p, img)
			if err != nil {
				return c.serverError(err)
			}
			fmt.Fprintf(c.out, "Created product %d: %s (%s)\n", created.ID, created.Name, formatPrice(created.Price))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.Name, "name", "", "Product name")
	f.Int64Var(&p.Price, "price", 0, "Price in rupiah")
	f.StringVar(&p.Description, "description", "", "Short description")
	f.StringVar(&p.LongDescription, "long-description", "", "Long description")
	f.StringVar(&p.CategorySlug, "category", "", "Category slug")
	f.Int64Var(&p.VendorID, "sme", 0, "SME id")
	f.BoolVar(&p.Featured, "featured", false, "Feature on the home page")
	f.StringVar(&image, "image", "", "Path to the product image")
	return cmd
}

func (c *cli) addSMECmd() *cobra.Command {
	var (
		v                   catalog.NewVendor
		established         string
		lat, lng            float64
		logoPath, coverPath string
	)

	cmd := &cobra.Command{
		Use:   "add-sme",
		Short: "Create an SME profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if established != "" {
				t, err := time.Parse(time.DateOnly, established)
				if err != nil {
					return errors.Errorf("invalid --established %q: want YYYY-MM-DD", established)
				}
				v.EstablishedDate = t
			}
			latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
			if latSet != lngSet {
				return errors.New("--lat and --lng must be set together")
			}
			if latSet {
				v.Location = &catalog.Location{Lat: lat, Lng: lng}
			}
			if err := v.Validate(); err != nil {
				return err
			}

			api, err := c.authed()
			if err != nil {
				return err
			}
			logo, doneLogo, err := openUpload(logoPath)
			if err != nil {
				return err
			}
			defer doneLogo()
			cover, doneCover, err := openUpload(coverPath)
			if err != nil {
				return err
			}
			defer doneCover()

			created, err := api.CreateVendor(client.WithToken(cmd.Context(), c.token), v, logo, cover)
			if err != nil {
				return c.serverError(err)
			}
			fmt.Fprintf(c.out, "Created SME %d: %s\n", created.ID, created.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&v.Name, "name", "", "SME name")
	f.StringVar(&v.ShortDescription, "short-description", "", "One-line description")
	f.StringVar(&v.Description, "description", "", "Full description")
	f.StringVar(&v.Story, "story", "", "Founding story")
	f.StringVar(&v.City, "city", "", "City")
	f.StringVar(&v.Province, "province", "", "Province")
	f.StringVar(&v.Address, "address", "", "Street address")
	f.StringVar(&v.Phone, "phone", "", "Phone number")
	f.StringVar(&v.Email, "email", "", "Contact email")
	f.StringVar(&v.Website, "website", "", "Website URL")
	f.StringVar(&v.Instagram, "instagram", "", "Instagram handle")
	f.StringVar(&v.Facebook, "facebook", "", "Facebook page")
	f.StringVar(&v.Category, "category", "", "Business category")
	f.BoolVar(&v.Featured, "featured", false, "Feature on the home page")
	f.StringVar(&established, "established", "", "Established date (YYYY-MM-DD)")
	f.Float64Var(&lat, "lat", 0, "Latitude")
	f.Float64Var(&lng, "lng", 0, "Longitude")
	f.StringVar(&logoPath, "logo", "", "Path to the logo image")
	f.StringVar(&coverPath, "cover", "", "Path to the cover image")
	return cmd
}

func (c *cli) authed() (*client.Client, error) {
	if c.token == "" {
		return nil, errors.Errorf("not logged in: run etalase login and set %s or --token", envToken)
	}
	return c.client()
}

// serverError prints the raw message of an API failure and returns an error
// that makes the command exit non-zero.
func (c *cli) serverError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(c.errOut, apiErr.Message)
		return errors.Errorf("request failed with status %d", apiErr.Status)
	}
	return err
}

// openUpload opens the file at path. An empty path means no upload.
func openUpload(path string) (*client.Upload, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, errors.Wrap(err, "open upload")
	}
	u := &client.Upload{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Body:        f,
	}
	return u, func() { _ = f.Close() }, nil
}

func readLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
