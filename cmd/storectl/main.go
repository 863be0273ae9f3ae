// Command storectl runs maintenance tasks against the configured storage.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/clock"
	"storefront/internal/infra/export"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/persistence/local"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/gorilla/securecookie"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "storectl:", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "storectl",
		Usage: "Storefront maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "sync-products",
				Usage: "Copy every locally stored product to Firebase",
				Action: withEnv(func(ctx context.Context, env *cliEnv, _ *cli.Command) error {
					pushed, err := env.catalog().SyncProducts(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "pushed %d products\n", pushed)

					return nil
				}),
			},
			{
				Name:  "clear-products",
				Usage: "Delete every product",
				Action: withEnv(func(ctx context.Context, env *cliEnv, _ *cli.Command) error {
					result, err := env.catalog().ClearProducts(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "cleared products on %s backend\n", result.Backend)
					if result.Warning != "" {
						fmt.Fprintln(out, result.Warning)
					}

					return nil
				}),
			},
			{
				Name:  "list-orders",
				Usage: "Print orders, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print the orders as JSON"},
				},
				Action: withEnv(func(ctx context.Context, env *cliEnv, cmd *cli.Command) error {
					list, err := env.orders().ListOrders(ctx)
					if err != nil {
						return err
					}
					if cmd.Bool("json") {
						enc := json.NewEncoder(out)
						enc.SetIndent("", "  ")

						return enc.Encode(list.Orders)
					}

					return printOrders(out, list.Orders)
				}),
			},
			{
				Name:  "seed-categories",
				Usage: "Reset the category tree to the defaults",
				Action: withEnv(func(ctx context.Context, env *cliEnv, _ *cli.Command) error {
					store := local.NewCategoryStore(env.backends.KV, env.logger)
					if err := store.Save(ctx, entity.DefaultCategories()); err != nil {
						return err
					}
					fmt.Fprintln(out, "categories reset")

					return nil
				}),
			},
			{
				Name:      "hash-password",
				Usage:     "Print the bcrypt hash for admin.passwordHash",
				ArgsUsage: "<password>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					plain := cmd.Args().First()
					if plain == "" {
						return errors.New("password argument is required")
					}
					hash, err := auth.NewBcryptHasher().Hash(plain)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, hash)

					return nil
				},
			},
			{
				Name:  "session-keys",
				Usage: "Generate base64url session.hashKey and session.blockKey values",
				Action: func(_ context.Context, _ *cli.Command) error {
					hashKey := securecookie.GenerateRandomKey(64)
					blockKey := securecookie.GenerateRandomKey(32)
					if hashKey == nil || blockKey == nil {
						return errors.New("could not generate session keys")
					}
					fmt.Fprintf(out, "hashKey: %s\n", base64.URLEncoding.EncodeToString(hashKey))
					fmt.Fprintf(out, "blockKey: %s\n", base64.URLEncoding.EncodeToString(blockKey))

					return nil
				},
			},
		},
	}
}

// cliEnv is the storage opened for one command.
type cliEnv struct {
	logger   *slog.Logger
	backends *persistence.Backends
}

func withEnv(action func(context.Context, *cliEnv, *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		logger, err := logs.NewWithWriter(cfg, os.Stderr)
		if err != nil {
			return err
		}
		backends, err := persistence.Open(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer backends.Close()

		return action(ctx, &cliEnv{logger: logger, backends: backends}, cmd)
	}
}

func (e *cliEnv) catalog() usecase.CatalogUsecase {
	return impl.NewCatalogService(impl.CatalogServiceParams{
		Catalog:     e.backends.Catalog(nil),
		Categories:  local.NewCategoryStore(e.backends.KV, e.logger),
		Spreadsheet: export.New(),
		Clock:       clock.New(),
		Logger:      e.logger,
	})
}

func (e *cliEnv) orders() usecase.OrderUsecase {
	return impl.NewOrderService(impl.OrderServiceParams{
		Orders:      e.backends.Orders(nil),
		Spreadsheet: export.New(),
		Logger:      e.logger,
	})
}

func printOrders(out io.Writer, orders []entity.Order) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tNAME\tPHONE\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Name, o.Phone, len(o.Items), o.Total)
	}

	return w.Flush()
}
