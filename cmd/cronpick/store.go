package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/osmike/cronpick/internal/config"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"github.com/osmike/cronpick/internal/monitoring"
	"github.com/osmike/cronpick/internal/picker"
	"github.com/osmike/cronpick/internal/store"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openHost returns the host of key in the configured store and a function
// releasing it.
func (a *app) openHost(ctx context.Context, key string) (domain.Host, func(), error) {
	switch a.cfg.Store.Driver {
	case config.DriverMemory:
		if key == "" {
			return nil, nil, errs.ErrEmptyKey
		}
		return store.NewMemory(""), func() {}, nil

	case config.DriverSQLite:
		db, err := a.openSQLite(ctx)
		if err != nil {
			return nil, nil, err
		}
		host, err := store.NewSQLite(db, key, a.cfg.Dialect)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return host, func() { db.Close() }, nil

	case config.DriverRedis:
		opts, err := redisOptions(a.cfg.Store.DSN)
		if err != nil {
			return nil, nil, err
		}
		client := redis.NewClient(opts)
		host, err := store.NewRedis(client, a.cfg.Store.KeyPrefix, key)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return host, func() { client.Close() }, nil
	}
	return nil, nil, errs.New(errs.ErrUnknownStore, a.cfg.Store.Driver)
}

func (a *app) openSQLite(ctx context.Context) (*sql.DB, error) {
	dsn := a.cfg.Store.DSN
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	a.logger.Debug("opening sqlite store", zap.String("dsn", dsn))
	return store.OpenSQLite(ctx, dsn)
}

// redisOptions accepts a redis:// URL or a plain host:port address.
func redisOptions(dsn string) (*redis.Options, error) {
	if strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://") {
		opts, err := redis.ParseURL(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return opts, nil
	}
	if dsn == "" {
		dsn = "localhost:6379"
	}
	return &redis.Options{Addr: dsn}, nil
}

func newSetCmd(a *app) *cobra.Command {
	var (
		pf     pickFlags
		expr   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "set KEY",
		Short: "Edit the schedule stored under a key",
		Long: `Load the expression stored under KEY into a picker, apply the given
controls and store the rebuilt expression. A new key starts from the
default schedule (Daily at 00:00), --expr replaces the stored one.
Nothing is stored unless every control is accepted.

Examples:
  # Store a schedule as is
  cronpick set backup --expr "0 2 * * *"

  # Move the stored schedule to 03:30 and keep everything else
  cronpick set backup --hour 3 --minute 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expr == "" && !pf.changed(cmd) {
				return errors.New("nothing to set: give --expr or picker flags")
			}
			pr, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			f, err := a.formatter()
			if err != nil {
				return err
			}
			if expr != "" {
				if _, err := f.Parse(expr); err != nil {
					return err
				}
			}

			host, release, err := a.openHost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer release()

			seed := expr
			if seed == "" {
				if seed, err = host.Value(); err != nil {
					return err
				}
				if seed != "" {
					if _, err := f.Parse(seed); err != nil {
						return fmt.Errorf("stored schedule of %s is not a %s expression, replace it with --expr: %w", args[0], f.Dialect(), err)
					}
				}
			}

			// The picker edits a draft; the store only sees the final expression.
			mon := monitoring.New()
			p, err := picker.New(store.NewMemory(seed), f,
				picker.WithHourFormat(a.cfg.HourFormat),
				picker.WithLogger(a.logger.With(zap.String("key", args[0]))),
				picker.WithMonitoring(mon),
			)
			if err != nil {
				return err
			}
			defer p.Destroy()

			if err := pf.apply(cmd, p); err != nil {
				return err
			}
			if err := host.SetValue(p.Expression()); err != nil {
				return err
			}

			a.logger.Debug("schedule stored",
				zap.String("key", args[0]),
				zap.String("expression", p.Expression()),
				zap.Int("changes", len(mon.GetChanges())),
			)

			state := p.State()
			return pr.printExpression(expressionResult{
				Key:        args[0],
				Dialect:    p.Dialect(),
				Expression: p.Expression(),
				Descriptor: &state,
			})
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "Expression to load before the picker flags are applied")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, yaml, json)")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var (
		output   string
		previewN int
	)

	cmd := &cobra.Command{
		Use:   "show KEY",
		Short: "Show the schedule stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			f, err := a.formatter()
			if err != nil {
				return err
			}
			host, release, err := a.openHost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer release()

			value, err := host.Value()
			if err != nil {
				return err
			}
			if value == "" {
				return errs.New(errs.ErrExpressionNotFound, args[0])
			}

			result := expressionResult{Key: args[0], Dialect: f.Dialect(), Expression: value}
			if d, err := f.Parse(value); err != nil {
				a.logger.Warn("stored expression does not parse",
					zap.String("key", args[0]),
					zap.String("expression", value),
					zap.Error(err),
				)
			} else {
				result.Descriptor = &d
			}

			if previewN > 0 {
				result.Next, err = a.preview(value, previewN)
				if err != nil {
					return err
				}
			}
			return pr.printExpression(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, yaml, json)")
	cmd.Flags().IntVar(&previewN, "preview", 0, "Also list the next N runs")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every stored schedule",
		Long:  `List every schedule kept in the SQLite store.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Store.Driver != config.DriverSQLite {
				return fmt.Errorf("list needs the %s store, have %s", config.DriverSQLite, a.cfg.Store.Driver)
			}
			pr, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}

			db, err := a.openSQLite(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := store.ListSQLite(cmd.Context(), db)
			if err != nil {
				return err
			}
			return pr.printEntries(entries)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, yaml, json)")
	return cmd
}
