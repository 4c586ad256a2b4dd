package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/QueryGate/pdp-go/internal/directory"
	"github.com/QueryGate/pdp-go/internal/di"
	"github.com/QueryGate/pdp-go/internal/identity"
	"github.com/QueryGate/pdp-go/internal/server"
)

// Starts the decision server
func cmdRun() *cobra.Command {
	var addr string
	var dirPath string
	var jwksPath string
	var enableCORS bool

	c := &cobra.Command{
		Use:   "run",
		Short: "Start the decision server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr == "" {
				addr = cfg.ListenAddr
			}
			if dirPath == "" {
				dirPath = cfg.Directory
			}
			if jwksPath == "" {
				jwksPath = cfg.JWKS
			}
			if dirPath == "" {
				return errors.New("no directory file configured; pass --directory or set it in the config")
			}

			snap, err := directory.LoadFile(dirPath)
			if err != nil {
				return fmt.Errorf("load directory: %w", err)
			}
			st := snap.Stats()
			slog.Info("directory loaded", "path", dirPath, "users", st.Users, "roles", st.Roles, "grants", st.Grants)

			resolver, err := identity.NewResolver(jwksPath)
			if err != nil {
				return err
			}

			h := server.BuildRouter(server.Deps{
				Authorizer: di.ProvideAuthorizer(snap),
				Identity:   resolver,
			}, server.Options{EnableCORS: enableCORS})

			srv := &http.Server{Addr: addr, Handler: h}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				slog.Info("listening", "addr", addr)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shCtx)
			})
			return g.Wait()
		},
	}
	c.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8086)")
	c.Flags().StringVarP(&dirPath, "directory", "d", "", "users/roles directory JSON file")
	c.Flags().StringVar(&jwksPath, "jwks", "", "JWKS file for bearer subject resolution")
	c.Flags().BoolVar(&enableCORS, "cors", false, "enable permissive CORS (dev)")
	return c
}
