// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aibor/includedir/snapshot"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	serveAddrDefault = "127.0.0.1:8080"

	filesRoute  = "/files"
	healthRoute = "/healthz"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type serveCommand struct {
	archive FilePath
	addr    string
	dir     string
}

func (*serveCommand) name() string  { return "serve" }
func (*serveCommand) usage() string { return "[flags...] ARCHIVE" }

func (*serveCommand) synopsis() string {
	return "serve the snapshot read-only over HTTP below " + filesRoute + "/"
}

func (c *serveCommand) registerFlags(flagSet *flag.FlagSet) {
	c.addr = serveAddrDefault

	flagSet.StringVar(
		&c.addr,
		"addr",
		c.addr,
		"address to listen on",
	)

	flagSet.StringVar(
		&c.dir,
		"dir",
		c.dir,
		"serve only the directory with exactly this path",
	)
}

func (c *serveCommand) setArgs(args []string) error {
	err := positionalArgs(args, "ARCHIVE")
	if err != nil {
		return err
	}

	return c.archive.Set(args[0])
}

func (c *serveCommand) run(ctx context.Context, cfg IO) error {
	root, err := readArchive(string(c.archive))
	if err != nil {
		return err
	}

	dir, err := subDir(root, c.dir)
	if err != nil {
		return err
	}

	var listenConfig net.ListenConfig

	gin.SetMode(gin.ReleaseMode)

	listener, err := listenConfig.Listen(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	fmt.Fprintf(cfg.Stderr, "Serving on http://%s%s/\n", listener.Addr(), filesRoute)

	return serve(ctx, listener, newRouter(dir))
}

// newRouter returns the HTTP handler serving the directory.
func newRouter(dir snapshot.Dir) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET(healthRoute, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.StaticFS(filesRoute, dirFileSystem{http.FS(dir.FS())})

	return router
}

// dirFileSystem resolves directory names with trailing separator, as they
// are requested for listings, like their plain form.
type dirFileSystem struct {
	http.FileSystem
}

//nolint:ireturn
func (d dirFileSystem) Open(name string) (http.File, error) {
	if name != "/" {
		name = strings.TrimSuffix(name, "/")
	}

	return d.FileSystem.Open(name) //nolint:wrapcheck
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.Debug("HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)))
	}
}

// serve serves the handler on the listener until the context is cancelled.
// The listener is closed on return.
func serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve: %w", err)
	})

	group.Go(func() error {
		<-ctx.Done()

		slog.Debug("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(
			context.WithoutCancel(ctx),
			shutdownTimeout,
		)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		return nil
	})

	return group.Wait() //nolint:wrapcheck
}
