package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func sqlHandle(gdb *gorm.DB) (*sql.DB, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	return sqlDB, nil
}

// serve runs e on addr until quit fires or the listener fails, then shuts down
// within timeout. It returns instead of exiting so deferred cleanup in the caller runs.
func serve(e *echo.Echo, addr string, quit <-chan os.Signal, timeout time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	var runErr error
	select {
	case <-quit:
		log.Println("shutting down")
	case runErr = <-errc:
		log.Printf("server: %v", runErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil && runErr == nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return runErr
}
