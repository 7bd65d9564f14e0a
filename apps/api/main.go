package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	echoapi "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/school"
	logsvc "github.com/trezcool/shule/services/logger"
	"github.com/trezcool/shule/storage/mongodb"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	logger := newLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mongodb.Open(ctx)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening document store: %v", err), err)
	}
	if db == nil {
		logger.Warn("DATABASE_URL not set: store-backed endpoints will fail until it is configured")
	}

	school.InitValidators(core.Validate, core.Translator)
	schoolSvc := school.NewService(mongodb.NewStore(db))

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("%s API initializing", core.Conf.GetString("appName")))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(
		&echoapi.Options{
			Address:   address(),
			Logger:    logger,
			SchoolSvc: schoolSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newLogger() core.Logger {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if core.Conf.GetString("rollbarToken") != "" {
		logger := logsvc.NewRollbarLogger(std)
		logger.Enable(!core.Conf.GetBool("debug"))
		return logger
	}
	return logsvc.NewStdLogger(std)
}

// address honors the legacy PORT env var over the configured listen address.
func address() string {
	if port := core.Conf.GetString("port"); port != "" {
		return ":" + port
	}
	return core.Conf.GetString("address")
}
