package shutdown

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// GracefulStop blocks until SIGHUP, SIGINT, SIGTERM or SIGQUIT, runs stop and
// exits. A second signal while stopping terminates immediately.
func GracefulStop(logger *zap.Logger, stop func()) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(
		signalChan,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	sig := <-signalChan
	logger.Info("received signal, shutting down...", zap.String("signal", sig.String()))

	go func() {
		<-signalChan
		logger.Fatal("os.Kill - terminating...")
	}()

	stop()

	os.Exit(0)
}
