package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/internal/command"
	"github.com/lwmacct/251014-go-pkg-poster/internal/config"
	"github.com/lwmacct/251014-go-pkg-poster/internal/version"
	"github.com/lwmacct/251014-go-pkg-poster/pkg/cfgm"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg := cfgm.MustLoadCmd(cmd, config.DefaultConfig(), version.AppRawName, command.LoadOptions()...)
	if err := command.SetupLogging(cfg.Log.Level); err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      NewHandler(command.NewGenerator(cfg), cfg.Server.MaxBody),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  cfg.Server.Idletime,
	}

	// 启动服务器（非阻塞）
	errChan := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", cfg.Server.Addr, "templates", cfg.Template.Dir, "output", cfg.Output.Dir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-sigChan:
	case <-ctx.Done():
	}

	slog.Info("Shutting down")

	// 使用 WithoutCancel 保持 context 链，同时防止父 context 取消影响 shutdown
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)

		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("Server stopped gracefully")

	return nil
}
