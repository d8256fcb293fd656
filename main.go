// @title OECD Explorer API
// @version 1.0
// @description 学习活动追踪服务：模块步骤流程、学习记录与导入导出。

// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"oecd_explorer/internal/app"
	"oecd_explorer/internal/config"
	"oecd_explorer/pkg/configwatcher"
	"oecd_explorer/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	exportPath := flag.String("export", "", "将全部学习数据导出到该文件后退出")
	importPath := flag.String("import", "", "从该导出文件导入学习数据后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 一次性命令：导入/导出后直接退出
	if *exportPath != "" || *importPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		runOnce(ctx, application, *importPath, *exportPath)
		application.Close(ctx)
		return
	}

	if cfg.ConfigFile != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := configwatcher.WatchConfig(ctx, cfg.ConfigFile, application.ApplyConfig); err != nil {
				logger.Log.Warn("Config hot reload disabled", zap.Error(err))
			}
		}()
	}

	application.Run()
}

func runOnce(ctx context.Context, application *app.App, importPath, exportPath string) {
	if importPath != "" {
		route, err := application.ImportFrom(ctx, importPath)
		if err != nil {
			logger.Log.Fatal("Import failed", zap.String("file", importPath), zap.Error(err))
		}
		logger.Log.Info("Import finished", zap.String("file", importPath), zap.String("route", route))
	}
	if exportPath != "" {
		if err := application.ExportTo(ctx, exportPath); err != nil {
			logger.Log.Fatal("Export failed", zap.String("file", exportPath), zap.Error(err))
		}
		logger.Log.Info("Export written", zap.String("file", exportPath))
	}
}
