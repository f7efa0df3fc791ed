package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/campaign-next/internal/config"
	"github.com/campaign-next/internal/logger"
	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/provider"
)

// 交互式命令行入口。从标准输入逐行读取命令，逐行输出执行结果。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}
	if err := models.EnsureInitialTime(); err != nil {
		stdLog.Fatalf("虚拟时钟初始化失败: %v", err)
	}

	container := provider.NewContainer(cfg)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			return
		}
		output, err := container.Dispatcher.Execute(line)
		if err != nil {
			// 命令层错误按协议转为输出行
			output = err.Error()
		}
		fmt.Println(output)
	}
	if err := scanner.Err(); err != nil {
		stdLog.Fatalf("读取输入失败: %v", err)
	}
}
