package main

import (
	"account-service/config"
	"account-service/internal/api/account"
	"account-service/internal/middleware"
	"account-service/internal/repository/mysql"
	"account-service/internal/service"
	"account-service/internal/util"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	// 重建数据库表后直接退出，参考 flask db-create
	dbCreate := flag.Bool("db-create", false, "重建数据库表后退出")
	flag.Parse()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("账户服务启动")

	// 设置数据库连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName)

	// 连接数据库
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	// 测试数据库连接
	if err := db.Ping(); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	// 配置连接池
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if *dbCreate {
		if err := mysql.RecreateSchema(db); err != nil {
			util.Logger.Fatal("重建数据库表失败", zap.Error(err))
		}
		return
	}

	// 注册自定义验证器。注册失败只会发生在签名不匹配时，这里的签名是固定的
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("state_code", util.ValidateStateCode)
	}

	// 初始化存储库、服务和处理器
	accountRepo := mysql.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo)
	accountHandler := account.NewAccountHandler(accountService)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()
	healthHandler := account.NewHealthHandler(errorMonitor)

	// 设置 Gin 路由
	r := gin.New()
	r.Use(gin.Logger())

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))
	r.Use(middleware.RequireJSONMiddleware())

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// 定义 API 路由
	r.GET("/", accountHandler.Index)
	r.GET("/health", healthHandler.Health)

	r.GET("/accounts", accountHandler.ListAccounts)
	r.POST("/accounts", accountHandler.CreateAccount)
	r.GET("/accounts/:id", accountHandler.GetAccount)
	r.PUT("/accounts/:id", accountHandler.UpdateAccount)
	r.DELETE("/accounts/:id", accountHandler.DeleteAccount)

	r.GET("/accounts/:id/addresses", accountHandler.ListAddresses)
	r.POST("/accounts/:id/addresses", accountHandler.CreateAddress)
	r.GET("/accounts/:id/addresses/:address_id", accountHandler.GetAddress)
	r.PUT("/accounts/:id/addresses/:address_id", accountHandler.UpdateAddress)
	r.DELETE("/accounts/:id/addresses/:address_id", accountHandler.DeleteAddress)

	// 创建 http.Server
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("port", config.AppConfig.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}
