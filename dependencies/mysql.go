package dependencies

import (
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/models/entities"
)

// InitMySQL 初始化 MySQL 连接并返回 *gorm.DB
func InitMySQL(cfg *config.WeappGatewayConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	if cfg.MySQLConfig.DSN == "" {
		return nil, fmt.Errorf("%w: mySQLConfig.dsn 为空", ErrConfiguration)
	}

	// GORM 日志统一走 zap
	gormLogger := core.NewGormLogger(logger, cfg.GormLogConfig)

	gormConfig := &gorm.Config{
		Logger: gormLogger, // 使用 GormLogger 作为 GORM 的日志接口
	}

	// 启动时数据库可能尚未就绪，按固定间隔重试
	var db *gorm.DB
	var err error
	maxRetries := 5
	retryInterval := 2 * time.Second

	logger.Info("开始连接 MySQL", zap.String("dsn_preview", previewDSN(cfg.MySQLConfig.DSN)))

	for i := 0; i < maxRetries; i++ {
		if db, err = openMySQL(cfg.MySQLConfig.DSN, gormConfig); err == nil {
			break
		}
		logger.Warn("无法连接到 MySQL，尝试重试",
			zap.Int("retry", i+1),
			zap.Int("maxRetries", maxRetries),
			zap.Error(err),
		)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接到数据库 (DSN: %s): %w", previewDSN(cfg.MySQLConfig.DSN), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("无法获取数据库对象: %w", err)
	}

	// 配置连接池
	sqlDB.SetMaxIdleConns(cfg.MySQLConfig.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MySQLConfig.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移数据库表结构
	if err := db.AutoMigrate(&entities.WeappUser{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	logger.Info("成功连接到 MySQL 并完成 weapp_users 表迁移")
	return db, nil
}

// openMySQL 打开连接并 Ping 一次，确认数据库真正可用
func openMySQL(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// previewDSN 返回用于日志记录的 DSN，密码替换为 ****。
// 形如 user:pass@tcp(host)/db 的 DSN 才会被改写，其它格式原样返回。
func previewDSN(dsn string) string {
	atIndex := strings.LastIndex(dsn, "@")
	if atIndex == -1 {
		return dsn
	}
	colonIndex := strings.Index(dsn[:atIndex], ":")
	if colonIndex == -1 {
		return dsn
	}
	return dsn[:colonIndex+1] + "****" + dsn[atIndex:]
}
