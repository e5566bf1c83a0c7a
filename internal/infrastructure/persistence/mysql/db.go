package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. database.auto_migrate=true时自动迁移表结构
func NewDB(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(logLevel),
		NowFunc: time.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 目录只在启动时读取一次，连接池不需要很大
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.WithFields(map[string]any{"host": cfg.Database.Host, "db": cfg.Database.DBName}).Info("数据库连接成功")

	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, nil
}

// AutoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&GenreModel{},
		&BookModel{},
		&BookGenreModel{},
	)
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AuthorModel GORM作者模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/catalog/entity.go是领域实体，不依赖GORM
// 3. Position保存数据集中的顺序（决定下拉选项顺序）
type AuthorModel struct {
	ID       string `gorm:"primaryKey;size:64;comment:作者ID"`
	Name     string `gorm:"size:200;not null;comment:展示名称"`
	Position int    `gorm:"index;not null;comment:排序位置"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel GORM分类模型
type GenreModel struct {
	ID       string `gorm:"primaryKey;size:64;comment:分类ID"`
	Name     string `gorm:"size:200;not null;comment:展示名称"`
	Position int    `gorm:"index;not null;comment:排序位置"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// BookModel GORM图书模型
// 设计说明：
// 1. 图书ID是数据集中的字符串ID（通常是UUID），不使用自增主键
// 2. Position保存目录顺序，筛选结果必须按此顺序输出
// 3. 分类是多对多关系，存放在book_genres表
type BookModel struct {
	ID          string    `gorm:"primaryKey;size:64;comment:图书ID"`
	Title       string    `gorm:"size:300;not null;comment:书名"`
	Image       string    `gorm:"size:500;comment:封面图片URL"`
	AuthorID    string    `gorm:"index;size:64;not null;comment:作者ID"`
	Published   time.Time `gorm:"comment:出版时间"`
	Description string    `gorm:"type:text;comment:图书简介"`
	Position    int       `gorm:"uniqueIndex;not null;comment:目录顺序"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookGenreModel 图书-分类关联
type BookGenreModel struct {
	BookID   string `gorm:"primaryKey;size:64;comment:图书ID"`
	GenreID  string `gorm:"primaryKey;size:64;comment:分类ID"`
	Position int    `gorm:"not null;comment:分类在图书中的顺序"`
}

// TableName 指定表名
func (BookGenreModel) TableName() string {
	return "book_genres"
}
