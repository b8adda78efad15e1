package models

import (
	"log"
	"os"
	"path/filepath"

	"github.com/GrainArc/TerraMesh/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 初始化SQLite任务数据库
func InitDB() error {
	if err := os.MkdirAll(config.Download, os.ModePerm); err != nil {
		log.Printf("创建存储目录失败: %v", err)
		return err
	}

	dbPath := filepath.Join(config.Download, "terramesh.db")
	log.Printf("数据库路径: %s", dbPath)

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("连接数据库失败: %v", err)
		return err
	}

	// 自动迁移，创建表结构
	if err := DB.AutoMigrate(&MeshRecord{}); err != nil {
		log.Printf("数据库迁移失败: %v", err)
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
