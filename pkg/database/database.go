package database

import (
	"fmt"
	"log"

	"studymo_backend/internal/config"
	"studymo_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 执行建表迁移并写入初始题库
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.QuestionItem{},
		&model.StudySession{},
		&model.SessionResponse{},
		&model.ProgressRecord{},
		&model.Subscription{},
		&model.UserStats{},
		&model.BadgeUnlock{},
		&model.AchievementEvent{},
	)
	if err != nil {
		return err
	}

	return seedCatalog(db)
}
