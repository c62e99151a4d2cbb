package database

import (
	"aptitude_portal_backend/internal/config"
	"aptitude_portal_backend/internal/model"
	"aptitude_portal_backend/internal/util"
	"fmt"
	"log"

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

	// TranslateError turns the MySQL duplicate-entry error into
	// gorm.ErrDuplicatedKey, which the session service relies on to report
	// a double-start as a conflict.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Question{},
		&model.ComprehensionPassage{},
		&model.ExamSession{},
		&model.TestResult{},
		&model.AccessCode{},
		&model.Feedback{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the default access code so the gate works on first boot.
	var count int64
	db.Model(&model.AccessCode{}).Where("is_active = ?", true).Count(&count)
	if count == 0 {
		db.Create(&model.AccessCode{Code: util.DefaultAccessCode, IsActive: true})
		log.Printf("Default access code created: %s", util.DefaultAccessCode)
	}

	return db, nil
}
