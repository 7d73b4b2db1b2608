package database

import (
	"fmt"
	"log"

	config "github.com/Sunilkumar09281/mutual-learn-space/configs"
	"github.com/Sunilkumar09281/mutual-learn-space/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.ExchangeRequest{},
		&models.Enrollment{},
		&models.ChatRoom{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// AutoMigrate cannot express a partial index. Only one pending request may
	// exist per (sender, course) pair, and the constraint has to hold even
	// when two creates race past the in-transaction count.
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_unique_pending_request
		ON exchange_requests (sender_id, course_id) WHERE status = 'pending'`).Error
	if err != nil {
		log.Fatalf("🔥 Failed to create pending-request index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}
