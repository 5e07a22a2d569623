package database

import (
	"fmt"
	"log"

	"github.com/quartzsoft/tempus-api/internal/config"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Map driver unique-violation errors to gorm.ErrDuplicatedKey so the
		// repositories can translate them to conflicts.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities, then creates the
// indexes GORM tags cannot express.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff
		&entity.User{},

		// Catalog
		&entity.Store{},
		&entity.Collection{},
		&entity.Supplier{},
		&entity.Product{},

		// CRM
		&entity.Customer{},
		&entity.Appointment{},

		// Inventory & point of sale
		&entity.StockRecord{},
		&entity.StockMovement{},
		&entity.CashRegister{},
		&entity.CashSession{},
		&entity.Sale{},
		&entity.SaleItem{},

		// System
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// At most one OPEN session per register. The conditional insert in the
	// session repository handles the normal path; this index closes the race
	// window between two simultaneous opens.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_cash_sessions_one_open
		ON cash_sessions (cash_register_id)
		WHERE status = 'OPEN'
	`).Error
	if err != nil {
		return fmt.Errorf("failed to create open-session index: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the initial admin account when configured through
// ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", cfg.Admin.Email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Admin"
	}

	admin := entity.User{
		FirstName: name,
		Email:     cfg.Admin.Email,
		Password:  string(hashed),
		Role:      "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", cfg.Admin.Email)
	return nil
}
