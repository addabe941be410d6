package db

import (
	"log"
	"time"

	"github.com/Luexi/PAITITI/internal/config"
	"github.com/Luexi/PAITITI/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Venue{},
		&models.User{},
		&models.Settings{},
		&models.OpeningHours{},
		&models.Table{},
		&models.Block{},
		&models.Reservation{},
		&models.Walkin{},
		&models.AuditLog{},
		&models.GalleryImage{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Respaldo a nivel de storage de la invariante central: dos filas
	// ocupantes nunca se solapan en la misma mesa, lleguen como lleguen.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$ BEGIN
            ALTER TABLE reservations ADD CONSTRAINT reservations_no_overlap
                EXCLUDE USING gist (
                    table_id WITH =,
                    tstzrange(start_time, end_time) WITH &&
                ) WHERE (table_id IS NOT NULL AND status IN ('confirmed', 'seated'));
        EXCEPTION
            WHEN duplicate_table THEN NULL;
            WHEN duplicate_object THEN NULL;
        END $$;
    `)

	db.Exec(`
        UPDATE venues
        SET timezone = 'America/Mexico_City'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
