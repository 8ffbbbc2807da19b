package database

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// InitSchema creates the necessary database tables if they don't exist
func InitSchema(db *sql.DB) error {
	log.Info("Initializing floodwatch database schema...")

	floodReportsTableSQL := `
	CREATE TABLE IF NOT EXISTS flood_reports(
		id INT NOT NULL AUTO_INCREMENT,
		reporter_name VARCHAR(100) NOT NULL,
		phone_number CHAR(10) NOT NULL,
		address TEXT NOT NULL,
		flood_status ENUM('normal', 'watch', 'danger') NOT NULL,
		image_path VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX flood_status_index (flood_status)
	)`

	if _, err := db.Exec(floodReportsTableSQL); err != nil {
		return fmt.Errorf("failed to create flood_reports table: %w", err)
	}
	log.Info("Flood_reports table created/verified")

	helpRequestsTableSQL := `
	CREATE TABLE IF NOT EXISTS help_requests(
		id INT NOT NULL AUTO_INCREMENT,
		reporter_name VARCHAR(100) NOT NULL,
		phone_number CHAR(10) NOT NULL,
		address TEXT NOT NULL,
		help_types TEXT NOT NULL,
		urgency_level ENUM('low', 'medium', 'high', 'critical') NOT NULL,
		additional_details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX urgency_level_index (urgency_level)
	)`

	if _, err := db.Exec(helpRequestsTableSQL); err != nil {
		return fmt.Errorf("failed to create help_requests table: %w", err)
	}
	log.Info("Help_requests table created/verified")

	damageReportsTableSQL := `
	CREATE TABLE IF NOT EXISTS damage_reports(
		id INT NOT NULL AUTO_INCREMENT,
		reporter_name VARCHAR(100) NOT NULL,
		phone_number CHAR(10) NOT NULL,
		address TEXT NOT NULL,
		assessment_date DATE NOT NULL,
		damage_list TEXT NOT NULL,
		property_damage DECIMAL(12,2) NOT NULL,
		life_impact TEXT,
		additional_notes TEXT,
		additional_details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	)`

	if _, err := db.Exec(damageReportsTableSQL); err != nil {
		return fmt.Errorf("failed to create damage_reports table: %w", err)
	}
	log.Info("Damage_reports table created/verified")

	return nil
}
