package database

import (
	"context"
	"database/sql"
	"strings"

	"floodwatch/models"

	"github.com/apex/log"
)

type FloodService struct {
	db *sql.DB
}

func NewFloodService(db *sql.DB) *FloodService {
	return &FloodService{db: db}
}

func (s *FloodService) ListReports(ctx context.Context) ([]models.FloodReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reporter_name, phone_number, address, flood_status,
		       COALESCE(image_path, ''), created_at
		FROM flood_reports
		ORDER BY id`)
	if err != nil {
		log.Errorf("Could not retrieve flood reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	reports := []models.FloodReport{}
	for rows.Next() {
		var r models.FloodReport
		if err := rows.Scan(&r.Id, &r.ReporterName, &r.PhoneNumber, &r.Address,
			&r.FloodStatus, &r.ImagePath, &r.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *FloodService) GetReport(ctx context.Context, id int64) (*models.FloodReport, error) {
	var r models.FloodReport
	err := s.db.QueryRowContext(ctx, `
		SELECT id, reporter_name, phone_number, address, flood_status,
		       COALESCE(image_path, ''), created_at
		FROM flood_reports
		WHERE id = ?`, id).
		Scan(&r.Id, &r.ReporterName, &r.PhoneNumber, &r.Address,
			&r.FloodStatus, &r.ImagePath, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *FloodService) CreateReport(ctx context.Context, r *models.FloodReport) (*models.FloodReport, error) {
	log.Infof("Write: saving flood report from %s at %s", r.ReporterName, r.Address)
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO flood_reports (reporter_name, phone_number, address, flood_status, image_path)
		VALUES (?, ?, ?, ?, ?)`,
		r.ReporterName, r.PhoneNumber, r.Address, string(r.FloodStatus), nullString(r.ImagePath))
	if err := logResult("insertFloodReport", result, err, true); err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetReport(ctx, id)
}

func (s *FloodService) UpdateReport(ctx context.Context, args *models.FloodReportArgs) (*models.FloodReport, error) {
	log.Infof("Write: updating flood report %d", args.Id)
	if _, err := s.GetReport(ctx, args.Id); err != nil {
		return nil, err
	}

	assignments := []string{}
	params := []any{}
	if args.ReporterName != nil {
		assignments = append(assignments, "reporter_name = ?")
		params = append(params, *args.ReporterName)
	}
	if args.PhoneNumber != nil {
		assignments = append(assignments, "phone_number = ?")
		params = append(params, *args.PhoneNumber)
	}
	if args.Address != nil {
		assignments = append(assignments, "address = ?")
		params = append(params, *args.Address)
	}
	if args.FloodStatus != nil {
		assignments = append(assignments, "flood_status = ?")
		params = append(params, *args.FloodStatus)
	}
	if args.ImagePath != nil {
		assignments = append(assignments, "image_path = ?")
		params = append(params, *args.ImagePath)
	}

	if len(assignments) > 0 {
		params = append(params, args.Id)
		result, err := s.db.ExecContext(ctx,
			"UPDATE flood_reports SET "+strings.Join(assignments, ", ")+" WHERE id = ?",
			params...)
		if err := logResult("updateFloodReport", result, err, false); err != nil {
			return nil, err
		}
	}
	return s.GetReport(ctx, args.Id)
}

// DeleteReport removes the record and returns the image path it referenced,
// if any, so the caller can clean up the file.
func (s *FloodService) DeleteReport(ctx context.Context, id int64) (string, error) {
	r, err := s.GetReport(ctx, id)
	if err != nil {
		return "", err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM flood_reports WHERE id = ?`, id)
	if err := logResult("deleteFloodReport", result, err, true); err != nil {
		return "", err
	}
	return r.ImagePath, nil
}
