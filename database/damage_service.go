package database

import (
	"context"
	"database/sql"
	"strings"

	"floodwatch/models"

	"github.com/apex/log"
)

type DamageService struct {
	db *sql.DB
}

func NewDamageService(db *sql.DB) *DamageService {
	return &DamageService{db: db}
}

const damageReportColumns = `id, reporter_name, phone_number, address, assessment_date,
		       damage_list, property_damage, COALESCE(life_impact, ''),
		       COALESCE(additional_notes, ''), COALESCE(additional_details, ''), created_at`

func scanDamageReport(scan func(...any) error) (*models.DamageReport, error) {
	var r models.DamageReport
	if err := scan(&r.Id, &r.ReporterName, &r.PhoneNumber, &r.Address,
		&r.AssessmentDate, &r.DamageList, &r.PropertyDamage,
		&r.LifeImpact, &r.AdditionalNotes, &r.AdditionalDetails, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DamageService) ListReports(ctx context.Context) ([]models.DamageReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+damageReportColumns+`
		FROM damage_reports
		ORDER BY id`)
	if err != nil {
		log.Errorf("Could not retrieve damage reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	reports := []models.DamageReport{}
	for rows.Next() {
		r, err := scanDamageReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

func (s *DamageService) GetReport(ctx context.Context, id int64) (*models.DamageReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+damageReportColumns+`
		FROM damage_reports
		WHERE id = ?`, id)
	r, err := scanDamageReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *DamageService) CreateReport(ctx context.Context, r *models.DamageReport) (*models.DamageReport, error) {
	log.Infof("Write: saving damage report from %s, assessed %s", r.ReporterName, r.AssessmentDate)
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO damage_reports (reporter_name, phone_number, address, assessment_date,
		                            damage_list, property_damage, life_impact,
		                            additional_notes, additional_details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ReporterName, r.PhoneNumber, r.Address, r.AssessmentDate,
		r.DamageList, r.PropertyDamage, nullString(r.LifeImpact),
		nullString(r.AdditionalNotes), nullString(r.AdditionalDetails))
	if err := logResult("insertDamageReport", result, err, true); err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetReport(ctx, id)
}

func (s *DamageService) UpdateReport(ctx context.Context, args *models.DamageReportArgs) (*models.DamageReport, error) {
	log.Infof("Write: updating damage report %d", args.Id)
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
	if args.AssessmentDate != nil {
		date, _ := models.ParseAssessmentDate(*args.AssessmentDate)
		assignments = append(assignments, "assessment_date = ?")
		params = append(params, date)
	}
	if args.DamageList != nil {
		assignments = append(assignments, "damage_list = ?")
		params = append(params, *args.DamageList)
	}
	if args.PropertyDamage != nil {
		assignments = append(assignments, "property_damage = ?")
		params = append(params, *args.PropertyDamage)
	}
	if args.LifeImpact != nil {
		assignments = append(assignments, "life_impact = ?")
		params = append(params, *args.LifeImpact)
	}
	if args.AdditionalNotes != nil {
		assignments = append(assignments, "additional_notes = ?")
		params = append(params, *args.AdditionalNotes)
	}
	if args.AdditionalDetails != nil {
		assignments = append(assignments, "additional_details = ?")
		params = append(params, *args.AdditionalDetails)
	}

	if len(assignments) > 0 {
		params = append(params, args.Id)
		result, err := s.db.ExecContext(ctx,
			"UPDATE damage_reports SET "+strings.Join(assignments, ", ")+" WHERE id = ?",
			params...)
		if err := logResult("updateDamageReport", result, err, false); err != nil {
			return nil, err
		}
	}
	return s.GetReport(ctx, args.Id)
}

func (s *DamageService) DeleteReport(ctx context.Context, id int64) error {
	if _, err := s.GetReport(ctx, id); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM damage_reports WHERE id = ?`, id)
	return logResult("deleteDamageReport", result, err, true)
}
