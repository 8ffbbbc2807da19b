package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"floodwatch/models"

	"github.com/apex/log"
)

type HelpService struct {
	db *sql.DB
}

func NewHelpService(db *sql.DB) *HelpService {
	return &HelpService{db: db}
}

// Help types are stored as a JSON-encoded array in a TEXT column.
func encodeHelpTypes(types []string) (string, error) {
	b, err := json.Marshal(types)
	if err != nil {
		return "", fmt.Errorf("encoding help types: %w", err)
	}
	return string(b), nil
}

func decodeHelpTypes(encoded string) ([]string, error) {
	var types []string
	if err := json.Unmarshal([]byte(encoded), &types); err != nil {
		return nil, fmt.Errorf("decoding help types: %w", err)
	}
	return types, nil
}

func (s *HelpService) scanRequest(scan func(...any) error) (*models.HelpRequest, error) {
	var r models.HelpRequest
	var encoded string
	if err := scan(&r.Id, &r.ReporterName, &r.PhoneNumber, &r.Address,
		&encoded, &r.UrgencyLevel, &r.AdditionalDetails, &r.CreatedAt); err != nil {
		return nil, err
	}
	types, err := decodeHelpTypes(encoded)
	if err != nil {
		return nil, err
	}
	r.HelpTypes = types
	return &r, nil
}

func (s *HelpService) ListRequests(ctx context.Context) ([]models.HelpRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reporter_name, phone_number, address, help_types,
		       urgency_level, COALESCE(additional_details, ''), created_at
		FROM help_requests
		ORDER BY id`)
	if err != nil {
		log.Errorf("Could not retrieve help requests: %v", err)
		return nil, err
	}
	defer rows.Close()

	requests := []models.HelpRequest{}
	for rows.Next() {
		r, err := s.scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *r)
	}
	return requests, rows.Err()
}

func (s *HelpService) GetRequest(ctx context.Context, id int64) (*models.HelpRequest, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, reporter_name, phone_number, address, help_types,
		       urgency_level, COALESCE(additional_details, ''), created_at
		FROM help_requests
		WHERE id = ?`, id)
	r, err := s.scanRequest(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *HelpService) CreateRequest(ctx context.Context, r *models.HelpRequest) (*models.HelpRequest, error) {
	log.Infof("Write: saving help request from %s, urgency %s", r.ReporterName, r.UrgencyLevel)
	encoded, err := encodeHelpTypes(r.HelpTypes)
	if err != nil {
		return nil, err
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO help_requests (reporter_name, phone_number, address, help_types, urgency_level, additional_details)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ReporterName, r.PhoneNumber, r.Address, encoded,
		string(r.UrgencyLevel), nullString(r.AdditionalDetails))
	if err := logResult("insertHelpRequest", result, err, true); err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetRequest(ctx, id)
}

func (s *HelpService) UpdateRequest(ctx context.Context, args *models.HelpRequestArgs) (*models.HelpRequest, error) {
	log.Infof("Write: updating help request %d", args.Id)
	if _, err := s.GetRequest(ctx, args.Id); err != nil {
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
	if args.HelpTypes != nil {
		encoded, err := encodeHelpTypes(*args.HelpTypes)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, "help_types = ?")
		params = append(params, encoded)
	}
	if args.UrgencyLevel != nil {
		assignments = append(assignments, "urgency_level = ?")
		params = append(params, *args.UrgencyLevel)
	}
	if args.AdditionalDetails != nil {
		assignments = append(assignments, "additional_details = ?")
		params = append(params, *args.AdditionalDetails)
	}

	if len(assignments) > 0 {
		params = append(params, args.Id)
		result, err := s.db.ExecContext(ctx,
			"UPDATE help_requests SET "+strings.Join(assignments, ", ")+" WHERE id = ?",
			params...)
		if err := logResult("updateHelpRequest", result, err, false); err != nil {
			return nil, err
		}
	}
	return s.GetRequest(ctx, args.Id)
}

func (s *HelpService) DeleteRequest(ctx context.Context, id int64) error {
	if _, err := s.GetRequest(ctx, id); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM help_requests WHERE id = ?`, id)
	return logResult("deleteHelpRequest", result, err, true)
}
