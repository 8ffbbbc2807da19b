package database

import (
	"context"
	"testing"

	"floodwatch/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

var damageColumns = []string{
	"id", "reporter_name", "phone_number", "address", "assessment_date",
	"damage_list", "property_damage", "life_impact", "additional_notes",
	"additional_details", "created_at",
}

func damageRow(id int64) *sqlmock.Rows {
	return sqlmock.NewRows(damageColumns).
		AddRow(id, "Somchai", "0812345678", "12 Riverside Rd", "2025-11-02",
			"fence, storage shed", "1500", "", "", "", "2025-11-02 10:00:00")
}

func TestDamageCreateReport(t *testing.T) {
	it(func() {
		amount := decimal.NewFromInt(1500)

		mock.ExpectExec("INSERT INTO damage_reports").
			WithArgs("Somchai", "0812345678", "12 Riverside Rd", "2025-11-02",
				"fence, storage shed", amount, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(9, 1))
		mock.ExpectQuery("SELECT (.+) FROM damage_reports WHERE id = ?").
			WithArgs(int64(9)).
			WillReturnRows(damageRow(9))

		record, err := NewDamageService(db).CreateReport(context.Background(), &models.DamageReport{
			ReporterName:   "Somchai",
			PhoneNumber:    "0812345678",
			Address:        "12 Riverside Rd",
			AssessmentDate: "2025-11-02",
			DamageList:     "fence, storage shed",
			PropertyDamage: amount,
		})
		if err != nil {
			t.Fatalf("CreateReport: unexpected error: %v", err)
		}
		if record.Id != 9 || !record.PropertyDamage.Equal(amount) {
			t.Errorf("CreateReport: got %+v", record)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestDamageUpdateReportCanonicalizesDate(t *testing.T) {
	it(func() {
		date := "2025-11-03T00:00:00Z"

		mock.ExpectQuery("SELECT (.+) FROM damage_reports WHERE id = ?").
			WithArgs(int64(9)).
			WillReturnRows(damageRow(9))
		mock.ExpectExec("UPDATE damage_reports SET assessment_date = \\? WHERE id = \\?").
			WithArgs("2025-11-03", int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT (.+) FROM damage_reports WHERE id = ?").
			WithArgs(int64(9)).
			WillReturnRows(damageRow(9))

		_, err := NewDamageService(db).UpdateReport(context.Background(), &models.DamageReportArgs{
			Id:             9,
			AssessmentDate: &date,
		})
		if err != nil {
			t.Fatalf("UpdateReport: unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestDamageDeleteReportUnknownId(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SELECT (.+) FROM damage_reports WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(damageColumns))

		if err := NewDamageService(db).DeleteReport(context.Background(), 404); err != ErrNotFound {
			t.Errorf("DeleteReport: expected ErrNotFound, got %v", err)
		}
	})
}
