package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/medroute/hospital-finder/internal/domain/entities"
	"github.com/medroute/hospital-finder/internal/domain/repositories"
	"github.com/medroute/hospital-finder/internal/infrastructure/clients/postgres"
	apperrors "github.com/medroute/hospital-finder/pkg/errors"
)

var hospitalColumns = []interface{}{
	"id", "name", "address", "latitude", "longitude", "phone_number",
	"email", "rating", "review_count", "has_emergency", "has_ambulance",
	"specialties", "facilities", "open_247", "is_active",
	"created_at", "updated_at",
}

// HospitalAdapter implements the HospitalRepository interface over Postgres.
type HospitalAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHospitalAdapter creates a new hospital adapter
func NewHospitalAdapter(client *postgres.Client) repositories.HospitalRepository {
	return &HospitalAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetAll retrieves active hospitals eligible for the given priority.
// Critical cases are restricted to hospitals with 24/7 emergency services
// and urgent cases to hospitals with emergency services; this is the
// pre-filter contract the ranking engine depends on.
func (a *HospitalAdapter) GetAll(ctx context.Context, priority entities.Priority) ([]*entities.Hospital, error) {
	ds := a.db.From("hospitals").
		Select(hospitalColumns...).
		Where(goqu.Ex{"is_active": true})

	switch priority {
	case entities.PriorityCritical:
		ds = ds.Where(goqu.Ex{"has_emergency": true, "open_247": true})
	case entities.PriorityUrgent:
		ds = ds.Where(goqu.Ex{"has_emergency": true})
	}

	query, args, err := ds.Order(goqu.I("name").Asc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build hospital query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list hospitals", err)
	}
	defer rows.Close()

	hospitals := []*entities.Hospital{}
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hospital", err)
		}
		hospitals = append(hospitals, hospital)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating hospitals", err)
	}

	return hospitals, nil
}

// GetByID retrieves a hospital by ID
func (a *HospitalAdapter) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	query, args, err := a.db.From("hospitals").
		Select(hospitalColumns...).
		Where(goqu.Ex{"id": id, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build hospital query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	hospital, err := scanHospital(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get hospital", err)
	}

	return hospital, nil
}

// Create persists a new hospital
func (a *HospitalAdapter) Create(ctx context.Context, hospital *entities.Hospital) error {
	query, args, err := a.db.Insert("hospitals").Rows(goqu.Record{
		"id":            hospital.ID,
		"name":          hospital.Name,
		"address":       hospital.Address,
		"latitude":      hospital.Location.Latitude,
		"longitude":     hospital.Location.Longitude,
		"phone_number":  hospital.PhoneNumber,
		"email":         hospital.Email,
		"rating":        hospital.Rating,
		"review_count":  hospital.ReviewCount,
		"has_emergency": hospital.HasEmergency,
		"has_ambulance": hospital.HasAmbulance,
		"specialties":   strings.Join(hospital.Specialties, ","),
		"facilities":    strings.Join(hospital.Facilities, ","),
		"open_247":      hospital.Open247,
		"is_active":     hospital.IsActive,
		"created_at":    hospital.CreatedAt,
		"updated_at":    hospital.UpdatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build hospital insert", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create hospital", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHospital(row rowScanner) (*entities.Hospital, error) {
	hospital := &entities.Hospital{}
	var specialties, facilities sql.NullString

	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Address,
		&hospital.Location.Latitude,
		&hospital.Location.Longitude,
		&hospital.PhoneNumber,
		&hospital.Email,
		&hospital.Rating,
		&hospital.ReviewCount,
		&hospital.HasEmergency,
		&hospital.HasAmbulance,
		&specialties,
		&facilities,
		&hospital.Open247,
		&hospital.IsActive,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	hospital.Specialties = splitList(specialties)
	hospital.Facilities = splitList(facilities)

	return hospital, nil
}

// splitList splits a comma-separated column into a slice. NULL or empty
// columns become an empty slice, never nil dereferences downstream.
func splitList(col sql.NullString) []string {
	if !col.Valid || strings.TrimSpace(col.String) == "" {
		return []string{}
	}
	parts := strings.Split(col.String, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
