package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/service"
)

const complaintColumns = `
			c.id,
			c.tenant_id,
			ST_Y(c.location::geometry) AS latitude,
			ST_X(c.location::geometry) AS longitude,
			c.category_id,
			COALESCE(cat.name, '') AS category_name,
			c.priority,
			c.status,
			c.created_at,
			c.resolved_at,
			c.zone_id,
			c.crew_id`

type ComplaintRepository struct {
	db *pgxpool.Pool
}

func NewComplaintRepository(db *pgxpool.Pool) service.ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

// buildComplaintQuery собирает выборку обращений арендатора по фильтру
func buildComplaintQuery(tenantID uuid.UUID, filter models.ComplaintFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT")
	sb.WriteString(complaintColumns)
	sb.WriteString(`
		FROM complaints c
		LEFT JOIN categories cat ON cat.id = c.category_id
		WHERE c.tenant_id = $1`)

	args := []any{tenantID}
	if filter.CreatedSince != nil {
		args = append(args, *filter.CreatedSince)
		fmt.Fprintf(&sb, " AND c.created_at >= $%d", len(args))
	}
	if filter.ResolvedSince != nil {
		args = append(args, *filter.ResolvedSince)
		fmt.Fprintf(&sb, " AND c.resolved_at >= $%d", len(args))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		args = append(args, statuses)
		fmt.Fprintf(&sb, " AND c.status = ANY($%d)", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		fmt.Fprintf(&sb, " AND c.category_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY c.created_at ASC, c.id ASC;")
	return sb.String(), args
}

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	var status string
	err := row.Scan(
		&complaint.ID,
		&complaint.TenantID,
		&complaint.Latitude,
		&complaint.Longitude,
		&complaint.CategoryID,
		&complaint.CategoryName,
		&complaint.Priority,
		&status,
		&complaint.CreatedAt,
		&complaint.ResolvedAt,
		&complaint.ZoneID,
		&complaint.CrewID,
	)
	if err != nil {
		return nil, err
	}
	complaint.Status = models.ComplaintStatus(status)
	return complaint, nil
}

// ListComplaints возвращает снимок обращений арендатора.
// Порядок - по времени создания, от этого зависит жадная кластеризация.
func (r *ComplaintRepository) ListComplaints(ctx context.Context, tenantID uuid.UUID, filter models.ComplaintFilter) ([]*models.Complaint, error) {
	query, args := buildComplaintQuery(tenantID, filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	complaints := make([]*models.Complaint, 0)
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return complaints, nil
}

// GetComplaint возвращает обращение арендатора по его UUID
func (r *ComplaintRepository) GetComplaint(ctx context.Context, tenantID, id uuid.UUID) (*models.Complaint, error) {
	query := "SELECT" + complaintColumns + `
		FROM complaints c
		LEFT JOIN categories cat ON cat.id = c.category_id
		WHERE c.tenant_id = $1 AND c.id = $2;
	`
	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("complaint with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get complaint by id: %w", err)
	}
	return complaint, nil
}

// ListActiveZones возвращает активные зоны арендатора
func (r *ComplaintRepository) ListActiveZones(ctx context.Context, tenantID uuid.UUID) ([]*models.Zone, error) {
	query := `
		SELECT id, tenant_id, name, is_active
		FROM zones
		WHERE tenant_id = $1 AND is_active
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.Zone, 0)
	for rows.Next() {
		zone := &models.Zone{}
		if err := rows.Scan(&zone.ID, &zone.TenantID, &zone.Name, &zone.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zone iteration: %w", err)
	}
	return zones, nil
}

// ListCrews возвращает бригады арендатора
func (r *ComplaintRepository) ListCrews(ctx context.Context, tenantID uuid.UUID) ([]*models.Crew, error) {
	query := `
		SELECT id, tenant_id, name
		FROM crews
		WHERE tenant_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crews: %w", err)
	}
	defer rows.Close()

	crews := make([]*models.Crew, 0)
	for rows.Next() {
		crew := &models.Crew{}
		if err := rows.Scan(&crew.ID, &crew.TenantID, &crew.Name); err != nil {
			return nil, fmt.Errorf("failed to scan crew row: %w", err)
		}
		crews = append(crews, crew)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error crew iteration: %w", err)
	}
	return crews, nil
}

// GetTenantSettings возвращает координаты офиса. Нет строки - пустые настройки.
func (r *ComplaintRepository) GetTenantSettings(ctx context.Context, tenantID uuid.UUID) (*models.TenantSettings, error) {
	settings := &models.TenantSettings{TenantID: tenantID}
	query := `
		SELECT
			ST_Y(office_location::geometry) AS office_latitude,
			ST_X(office_location::geometry) AS office_longitude
		FROM tenants
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&settings.OfficeLatitude, &settings.OfficeLongitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to get tenant settings: %w", err)
	}
	return settings, nil
}
