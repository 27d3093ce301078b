package storage

import (
	"context"
	"database/sql"
	"fmt"

	"coursepilot/internal/domain"
)

// ModuleStore defines the interface for module persistence.
type ModuleStore interface {
	Save(ctx context.Context, module *domain.Module) error
	FindByID(ctx context.Context, id domain.ModuleID) (*domain.Module, error)
	FindByCourse(ctx context.Context, courseID domain.CourseID) ([]*domain.Module, error)
}

// ModuleRepo provides SQLite-backed module persistence. It implements ModuleStore.
type ModuleRepo struct {
	db *sql.DB
}

// NewModuleRepo creates a new ModuleRepo.
func NewModuleRepo(db *sql.DB) *ModuleRepo {
	return &ModuleRepo{db: db}
}

// Save inserts a module or updates its title and sort order.
func (r *ModuleRepo) Save(ctx context.Context, module *domain.Module) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO modules (id, course_id, title, sort_order)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 title = excluded.title, sort_order = excluded.sort_order`,
		module.ID.String(), module.CourseID.String(), module.Title, module.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to save module: %w", err)
	}
	return nil
}

// FindByID loads one module. Returns ErrNotFound when absent.
func (r *ModuleRepo) FindByID(ctx context.Context, id domain.ModuleID) (*domain.Module, error) {
	var m domain.Module
	var moduleID, courseID string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, course_id, title, sort_order FROM modules WHERE id = ?",
		id.String(),
	).Scan(&moduleID, &courseID, &m.Title, &m.SortOrder)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query module: %w", err)
	}
	m.ID = domain.ModuleID(moduleID)
	m.CourseID = domain.CourseID(courseID)
	return &m, nil
}

// FindByCourse returns the course's modules ordered by sort order.
func (r *ModuleRepo) FindByCourse(ctx context.Context, courseID domain.CourseID) ([]*domain.Module, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, course_id, title, sort_order FROM modules WHERE course_id = ? ORDER BY sort_order",
		courseID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var modules []*domain.Module
	for rows.Next() {
		var m domain.Module
		var moduleID, cID string
		if err := rows.Scan(&moduleID, &cID, &m.Title, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		m.ID = domain.ModuleID(moduleID)
		m.CourseID = domain.CourseID(cID)
		modules = append(modules, &m)
	}
	return modules, rows.Err()
}
