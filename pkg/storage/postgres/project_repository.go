package postgres

import (
	"context"
	"fmt"

	"github.com/feedradar/radar/pkg/projects"
	"github.com/feedradar/radar/pkg/storage/postgres/ent"
	entproject "github.com/feedradar/radar/pkg/storage/postgres/ent/project"
)

type ProjectRepository struct {
	db *DB
}

func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Insert(ctx context.Context, p *projects.Project) error {
	_, err := r.db.Client().Project.Create().
		SetID(p.ID).
		SetName(p.Name).
		SetDescription(p.Description).
		SetKeywords(p.Keywords).
		SetActive(p.Active).
		Save(ctx)

	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*projects.Project, error) {
	p, err := r.db.Client().Project.Query().Where(entproject.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projects.ErrNotFound
		}
		return nil, err
	}

	return projectFromEnt(p), nil
}

func (r *ProjectRepository) ListActive(ctx context.Context) ([]*projects.Project, error) {
	rows, err := r.db.Client().Project.Query().
		Where(entproject.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	result := make([]*projects.Project, len(rows))
	for i, p := range rows {
		result[i] = projectFromEnt(p)
	}

	return result, nil
}

func projectFromEnt(in *ent.Project) *projects.Project {
	return &projects.Project{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Keywords:    in.Keywords,
		Active:      in.Active,
	}
}
