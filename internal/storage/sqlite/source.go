package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kindredhq/kindred/internal/graph"
	"github.com/kindredhq/kindred/pkg/types"
)

// Source implements storage.SnapshotSource over a local SQLite database.
type Source struct {
	db *sql.DB
}

// NewSource opens a SQLite database and ensures the family graph schema
// exists. The dsn is a file path or ":memory:".
func NewSource(dsn string) (*Source, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}

	// SQLite supports one concurrent writer. A single open connection
	// serialises access and avoids SQLITE_BUSY under concurrent load.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to apply schema: %w", err)
	}

	return &Source{db: db}, nil
}

// DB exposes the underlying handle so tests and seed tooling can populate
// the projection tables.
func (s *Source) DB() *sql.DB {
	return s.db
}

// Load reads the full projection and builds a snapshot.
func (s *Source) Load(ctx context.Context) (*graph.Snapshot, error) {
	builder := graph.NewBuilder()

	if err := s.loadIndividuals(ctx, builder); err != nil {
		return nil, err
	}
	if err := s.loadFamilyUnits(ctx, builder); err != nil {
		return nil, err
	}

	return builder.Build(), nil
}

// Close releases the database handle.
func (s *Source) Close() error {
	return s.db.Close()
}

func (s *Source) loadIndividuals(ctx context.Context, builder *graph.Builder) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, sex, COALESCE(family_as_child, '')
		FROM individuals
	`)
	if err != nil {
		return fmt.Errorf("sqlite: failed to query individuals: %w", err)
	}
	defer rows.Close()

	individuals := make(map[string]*types.Individual)
	for rows.Next() {
		var ind types.Individual
		var sex string
		if err := rows.Scan(&ind.ID, &ind.Name, &sex, &ind.FamilyAsChild); err != nil {
			return fmt.Errorf("sqlite: failed to scan individual: %w", err)
		}
		ind.Sex = types.Sex(sex)
		individuals[ind.ID] = &ind
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: failed to iterate individuals: %w", err)
	}

	spouseRows, err := s.db.QueryContext(ctx, `
		SELECT individual_id, family_id
		FROM individual_spouse_units
		ORDER BY individual_id, seq
	`)
	if err != nil {
		return fmt.Errorf("sqlite: failed to query spouse units: %w", err)
	}
	defer spouseRows.Close()

	for spouseRows.Next() {
		var individualID, familyID string
		if err := spouseRows.Scan(&individualID, &familyID); err != nil {
			return fmt.Errorf("sqlite: failed to scan spouse unit: %w", err)
		}
		if ind, ok := individuals[individualID]; ok {
			ind.FamilyAsSpouse = append(ind.FamilyAsSpouse, familyID)
		}
	}
	if err := spouseRows.Err(); err != nil {
		return fmt.Errorf("sqlite: failed to iterate spouse units: %w", err)
	}

	for _, ind := range individuals {
		builder.AddIndividual(ind)
	}
	return nil
}

func (s *Source) loadFamilyUnits(ctx context.Context, builder *graph.Builder) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(husband, ''), COALESCE(wife, '')
		FROM family_units
	`)
	if err != nil {
		return fmt.Errorf("sqlite: failed to query family units: %w", err)
	}
	defer rows.Close()

	families := make(map[string]*types.FamilyUnit)
	for rows.Next() {
		var fam types.FamilyUnit
		if err := rows.Scan(&fam.ID, &fam.Husband, &fam.Wife); err != nil {
			return fmt.Errorf("sqlite: failed to scan family unit: %w", err)
		}
		families[fam.ID] = &fam
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: failed to iterate family units: %w", err)
	}

	childRows, err := s.db.QueryContext(ctx, `
		SELECT family_id, child_id
		FROM family_children
		ORDER BY family_id, seq
	`)
	if err != nil {
		return fmt.Errorf("sqlite: failed to query family children: %w", err)
	}
	defer childRows.Close()

	for childRows.Next() {
		var familyID, childID string
		if err := childRows.Scan(&familyID, &childID); err != nil {
			return fmt.Errorf("sqlite: failed to scan family child: %w", err)
		}
		if fam, ok := families[familyID]; ok {
			fam.Children = append(fam.Children, childID)
		}
	}
	if err := childRows.Err(); err != nil {
		return fmt.Errorf("sqlite: failed to iterate family children: %w", err)
	}

	for _, fam := range families {
		builder.AddFamilyUnit(fam)
	}
	return nil
}
