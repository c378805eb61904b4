// Package sqlite provides a SQLite-backed snapshot source.
package sqlite

// Schema contains the SQL statements for the family graph projection.
// The tables are exactly the relational shape of the two in-memory maps:
// individuals with their child-unit reference, the spouse-unit link table,
// family units with parent slots, and the ordered child link table.
const Schema = `
CREATE TABLE IF NOT EXISTS individuals (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    sex TEXT NOT NULL DEFAULT 'U',
    family_as_child TEXT
);

CREATE TABLE IF NOT EXISTS individual_spouse_units (
    individual_id TEXT NOT NULL,
    family_id TEXT NOT NULL,
    seq INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (individual_id, family_id)
);

CREATE TABLE IF NOT EXISTS family_units (
    id TEXT PRIMARY KEY,
    husband TEXT,
    wife TEXT
);

CREATE TABLE IF NOT EXISTS family_children (
    family_id TEXT NOT NULL,
    child_id TEXT NOT NULL,
    seq INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (family_id, child_id)
);

CREATE INDEX IF NOT EXISTS idx_spouse_units_individual
    ON individual_spouse_units(individual_id, seq);
CREATE INDEX IF NOT EXISTS idx_family_children_family
    ON family_children(family_id, seq);
`
