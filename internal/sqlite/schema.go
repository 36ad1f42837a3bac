// Package sqlite implements the SQLite storage backend for partsbin.
package sqlite

// Schema DDL for all tables. The database file is the source of truth and
// survives across attaches, so every statement is idempotent.
const (
	createComponents = `CREATE TABLE IF NOT EXISTS components (
    component_id TEXT PRIMARY KEY,
    identifier TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price TEXT NOT NULL DEFAULT '0',
    quantity INTEGER NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createLinks = `CREATE TABLE IF NOT EXISTS links (
    link_id TEXT PRIMARY KEY,
    component_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (component_id) REFERENCES components(component_id),
    FOREIGN KEY (category_id) REFERENCES categories(category_id)
);`
)

// Index DDL. The unique indexes carry the integrity rules: identifier
// uniqueness, category name uniqueness, and link pair uniqueness.
const (
	idxComponentsIdentifier = `CREATE UNIQUE INDEX IF NOT EXISTS idx_components_identifier ON components(identifier);`
	idxComponentsCategory   = `CREATE INDEX IF NOT EXISTS idx_components_category ON components(category);`
	idxCategoriesName       = `CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);`
	idxLinksUnique          = `CREATE UNIQUE INDEX IF NOT EXISTS idx_links_unique ON links(component_id, category_id);`
	idxLinksComponent       = `CREATE INDEX IF NOT EXISTS idx_links_component ON links(component_id);`
	idxLinksCategory        = `CREATE INDEX IF NOT EXISTS idx_links_category ON links(category_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createComponents,
	createCategories,
	createLinks,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxComponentsIdentifier,
	idxComponentsCategory,
	idxCategoriesName,
	idxLinksUnique,
	idxLinksComponent,
	idxLinksCategory,
}
