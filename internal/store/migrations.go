package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
// Versions mirror the column history of the shipped app: the base
// tables first, then the columns later releases introduced.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS checklists (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS checklist_items (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	checklist_id INTEGER NOT NULL REFERENCES checklists(id) ON DELETE CASCADE,
	name         TEXT NOT NULL,
	price        REAL,
	done         INTEGER NOT NULL DEFAULT 0 CHECK(done IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_checklist_items_checklist_id
	ON checklist_items(checklist_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
ALTER TABLE checklists ADD COLUMN mode TEXT NOT NULL DEFAULT 'list';

INSERT INTO schema_version (version) VALUES (2);
`,
	},
	{
		version: 3,
		sql: `
ALTER TABLE checklists ADD COLUMN scheduled_for INTEGER;

INSERT INTO schema_version (version) VALUES (3);
`,
	},
	{
		version: 4,
		sql: `
ALTER TABLE checklists ADD COLUMN color TEXT NOT NULL DEFAULT '#2563EB';

ALTER TABLE checklist_items ADD COLUMN color TEXT NOT NULL DEFAULT '#2563EB';

INSERT INTO schema_version (version) VALUES (4);
`,
	},
	{
		version: 5,
		sql: `
ALTER TABLE checklist_items ADD COLUMN quantity INTEGER NOT NULL DEFAULT 1;

INSERT INTO schema_version (version) VALUES (5);
`,
	},
	{
		// Adds the display-order column and backfills rows that predate
		// it. Rows with position NULL or 0 get ascending positions per
		// checklist in insertion (id) order, which matches assigning
		// max-sibling-position + 1 to each in turn.
		version: 6,
		sql: `
ALTER TABLE checklist_items ADD COLUMN position INTEGER NOT NULL DEFAULT 0;

UPDATE checklist_items
SET position = (
	SELECT COUNT(*)
	FROM checklist_items AS s
	WHERE s.checklist_id = checklist_items.checklist_id
	  AND s.id <= checklist_items.id
)
WHERE position IS NULL OR position = 0;

INSERT INTO schema_version (version) VALUES (6);
`,
	},
}
