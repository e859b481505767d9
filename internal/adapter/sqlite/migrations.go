package sqlite

var migrations = []string{
	`
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT DEFAULT 'Pending',
			due_date TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`,
}
