package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. All
// statements are idempotent so the server can run them on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"auth tables", createAuthTables},
		{"interviews table", createInterviewsTable},
		{"guardians table", createGuardiansTable},
		{"students table", createStudentsTable},
		{"seed roles", seedRoles},
	}
	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("Migration step %q failed: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createAuthTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
	`
	_, err := db.Exec(query)
	return err
}

func createInterviewsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS interviews (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			other_names VARCHAR(100) NOT NULL DEFAULT '',
			previous_school VARCHAR(255) NOT NULL,
			section VARCHAR(20) NOT NULL,
			class_name VARCHAR(50) NOT NULL,
			subject VARCHAR(50) NOT NULL,
			score NUMERIC(5,2),
			aggregate VARCHAR(2),
			status VARCHAR(10) NOT NULL DEFAULT 'Pending',
			admission_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			issued_by VARCHAR(100) NOT NULL,
			feedback TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_interviews_admission_status ON interviews(admission_status);
	`
	_, err := db.Exec(query)
	return err
}

func createGuardiansTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS guardians (
			guardian_id VARCHAR(20) PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			contact VARCHAR(50) NOT NULL,
			nin VARCHAR(50) NOT NULL,
			email VARCHAR(255),
			photo TEXT,
			relationship VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	return err
}

func createStudentsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS students (
			registration_id VARCHAR(25) PRIMARY KEY,
			lin VARCHAR(50) NOT NULL DEFAULT '',
			payment_code VARCHAR(50) NOT NULL DEFAULT '',
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			other_names VARCHAR(100) NOT NULL DEFAULT '',
			class_name VARCHAR(50) NOT NULL,
			stream VARCHAR(20) NOT NULL DEFAULT '',
			gender VARCHAR(10) NOT NULL,
			date_of_birth VARCHAR(20) NOT NULL,
			religion VARCHAR(50) NOT NULL DEFAULT '',
			section VARCHAR(20) NOT NULL,
			house VARCHAR(50) NOT NULL DEFAULT '',
			club VARCHAR(100) NOT NULL DEFAULT '',
			region VARCHAR(100) NOT NULL DEFAULT '',
			district VARCHAR(100) NOT NULL DEFAULT '',
			village VARCHAR(100) NOT NULL DEFAULT '',
			guardian1_id VARCHAR(20) NOT NULL REFERENCES guardians(guardian_id),
			guardian2_id VARCHAR(20) REFERENCES guardians(guardian_id),
			photo TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_students_section ON students(section);
	`
	_, err := db.Exec(query)
	return err
}

func seedRoles(db *sql.DB) error {
	query := `
		INSERT INTO roles (name) VALUES ('admin'), ('head_teacher'), ('registrar')
		ON CONFLICT (name) DO NOTHING;
	`
	_, err := db.Exec(query)
	return err
}
