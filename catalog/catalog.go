package catalog

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/gkalanidhi/maplens/database"
	"github.com/gkalanidhi/maplens/mapping"
	"github.com/jackc/pgx/v5"
)

// Registration outcomes.
const (
	StatusRegistered = "registered"
	StatusUpdated    = "updated"
	StatusUnchanged  = "unchanged"
)

// File classification outcomes for Status.
const (
	FileRegistered   = "registered"
	FileStale        = "stale"
	FileUnregistered = "unregistered"
	FileUnreadable   = "unreadable"
)

// Record represents one cataloged mapping revision
type Record struct {
	ID                  int
	MappingName         string
	Folder              string
	SourceFile          string
	Checksum            string
	TransformationCount int
	ConnectionCount     int
	SourceCount         int
	TargetCount         int
	RegisteredAt        time.Time
	RegisteredBy        string
	Status              string
}

// ActivityLog represents a catalog log entry
type ActivityLog struct {
	ID          int
	Timestamp   time.Time
	Level       string
	Message     string
	User        string
	Details     string
	MappingName string
}

// FileStatus classifies one scanned file against the catalog
type FileStatus struct {
	Path        string
	MappingName string
	State       string
}

func getConn() (*pgx.Conn, context.Context, error) {
	ctx := context.Background()
	conn, err := database.GetConnection(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get connection: %v", err)
	}
	return conn, ctx, nil
}

// Connect hands out a single connection for read-side commands.
func Connect() (*pgx.Conn, error) {
	ctx := context.Background()
	return database.GetConnection(ctx)
}

func ensureCatalogTables(conn *pgx.Conn, ctx context.Context) error {
	fmt.Println("🔧 Ensuring catalog tables exist...")

	_, err := conn.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS mapping_catalog (
		id SERIAL PRIMARY KEY,
		mapping_name TEXT NOT NULL,
		folder TEXT,
		source_file TEXT NOT NULL,
		checksum TEXT NOT NULL,
		transformation_count INT NOT NULL,
		connection_count INT NOT NULL,
		source_count INT NOT NULL,
		target_count INT NOT NULL,
		registered_at TIMESTAMP DEFAULT now(),
		registered_by TEXT,
		status TEXT DEFAULT 'active'
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create mapping_catalog table: %v", err)
	}
	fmt.Println("✅ mapping_catalog table ensured")

	_, err = conn.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS catalog_log (
		id SERIAL PRIMARY KEY,
		timestamp TIMESTAMP DEFAULT now(),
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		user_name TEXT,
		details TEXT,
		mapping_name TEXT
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create catalog_log table: %v", err)
	}
	fmt.Println("✅ catalog_log table ensured")

	return nil
}

func getCurrentUser() string {
	currentUser, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return currentUser.Username
}

func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return fmt.Sprintf("%x", hash)
}

func logActivity(conn *pgx.Conn, ctx context.Context, level, message, mappingName, details string) error {
	userName := getCurrentUser()
	_, err := conn.Exec(ctx, `
		INSERT INTO catalog_log (level, message, user_name, mapping_name, details)
		VALUES ($1, $2, $3, $4, $5)
	`, level, message, userName, mappingName, details)
	return err
}

// activeChecksum returns the checksum of the active catalog row for
// (mapping, file), or "" when none exists.
func activeChecksum(conn *pgx.Conn, ctx context.Context, mappingName, sourceFile string) (string, error) {
	var checksum string
	err := conn.QueryRow(ctx, `
		SELECT checksum FROM mapping_catalog
		WHERE mapping_name = $1 AND source_file = $2 AND status = 'active'
		ORDER BY registered_at DESC LIMIT 1
	`, mappingName, sourceFile).Scan(&checksum)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query active registration: %v", err)
	}
	return checksum, nil
}

func classify(existing, checksum string) string {
	switch existing {
	case "":
		return StatusRegistered
	case checksum:
		return StatusUnchanged
	default:
		return StatusUpdated
	}
}

// Register records a parsed mapping in the catalog. An unchanged source
// file is a no-op; a changed one supersedes the previous active row.
func Register(m *mapping.Mapping, sourcePath string) (string, error) {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	checksum := calculateChecksum(content)

	conn, ctx, err := getConn()
	if err != nil {
		return "", err
	}
	defer conn.Close(ctx)

	if err := ensureCatalogTables(conn, ctx); err != nil {
		return "", fmt.Errorf("ensure catalog tables: %v", err)
	}

	existing, err := activeChecksum(conn, ctx, m.Name, sourcePath)
	if err != nil {
		return "", err
	}

	status := classify(existing, checksum)
	if status == StatusUnchanged {
		logActivity(conn, ctx, "INFO", fmt.Sprintf("Registration skipped: %s", m.Name), m.Name, "Checksum unchanged")
		return status, nil
	}

	if status == StatusUpdated {
		_, err = conn.Exec(ctx, `
			UPDATE mapping_catalog SET status = 'superseded'
			WHERE mapping_name = $1 AND source_file = $2 AND status = 'active'
		`, m.Name, sourcePath)
		if err != nil {
			return "", fmt.Errorf("supersede previous registration: %v", err)
		}
	}

	s := m.Summary()
	_, err = conn.Exec(ctx, `
		INSERT INTO mapping_catalog (mapping_name, folder, source_file, checksum,
			transformation_count, connection_count, source_count, target_count, registered_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, m.Name, m.Folder, sourcePath, checksum,
		s.TotalTransformations, s.TotalConnections, s.Sources, s.Targets, getCurrentUser())
	if err != nil {
		logActivity(conn, ctx, "ERROR", fmt.Sprintf("Registration failed: %s", m.Name), m.Name, err.Error())
		return "", fmt.Errorf("recording mapping %s: %v", m.Name, err)
	}

	logActivity(conn, ctx, "SUCCESS", fmt.Sprintf("Mapping %s: %s", status, m.Name), m.Name,
		fmt.Sprintf("%d transformations, %d connections", s.TotalTransformations, s.TotalConnections))
	return status, nil
}

// Preview reports what Register would do, without writing anything.
func Preview(m *mapping.Mapping, sourcePath string) (string, error) {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	checksum := calculateChecksum(content)

	conn, ctx, err := getConn()
	if err != nil {
		return "", err
	}
	defer conn.Close(ctx)

	if err := ensureCatalogTables(conn, ctx); err != nil {
		return "", fmt.Errorf("ensure catalog tables: %v", err)
	}

	existing, err := activeChecksum(conn, ctx, m.Name, sourcePath)
	if err != nil {
		return "", err
	}
	return classify(existing, checksum), nil
}

// Status classifies files against the catalog's active registrations.
func Status(paths []string) ([]FileStatus, error) {
	conn, ctx, err := getConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	if err := ensureCatalogTables(conn, ctx); err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, `
		SELECT source_file, mapping_name, checksum FROM mapping_catalog WHERE status = 'active'
	`)
	if err != nil {
		return nil, fmt.Errorf("query active registrations: %v", err)
	}
	defer rows.Close()

	type activeRow struct {
		name     string
		checksum string
	}
	active := map[string]activeRow{}
	for rows.Next() {
		var file string
		var row activeRow
		if err := rows.Scan(&file, &row.name, &row.checksum); err != nil {
			return nil, fmt.Errorf("scan registration: %v", err)
		}
		active[file] = row
	}

	var statuses []FileStatus
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			statuses = append(statuses, FileStatus{Path: path, State: FileUnreadable})
			continue
		}

		row, ok := active[path]
		if !ok {
			statuses = append(statuses, FileStatus{Path: path, State: FileUnregistered})
			continue
		}

		state := FileRegistered
		if calculateChecksum(content) != row.checksum {
			state = FileStale
		}
		statuses = append(statuses, FileStatus{Path: path, MappingName: row.name, State: state})
	}

	return statuses, nil
}

// Unregister removes every catalog row for a mapping name and returns how
// many rows went away.
func Unregister(name string) (int, error) {
	conn, ctx, err := getConn()
	if err != nil {
		return 0, err
	}
	defer conn.Close(ctx)

	if err := ensureCatalogTables(conn, ctx); err != nil {
		return 0, err
	}

	tag, err := conn.Exec(ctx, `DELETE FROM mapping_catalog WHERE mapping_name = $1;`, name)
	if err != nil {
		return 0, fmt.Errorf("removing catalog rows for %s: %v", name, err)
	}

	removed := int(tag.RowsAffected())
	if removed > 0 {
		logActivity(conn, ctx, "WARN", fmt.Sprintf("Mapping unregistered: %s", name), name,
			fmt.Sprintf("%d catalog rows removed", removed))
	}
	return removed, nil
}

// History retrieves catalog history with optional name filtering
func History(conn *pgx.Conn, limit int, nameFilter string) ([]Record, error) {
	ctx := context.Background()

	query := `
		SELECT id, mapping_name, folder, source_file, checksum,
		       transformation_count, connection_count, source_count, target_count,
		       registered_at, registered_by, status
		FROM mapping_catalog
	`

	var args []interface{}
	argCount := 0

	if nameFilter != "" {
		argCount++
		query += fmt.Sprintf(" WHERE mapping_name ILIKE $%d", argCount)
		args = append(args, "%"+nameFilter+"%")
	}

	query += " ORDER BY registered_at DESC"

	if limit > 0 {
		argCount++
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, limit)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query catalog history: %v", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var folder *string
		var registeredBy *string

		err := rows.Scan(
			&record.ID,
			&record.MappingName,
			&folder,
			&record.SourceFile,
			&record.Checksum,
			&record.TransformationCount,
			&record.ConnectionCount,
			&record.SourceCount,
			&record.TargetCount,
			&record.RegisteredAt,
			&registeredBy,
			&record.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan catalog record: %v", err)
		}

		if folder != nil {
			record.Folder = *folder
		}
		if registeredBy != nil {
			record.RegisteredBy = *registeredBy
		}

		records = append(records, record)
	}

	return records, nil
}

// Logs retrieves catalog activity entries with optional limit
func Logs(conn *pgx.Conn, limit int) ([]ActivityLog, error) {
	ctx := context.Background()

	query := `
		SELECT id, timestamp, level, message, user_name, details, mapping_name
		FROM catalog_log
		ORDER BY timestamp DESC
	`

	var args []interface{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query catalog logs: %v", err)
	}
	defer rows.Close()

	var logs []ActivityLog
	for rows.Next() {
		var entry ActivityLog
		var userName, details, mappingName *string

		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.Level,
			&entry.Message,
			&userName,
			&details,
			&mappingName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan catalog log: %v", err)
		}

		if userName != nil {
			entry.User = *userName
		}
		if details != nil {
			entry.Details = *details
		}
		if mappingName != nil {
			entry.MappingName = *mappingName
		}

		logs = append(logs, entry)
	}

	return logs, nil
}
