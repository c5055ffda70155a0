package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// TableColumns retrieves the column definitions for a given table. The
// table name may be schema-qualified (staging1.current_rosters).
func TableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	// Check dialect
	if db.Dialector.Name() == "sqlite" {
		// SQLite uses PRAGMA table_info; attached schemas qualify the
		// pragma itself, not the table argument.
		schema, table := "", tableName
		if i := strings.Index(tableName, "."); i >= 0 {
			schema, table = tableName[:i], tableName[i+1:]
		}
		pragma := fmt.Sprintf("PRAGMA table_info('%s')", table)
		if schema != "" {
			pragma = fmt.Sprintf("PRAGMA `%s`.table_info('%s')", schema, table)
		}

		type SQLiteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var sqliteCols []SQLiteColumn
		if err := db.Raw(pragma).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Name),
				Type:  strings.ToLower(col.Type),
			})
		}
		return columns, nil
	}

	// Use Raw SQL for MySQL "SHOW COLUMNS"
	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM %s", quoteQualified(tableName))).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	// Normalize types to lowercase
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// VerifyTables checks that every named table exists and has at least one
// column. Names of the missing tables are returned in input order.
func VerifyTables(db *gorm.DB, tables []string) ([]string, error) {
	var missing []string
	for _, table := range tables {
		columns, err := TableColumns(db, table)
		if err != nil || len(columns) == 0 {
			missing = append(missing, table)
		}
	}
	return missing, nil
}

// quoteQualified backtick-quotes each dotted segment of a table name.
func quoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = "`" + p + "`"
	}
	return strings.Join(parts, ".")
}
