// Package database хранит профили пользователей в sqlite:
// одна строка на пользователя, ключ — идентификатор Telegram.
package database

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

type DB struct {
	conn *sql.DB
}

func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу данных: %w", err)
	}
	// Один писатель: sqlite всё равно сериализует записи,
	// а так не будет SQLITE_BUSY при конкурентных пользователях.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.applySchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("не удалось применить схему: %w", err)
	}

	return db, nil
}

// applySchema читает и выполняет schema.sql
func (db *DB) applySchema() error {
	_, err := db.conn.Exec(schemaSQL)
	return err
}

func (db *DB) Close() error {
	return db.conn.Close()
}
