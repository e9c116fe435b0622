package upperdb

import (
	db2 "github.com/velichko-dev/inkline/db"
)

// DDL per dialect. Statements are executed one at a time because the
// mysql driver rejects multi-statement Exec by default.

var schemaMySQL = []string{
	`CREATE TABLE IF NOT EXISTS user (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blog_group (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		slug VARCHAR(200) NOT NULL UNIQUE,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS post (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		author_id BIGINT NOT NULL,
		group_id BIGINT NULL,
		text TEXT NOT NULL,
		image VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		FOREIGN KEY (author_id) REFERENCES user(id),
		FOREIGN KEY (group_id) REFERENCES blog_group(id)
	)`,
	`CREATE TABLE IF NOT EXISTS comment (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		post_id BIGINT NOT NULL,
		author_id BIGINT NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (post_id) REFERENCES post(id),
		FOREIGN KEY (author_id) REFERENCES user(id)
	)`,
	`CREATE TABLE IF NOT EXISTS follow (
		follower_id BIGINT NOT NULL,
		author_id BIGINT NOT NULL,
		PRIMARY KEY (follower_id, author_id),
		FOREIGN KEY (follower_id) REFERENCES user(id),
		FOREIGN KEY (author_id) REFERENCES user(id)
	)`,
}

var schemaSQLite = []string{
	`CREATE TABLE IF NOT EXISTS user (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blog_group (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS post (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author_id INTEGER NOT NULL,
		group_id INTEGER NULL,
		text TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comment (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		post_id INTEGER NOT NULL,
		author_id INTEGER NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS follow (
		follower_id INTEGER NOT NULL,
		author_id INTEGER NOT NULL,
		PRIMARY KEY (follower_id, author_id)
	)`,
}

// Bootstrap applies the schema for the given dialect ("mysql" or
// "sqlite"). Existing tables are left untouched.
func Bootstrap(database db2.Database, dialect string) error {
	statements := schemaMySQL
	if dialect == "sqlite" {
		statements = schemaSQLite
	}
	sqlDB := database.GetSQLDB()
	for _, statement := range statements {
		if _, err := sqlDB.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}
