package upperdb

import (
	"database/sql"
	"fmt"

	db2 "github.com/velichko-dev/inkline/db"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"
	"github.com/upper/db/v4/adapter/sqlite"
)

type upperDatabase struct {
	*PostDB
	*GroupDB
	*CommentDB
	*UserDB
	*FollowDB
	sess  db.Session
	sqlDB *sql.DB
}

// NewMySQL connects to the production MySQL store.
func NewMySQL(user, pass, host, name string) (db2.Database, error) {
	sqlDB, err := sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", user, pass, host, name))
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}
	return wrapSession(sess, sqlDB), nil
}

// NewSQLite opens a file-backed SQLite store, used for development and
// tests.
func NewSQLite(path string) (db2.Database, error) {
	sess, err := sqlite.Open(sqlite.ConnectionURL{
		Database: path,
		Options:  map[string]string{"_busy_timeout": "10000"},
	})
	if err != nil {
		return nil, err
	}
	sqlDB, _ := sess.Driver().(*sql.DB)
	return wrapSession(sess, sqlDB), nil
}

func wrapSession(sess db.Session, sqlDB *sql.DB) db2.Database {
	return &upperDatabase{
		PostDB:    getPostDB(sess),
		GroupDB:   getGroupDB(sess),
		CommentDB: getCommentDB(sess),
		UserDB:    getUserDB(sess),
		FollowDB:  getFollowDB(sess),
		sess:      sess,
		sqlDB:     sqlDB,
	}
}

func (udb *upperDatabase) GetSQLDB() *sql.DB {
	return udb.sqlDB
}

func (udb *upperDatabase) Close() error {
	return udb.sess.Close()
}
