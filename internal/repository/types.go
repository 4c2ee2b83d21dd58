package repository

import "database/sql"

type Repo struct {
	db *sql.DB
}

// VideoRow is a catalog record. Tags keep their stored order.
type VideoRow struct {
	ID    string
	Title string
	Tags  []string
}
