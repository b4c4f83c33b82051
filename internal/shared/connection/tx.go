package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// WithSQLTx returns a gorm session bound to ctx that runs its statements
// on tx when tx is not nil.
func WithSQLTx(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.WithContext(ctx)
	if tx != nil {
		session.Statement.ConnPool = tx
	}
	return session
}
