// Package control maps stored rows to display-ready views and owns the
// data-access operations for every entity. Controllers are stateless; each
// holds only the injected gorm handle, and related display names are
// resolved live through sibling controllers at read time.
package control

import (
	"context"

	"studio/admin/errs"

	"gorm.io/gorm"
)

// exists reports a typed not-found error when no row of m has the id.
func exists(ctx context.Context, db *gorm.DB, m interface{}, id int32) error {
	var n int64
	if err := db.WithContext(ctx).Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return errs.FromDB(err)
	}
	if n == 0 {
		return errs.NotFound()
	}
	return nil
}
