package view

import (
	"context"
	"strconv"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatQuantity renders a unit count for table cells.
func FormatQuantity(qty int64) string {
	return strconv.FormatInt(qty, 10)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
