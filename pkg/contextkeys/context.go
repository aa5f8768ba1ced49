package contextkeys

// Custom key type avoids collisions with other packages' context values.
type contextKey string

// DBContextKey carries the *gorm.DB handle (pool or per-test transaction)
// through the request context.
const DBContextKey = contextKey("db")
