package contextkeys

// Кастомный тип, чтобы избежать коллизий с другими пакетами
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция) в context
const DBContextKey = contextKey("db")
