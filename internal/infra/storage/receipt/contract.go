package receipt

import "github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics: подходят *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
