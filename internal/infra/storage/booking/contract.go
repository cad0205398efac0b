package booking

import "github.com/m04kA/SMC-InventoryService/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
