package booking

import "github.com/tablerow/FRB-ReservationService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД, совместим с *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
