package availability

import "github.com/m04kA/prescriber-availability/pkg/txmanager"

// DBExecutor *sql.DB или активная транзакция
type DBExecutor = txmanager.DBExecutor
