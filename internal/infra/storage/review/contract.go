package review

import "github.com/m04kA/LifeCare-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
