package main

import (
	"github.com/Konou0luc/ucao-academy-sub000/core"
	"github.com/Konou0luc/ucao-academy-sub000/storage/database"
)

// mockable
var (
	migrateFunc  = database.Migrate
	createDBFunc = func() error { return database.CreateIfNotExist(core.Conf) }
)
