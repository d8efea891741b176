package main

import (
	"fmt"

	"github.com/Mikheil23/FinalProject/internal/app"
	"github.com/Mikheil23/FinalProject/internal/config"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/shopspring/decimal"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// суммы в JSON числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true

	if err := app.Run(config); err != nil {
		logger.Error("Service stopped with error:", err)
	}
}
