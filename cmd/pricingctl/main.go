// Package main точка входа pricingctl: расчет цен и проверка каталога без запуска сервера.
package main

import (
	"os"

	"github.com/m04kA/LifeCare-BookingService/cmd/pricingctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
