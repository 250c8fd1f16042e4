package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/stock-control/internal/application/inventory"
	"github.com/jhoicas/stock-control/internal/infrastructure/jsonfile"
	"github.com/jhoicas/stock-control/internal/interfaces/cli"
	"github.com/jhoicas/stock-control/pkg/config"
	"github.com/jhoicas/stock-control/pkg/logger"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	command, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}

	// La ayuda no necesita cargar el estado del inventario.
	if _, isHelp := command.(cli.HelpCmd); isHelp {
		fmt.Println(cli.HelpText())
		return nil
	}

	storage := jsonfile.New(cfg.Data.Dir)
	svc, err := inventory.New(storage, log)
	if err != nil {
		return fmt.Errorf("inicializar el servicio de inventario: %w", err)
	}
	log.Debug().Str("data_dir", cfg.Data.Dir).Msg("servicio de inventario cargado")

	output, err := cli.Execute(command, svc)
	if err != nil {
		return err
	}
	fmt.Println(output)
	return nil
}
