// Command sensibilidad runs a rent-versus-buy sensitivity simulation from a
// YAML distribution file and prints its summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"arriendo-compra/domain"
	"arriendo-compra/repository"
	"arriendo-compra/service"
)

func main() {
	configPath := flag.String("config", "", "archivo YAML con muestras, semilla y distribuciones")
	samples := flag.Int("n", 0, "número de simulaciones (reemplaza muestras del archivo)")
	seed := flag.Uint64("seed", 0, "semilla (reemplaza semilla del archivo; 0 = aleatoria)")
	csvPath := flag.String("csv", "", "escribir la tabla completa en este archivo CSV")
	flag.Parse()

	var req domain.SimulationRequest
	if *configPath != "" {
		var err error
		if req, err = service.LoadSimulationRequest(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *samples > 0 {
		req.Samples = *samples
	}
	if *seed != 0 {
		req.Seed = seed
	}
	if req.Samples == 0 {
		req.Samples = 1000
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc := service.NewSensitivityService(repository.NewSimulationRepositoryMemory(1), 0)
	sim, err := svc.Simulate(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	printSummary(sim)

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := sim.Table.WriteCSV(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("Tabla escrita en %s", *csvPath)
	}
}

func printSummary(sim domain.Simulation) {
	s := sim.Summary
	fmt.Printf("simulación %s (%d muestras, semilla %d)\n\n", sim.ID, s.Samples, sim.Seed)
	fmt.Printf("%-10s %12s %12s %12s %12s %12s\n", "", "media", "desviación", "p5", "mediana", "p95")
	for _, row := range []struct {
		name  string
		stats domain.ColumnStats
	}{
		{"arriendo", s.Rent},
		{"compra", s.Buy},
	} {
		fmt.Printf("%-10s %12.2f %12.2f %12.2f %12.2f %12.2f\n",
			row.name, row.stats.Mean, row.stats.StdDev, row.stats.P5, row.stats.Median, row.stats.P95)
	}
	fmt.Printf("\ncompra supera a arriendo en %.1f%% de las simulaciones\n", 100*s.BuyWinsShare)

	if len(s.Sensitivity) > 0 {
		fmt.Println("\nsensibilidad (correlación con compra - arriendo):")
		for _, sens := range s.Sensitivity {
			fmt.Printf("  %-28s %+.3f\n", sens.Parameter, sens.Correlation)
		}
	}
}
