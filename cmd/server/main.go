package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"marksheet/internal/config"
	"marksheet/internal/database"
	"marksheet/internal/handler"
	"marksheet/internal/service"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		slog.Error("failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize services
	datasetService := service.NewDatasetService(db)

	// Initialize handlers
	uploadHandler := handler.NewUploadHandler(datasetService, cfg.MaxUploadBytes, cfg.PassThreshold)
	filterHandler := handler.NewFilterHandler(datasetService, cfg.PassThreshold)
	downloadHandler := handler.NewDownloadHandler(datasetService, cfg.PassThreshold)
	statsHandler := handler.NewStatsHandler(datasetService, cfg.PassThreshold)
	datasetHandler := handler.NewDatasetHandler(datasetService)

	// Setup router
	r := mux.NewRouter()

	r.HandleFunc("/upload", uploadHandler.UploadFile).Methods("POST")
	r.HandleFunc("/filter", filterHandler.FilterDataset).Methods("POST")
	r.HandleFunc("/download", downloadHandler.DownloadCSV).Methods("GET")
	r.HandleFunc("/statistics", statsHandler.GetStatistics).Methods("GET")
	r.HandleFunc("/summary", statsHandler.GetSummary).Methods("GET")
	r.HandleFunc("/datasets", datasetHandler.ListDatasets).Methods("GET")
	r.HandleFunc("/datasets/{id}", datasetHandler.DeleteDataset).Methods("DELETE")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.AllowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("server running",
		slog.String("addr", addr),
		slog.Int("pass_threshold", cfg.PassThreshold),
		slog.String("db_driver", cfg.DBDriver))
	if err := http.ListenAndServe(addr, cors(r)); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
