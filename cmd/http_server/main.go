package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres

	"github.com/neoglobal/pnl-reconciliation/handler"
	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
	"github.com/neoglobal/pnl-reconciliation/infra/locker"
	reconciliationUsecase "github.com/neoglobal/pnl-reconciliation/usecase/reconciliation"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", DbName, err)
	}
	log.Printf("Connected to database %s", DbName)

	a.DB.AutoMigrate(
		&model.ReconciliationRun{},
		&model.ReconciliationRunAsset{},
		&model.FctReconciliation{},
		&model.ReconciliationSummaryRow{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func RegisterReconciliationRoutes(router *mux.Router, h *handler.ReconciliationHandler) {
	router.HandleFunc("/process_reconciliation", h.ProcessReconciliation).Methods("POST")
	router.HandleFunc("/get_result", h.GetResult).Methods("GET")
	router.HandleFunc("/get_summary", h.GetSummary).Methods("GET")
	router.HandleFunc("/list_runs", h.ListRuns).Methods("GET")
}

func (a *App) initializeRoutes() {
	reconciliationUc := reconciliationUsecase.NewReconciliationUsecase(a.DB, locker.New())
	h := handler.NewReconciliationHandler(reconciliationUc)
	RegisterReconciliationRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}

func main() {
	app := App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
